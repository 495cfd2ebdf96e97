package cloudflare

import (
	"errors"
	"fmt"
)

var (
	ErrHTTPStatusNotValid = errors.New("HTTP status is not valid")
	ErrTokenNotActive     = errors.New("API token is not active")
)

// APIError is an error reported by the Cloudflare API
// in the errors field of its response.
type APIError struct {
	Code       int
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cloudflare API error %d: %s (HTTP status %d)",
		e.Code, e.Message, e.StatusCode)
}

const (
	unknownErrorCode    = -1
	unknownErrorMessage = "Unknown error."
)

func newAPIError(statusCode int, responseErrors []responseError) *APIError {
	if len(responseErrors) == 0 {
		return &APIError{
			Code:       unknownErrorCode,
			Message:    unknownErrorMessage,
			StatusCode: statusCode,
		}
	}
	return &APIError{
		Code:       responseErrors[0].Code,
		Message:    responseErrors[0].Message,
		StatusCode: statusCode,
	}
}
