package cloudflare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/qdm12/cloudflare-ddns/internal/models"
)

type responseError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Success    bool            `json:"success"`
	Errors     []responseError `json:"errors"`
	Result     json.RawMessage `json:"result"`
	ResultInfo *models.Pager   `json:"result_info"`
}

// do sends a request to the API at the path given and decodes the
// response envelope. If checkStatus is true, a non 2xx status code
// is an error wrapping ErrHTTPStatusNotValid.
func (c *Client) do(ctx context.Context, method, path string,
	requestData any, checkStatus bool) (response apiResponse, err error) {
	var body io.Reader
	if requestData != nil {
		buffer := bytes.NewBuffer(nil)
		encoder := json.NewEncoder(buffer)
		err = encoder.Encode(requestData)
		if err != nil {
			return response, fmt.Errorf("JSON encoding request data: %w", err)
		}
		body = buffer
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return response, fmt.Errorf("creating http request: %w", err)
	}
	c.setHeaders(request)

	httpResponse, err := c.httpClient.Do(request)
	if err != nil {
		return response, err
	}
	defer httpResponse.Body.Close()

	if checkStatus && !isSuccessStatus(httpResponse.StatusCode) {
		return response, fmt.Errorf("%w: %d: %s",
			ErrHTTPStatusNotValid, httpResponse.StatusCode,
			bodyToSingleLine(httpResponse.Body))
	}

	decoder := json.NewDecoder(httpResponse.Body)
	err = decoder.Decode(&response)
	if err != nil {
		return response, fmt.Errorf("json decoding response body: %w", err)
	}

	if !response.Success {
		return response, newAPIError(httpResponse.StatusCode, response.Errors)
	}

	return response, nil
}

func isSuccessStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func decodeResult[T any](response apiResponse) (result T, err error) {
	if len(response.Result) == 0 {
		return result, nil
	}
	err = json.Unmarshal(response.Result, &result)
	if err != nil {
		return result, fmt.Errorf("json decoding result: %w", err)
	}
	return result, nil
}
