package publicip

import (
	"errors"
	"fmt"
)

type FetcherType string

const (
	DNS  FetcherType = "dns"
	HTTP FetcherType = "http"
)

func ListFetcherTypes() []FetcherType {
	return []FetcherType{
		DNS,
		HTTP,
	}
}

var ErrFetcherUnknown = errors.New("public IP fetcher type is unknown")

func ValidateFetcherType(fetcherType string) error {
	for _, possible := range ListFetcherTypes() {
		if FetcherType(fetcherType) == possible {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrFetcherUnknown, fetcherType)
}
