package openweathermap

import (
	"errors"
	"fmt"
	"net/url"
)

// APIError is returned when the provider answers with a body-level code other than 200
type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider returned code %d", e.Code)
	}
	return fmt.Sprintf("provider returned code %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether the provider could not resolve the requested location
func (e *APIError) IsNotFound() bool {
	return e.Code == 404
}

// NetworkError wraps transport failures: timeouts, DNS and connection errors,
// and non-2xx responses that carry no provider code.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusError records a non-2xx transport status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch returned status %d", e.StatusCode)
}

// stripURL drops the *url.Error wrapper, whose message embeds the request URL
// and with it the API key.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
