package rest

import (
	"errors"
	"fmt"
	"net/http"
)

// NetworkError reports a transport-level failure: the request never produced
// an HTTP response (DNS, connect, timeout, ...).
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RequestError reports a non-2xx response. Message carries the
// server-supplied error text when the body had one.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// NotFound reports whether err is a RequestError with a 404 status.
func NotFound(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}
