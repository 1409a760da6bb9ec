package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthenticated = errors.New("user must be logged in")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUnavailable     = errors.New("server unavailable")
	ErrNoFavoriteList  = errors.New("no favorite list selected")

	ErrLocalDataNotAvailable = errors.New("local data unavailable")
)

// RemoteError is a non-2xx answer from the API.
type RemoteError struct {
	Op         Operation
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: remote status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: remote status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// TransportError means no usable response was obtained: the request could
// not be sent, the body could not be read, or it was not valid JSON.
type TransportError struct {
	Op  Operation
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrUnavailable
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.StatusCode
	}
	return 0
}
