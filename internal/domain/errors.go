package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

// FetchError wraps any failure on an upstream HTTP call: network error,
// timeout, non-2xx status, or a payload that does not decode. Callers decide
// retry policy; the watchers just skip the tick.
type FetchError struct {
	Endpoint string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
