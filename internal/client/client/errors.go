package client

import "errors"

var ErrUnavailable = errors.New("server unavailable")

// statusError keeps the server's message while matching a sentinel.
type statusError struct {
	sentinel error
	msg      string
}

func (e *statusError) Error() string { return e.msg }

func (e *statusError) Unwrap() error { return e.sentinel }
