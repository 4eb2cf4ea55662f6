package httpserver

import "errors"

var (
	// ErrStart wraps listener and serve failures returned by Run.
	ErrStart = errors.New("httpserver: start failed")
	// ErrAlreadyRunning is joined with ErrStart when Run is called twice.
	ErrAlreadyRunning = errors.New("httpserver: already running")
	// ErrShutdown wraps errors from a graceful shutdown that missed its deadline.
	ErrShutdown = errors.New("httpserver: shutdown failed")
)
