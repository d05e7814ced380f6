package models

import "errors"

// Domain specific errors.
var (
	ErrEmptyMessage      = errors.New("message cannot be empty")
	ErrUnknownScreen     = errors.New("unknown screen")
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyCompletion   = errors.New("completion returned no text")
	ErrMapSDKUnavailable = errors.New("map sdk unavailable")
)
