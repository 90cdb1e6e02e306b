package main

import "errors"

var (
	// errInvalidData is returned after reporting input that failed validation.
	errInvalidData = errors.New("invalid data")

	errUnknownOutput      = errors.New("unknown output format")
	errUnsupportedInput   = errors.New("unsupported input format")
	errReadingInput       = errors.New("failed to read input")
	errDecodingInput      = errors.New("failed to decode input")
	errInvalidLogSettings = errors.New("invalid log settings")
)
