package assistant

import "errors"

var (
	// ErrEmptyInput is returned by the delivery layer when the request
	// body carries no input text.
	ErrEmptyInput = errors.New("input text is required")
)
