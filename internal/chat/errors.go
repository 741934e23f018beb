package chat

import "errors"

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
)
