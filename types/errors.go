package types

import "errors"

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrOverflow      = errors.New("integer overflow")
	ErrUnmarshal     = errors.New("unmarshal error")
)
