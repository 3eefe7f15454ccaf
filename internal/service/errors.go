package service

import (
	"errors"
	"strings"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// ValidationError carries the per-item checkout failures; the messages are
// user-facing and joined for display.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ". ")
}
