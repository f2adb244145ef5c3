// Package service holds the business logic of the site backend.
package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrInvalidMessage rejects a chat turn whose message is empty or whitespace.
	ErrInvalidMessage = errors.New("invalid chat message")
	// ErrContentRead means the chatbot context could not be assembled.
	ErrContentRead = errors.New("failed to read site content")
	// ErrModelCall means the hosted model did not produce a usable reply.
	ErrModelCall = errors.New("model call failed")
	// ErrModelTimeout is the deadline-expired kind of ErrModelCall.
	ErrModelTimeout = fmt.Errorf("%w: timed out", ErrModelCall)

	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidInput       = errors.New("invalid input")
)

// translateNotFound maps gorm's missing-row error onto ErrNotFound.
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
