package service

import (
	"errors"
	"fmt"
)

var (
	// ErrRecipeNotFound is returned when a recipe id does not exist
	ErrRecipeNotFound = errors.New("recipe not found")
	// ErrUserNotFound is returned when a user id or email does not exist
	ErrUserNotFound = errors.New("user not found")
	// ErrNotOwner is returned when a caller tries to modify a recipe they do not own
	ErrNotOwner = errors.New("you are not authorized to modify this recipe")
	// ErrEmailInUse is returned when registering with an already-registered email
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials is returned when login fails
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError indicates a malformed or incomplete request
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamRequestError indicates the HTTP call to the LLM provider failed
type UpstreamRequestError struct {
	Err error
}

func (e *UpstreamRequestError) Error() string {
	return fmt.Sprintf("LLM request failed: %v", e.Err)
}

func (e *UpstreamRequestError) Unwrap() error {
	return e.Err
}

// UpstreamParseError indicates the provider response envelope was missing
// expected fields or could not be decoded
type UpstreamParseError struct {
	Err error
}

func (e *UpstreamParseError) Error() string {
	return fmt.Sprintf("unable to parse LLM response: %v", e.Err)
}

func (e *UpstreamParseError) Unwrap() error {
	return e.Err
}
