package session

import (
	"context"
	"errors"
)

const MinPasswordLength = 8

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password too short")
)

// ValidateRegistration checks the sign-up form before Register is attempted.
func ValidateRegistration(password, confirmPassword string) error {
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Message turns an error from this package into text fit for an end user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrUserExists):
		return "User with this email already exists"
	case errors.Is(err, ErrPasswordMismatch):
		return "Passwords do not match"
	case errors.Is(err, ErrPasswordTooShort):
		return "Password must be at least 8 characters"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "The request was cancelled. Please try again."
	default:
		return "An error occurred. Please try again later."
	}
}
