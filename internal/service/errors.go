package service

import "errors"

// Common service-level errors.
var (
	// ErrInvalidCredentials is returned for every failed login, whether the
	// email is unknown or the password wrong. The two cases are deliberately
	// indistinguishable so callers can't probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
