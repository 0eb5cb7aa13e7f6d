package common

import "errors"

var (
	// ErrInvalidToken marks a token that cannot be decoded.
	ErrInvalidToken = errors.New("invalid token")

	// ErrWrongPassphrase is returned when sealed credentials cannot be opened.
	ErrWrongPassphrase = errors.New("wrong store passphrase")
)
