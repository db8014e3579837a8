package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("user already exists")

	// ErrInvalidFilter is wrapped with the offending parameter.
	ErrInvalidFilter          = errors.New("invalid filter")
	ErrNoTransactionsToExport = errors.New("no transactions found to export for the given criteria")
)
