package domain

import "errors"

var (
	ErrUnknownContainer = errors.New("unknown container")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingContainer = errors.New("command requires a server argument")
)
