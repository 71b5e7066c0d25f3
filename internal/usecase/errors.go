package usecase

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrProfileNotFound = errors.New("profile not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrInternal        = errors.New("internal error")
)
