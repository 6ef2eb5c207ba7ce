package adapter

import "errors"

var (
	ErrInvalidBaseURL      = errors.New("invalid base url")
	ErrUnreachable         = errors.New("service unreachable")
	ErrUnauthorized        = errors.New("credentials rejected")
	ErrInternalServerError = errors.New("service responded with a server error")
)
