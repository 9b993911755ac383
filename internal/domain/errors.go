package domain

import "errors"

var (
	ErrNoChoices    = errors.New("completion returned no choices")
	ErrChatNotFound = errors.New("chat not found")
	ErrUnauthorized = errors.New("user not in allowlist")
)
