package services

import "errors"

var (
	// ErrEmailTaken means the registration email is already in use.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong
	// password. Callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	// ErrUserNotFound means the token subject no longer resolves to a
	// user. Surfaced as an authentication failure at the boundary.
	ErrUserNotFound = errors.New("user not found")

	// ErrNotFound covers a missing resource and a resource owned by a
	// different user. Both yield the same 404.
	ErrNotFound = errors.New("not found")
)
