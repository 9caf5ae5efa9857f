package service

import "errors"

var (
	// ErrTaskNotFound is returned when the server answers a task lookup
	// with null.
	ErrTaskNotFound = errors.New("task not found")
	// ErrEmptyToken is returned when an auth response carries no token.
	ErrEmptyToken = errors.New("auth response without token")
	// ErrEmptyResult is returned when a mutation answers with null.
	ErrEmptyResult = errors.New("empty mutation result")
)
