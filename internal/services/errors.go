package services

import "errors"

var (
	// ErrNotFound means the requested row does not exist at all.
	ErrNotFound = errors.New("record not found")
	// ErrNotOwner means the row exists but belongs to another user.
	ErrNotOwner = errors.New("record owned by another user")
)
