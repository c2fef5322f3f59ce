// services/errors.go
package services

import "errors"

var (
	// ErrNotFound is returned when the target recipe or user does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotAdmin is returned when a non-admin caller attempts an
	// admin-only action. Nothing is changed before this is checked.
	ErrNotAdmin = errors.New("admin privileges required")

	// ErrInvalidTransition is returned for moves the approval lifecycle
	// does not allow, such as approving a rejected recipe.
	ErrInvalidTransition = errors.New("invalid approval transition")
)
