package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were missing or empty on a
// create or rename.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// NotFoundError signals that an operation targeted a record that does not
// exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// ConflictError surfaces a slug uniqueness violation, either a raw
// duplicate-key error from the storage layer or one that survived the bounded
// renumber loop.
type ConflictError struct {
	Slug string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("slug %q is already taken", e.Slug)
}
