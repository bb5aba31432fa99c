package service

import "github.com/google/uuid"

// newID returns a fresh application-level identifier, distinct from any
// storage-internal id.
func newID() string {
	return uuid.NewString()
}
