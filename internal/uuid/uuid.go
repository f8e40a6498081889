// Package uuid generates time-ordered identifiers for ledger entities.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a UUIDv7 string. UUIDv7 is time-ordered, which keeps IDs
// roughly sortable by creation time. Falls back to a random UUIDv4 if the
// system entropy source fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.NewString()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
