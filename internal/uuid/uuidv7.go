// Package uuid generates identifiers for records stored in the SQL backends.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a UUIDv7. The leading 48 bits are a millisecond Unix
// timestamp, so ids sort in creation order within the primary key index.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Random source failure: fall back to a v4.
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
