package repository

import "github.com/google/uuid"

// newID returns a time-ordered unique id. UUIDv7 ids sort by creation time
// and do not collide within a process.
var newID = func() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
