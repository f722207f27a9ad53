package service

import "github.com/google/uuid"

// newID returns a UUIDv7. Its time prefix makes _id order follow creation
// order, which breaks ties between timestamps stored at millisecond precision.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}
