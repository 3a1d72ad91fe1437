package utils

import "github.com/google/uuid"

// UUIDGenerator produces identifiers for session rows. V7 IDs are
// time-ordered, which keeps the sessions index append-friendly.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to v4 when the
// monotonic source fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
