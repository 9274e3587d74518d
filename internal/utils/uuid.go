package utils

import "github.com/google/uuid"

// UUIDGenerator produces client-side entity identifiers. UUIDv7 keeps ids
// time-ordered, which keeps cache scans and server indexes friendly; the
// same id becomes the eventual remote primary key, so there is no
// temp-to-permanent remapping step.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
