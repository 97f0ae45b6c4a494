package rng

import (
	"fmt"

	"github.com/gofrs/uuid"
)

// UUID returns a new random (version 4) UUID read from the generator.
func (g *Generator) UUID() (uuid.UUID, error) {
	id, err := uuid.NewGenWithOptions(uuid.WithRandomReader(g)).NewV4()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate uuid: %w", err)
	}
	return id, nil
}

// UUID returns a new random (version 4) UUID from the default generator.
func UUID() (uuid.UUID, error) {
	return defaultGenerator.UUID()
}
