package generators

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/mmrzaf/tabgen/internal/domain"
)

// UUIDGenerator draws version-4 UUID bytes from the rng instead of
// crypto/rand so identifiers are reproducible under a fixed seed.
type UUIDGenerator struct{}

func (g *UUIDGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	uuidBytes := make([]byte, 16)
	rng.Read(uuidBytes)
	uuidBytes[6] = (uuidBytes[6] & 0x0f) | 0x40
	uuidBytes[8] = (uuidBytes[8] & 0x3f) | 0x80
	u, err := uuid.FromBytes(uuidBytes)
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}
