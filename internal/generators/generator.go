package generators

import (
	"math/rand"

	"github.com/mmrzaf/tabgen/internal/domain"
)

// Generator produces one value per call for a column. Implementations are
// stateless; all randomness comes from the rng handle or the fake-data
// provider's shared source, so draw order alone determines reproducibility.
type Generator interface {
	Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error)
}
