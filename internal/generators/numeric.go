package generators

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/mmrzaf/tabgen/internal/domain"
)

const (
	defaultIntMin = 0
	defaultIntMax = 1000

	defaultFloatMin = 0.0
	defaultFloatMax = 1000.0
)

// IntegerGenerator draws a uniform integer in [min, max] inclusive.
// Bounds are coerced to int64 before sampling.
type IntegerGenerator struct{}

func (g *IntegerGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	min := int64(defaultIntMin)
	max := int64(defaultIntMax)
	if col.MinValue != nil {
		min = int64(*col.MinValue)
	}
	if col.MaxValue != nil {
		max = int64(*col.MaxValue)
	}
	if max < min {
		return nil, fmt.Errorf("integer range [%d, %d] is empty", min, max)
	}
	return min + rng.Int63n(max-min+1), nil
}

// FloatGenerator draws a uniform float in [min, max], rounded to 2 decimals.
type FloatGenerator struct{}

func (g *FloatGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	min := defaultFloatMin
	max := defaultFloatMax
	if col.MinValue != nil {
		min = *col.MinValue
	}
	if col.MaxValue != nil {
		max = *col.MaxValue
	}
	if max < min {
		return nil, fmt.Errorf("float range [%v, %v] is empty", min, max)
	}
	v := min + rng.Float64()*(max-min)
	return math.Round(v*100) / 100, nil
}

type BooleanGenerator struct{}

func (g *BooleanGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	return rng.Intn(2) == 1, nil
}
