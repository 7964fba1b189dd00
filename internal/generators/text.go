package generators

import (
	"math/rand"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/tabgen/internal/domain"
)

const defaultTextLength = 50

// TextGenerator produces pseudo-sentence text truncated to at most the
// column's text length (runes, not bytes).
type TextGenerator struct{}

func (g *TextGenerator) Generate(rng *rand.Rand, col domain.ColumnSpec) (any, error) {
	limit := defaultTextLength
	if col.TextLength != nil {
		limit = *col.TextLength
	}

	text := faker.Paragraph()
	runes := []rune(text)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes), nil
}
