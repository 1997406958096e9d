package roadrush

import (
	"math/rand"

	"github.com/vovakirdan/turbo-rush/internal/core"
)

// Palette is the cosmetic colour scheme of the lane.
type Palette struct {
	Text       core.Color
	Background core.Color
}

// DefaultPalette is white text on the terminal's own background.
func DefaultPalette() Palette {
	return Palette{Text: core.ColorWhite, Background: core.ColorDefault}
}

// RandomPalette picks text and background uniformly from the 15-colour
// console palette. The two may coincide.
func RandomPalette(rng *rand.Rand) Palette {
	return Palette{
		Text:       core.Color(rng.Intn(core.PaletteSize) + 1),
		Background: core.Color(rng.Intn(core.PaletteSize) + 1),
	}
}

// updatePalette switches to a random palette each time the score reaches
// a new multiple of palette.every.
func (g *Game) updatePalette() {
	if g.score%g.cfg.Palette.Every == 0 && g.score != g.paletteScore {
		g.paletteScore = g.score
		g.palette = RandomPalette(g.rng)
	}
}
