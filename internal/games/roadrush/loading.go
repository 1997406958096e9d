package roadrush

import "github.com/vovakirdan/turbo-rush/internal/core"

// loadingSteps is the number of progress frames: 0%, 10%, ... 100%.
const loadingSteps = 11

// stepLoading advances the loading screen. Confirm or Fire skips it.
func (g *Game) stepLoading(in core.InputFrame) {
	g.loadingTicks++
	skip := in.Has(core.ActionConfirm) || in.Has(core.ActionFire)
	if skip || g.loadingTicks >= g.loadingTotal() {
		g.phase = core.PhasePlaying
	}
}

// loadingTotal is the length of the loading phase in ticks.
func (g *Game) loadingTotal() int {
	return loadingSteps*g.cfg.Loading.StepTicks + g.cfg.Loading.HoldTicks
}

// loadingPercent returns the progress shown on the loading bar.
func (g *Game) loadingPercent() int {
	if g.cfg.Loading.StepTicks <= 0 {
		return 100
	}
	pct := g.loadingTicks / g.cfg.Loading.StepTicks * 10
	if pct > 100 {
		pct = 100
	}
	return pct
}

// loaded reports whether the progress bar finished and the
// "Game Loaded" line is showing.
func (g *Game) loaded() bool {
	return g.loadingTicks >= loadingSteps*g.cfg.Loading.StepTicks
}
