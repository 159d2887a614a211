package assistant

// guide tracks the current position in the fixed onboarding step list.
// Navigation clamps at both ends; there is no wraparound and no error.
type guide struct {
	index     int
	stepCount int
}

func (g *guide) next() int {
	if g.index+1 < g.stepCount {
		g.index++
	}
	return g.index
}

func (g *guide) previous() int {
	if g.index > 0 {
		g.index--
	}
	return g.index
}
