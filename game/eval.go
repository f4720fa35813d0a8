package game

// Evaluate scores s for the maximizing side. The weights form a strict
// lexicographic order: any bank beats terminal proximity, which beats the
// size of an unfinished number.
//
// Terminal states must already carry their settlement, which Next applies.
func (r *Rules) Evaluate(s State) float64 {
	terminal := r.IsTerminal(s)
	span := float64(r.MaxNumber() - r.MinStartNumber)

	bankComponent := s.Bank
	if terminal {
		bankComponent = 0
	}
	k := 1.0
	if (bankComponent+s.Points)%2 != 0 {
		k = -1.0
	}

	x1 := float64(min(s.Bank, 1))
	x2, x3 := 0.0, 0.0
	if terminal {
		// Rewards finishing with a smaller overshoot
		x2 = float64(r.MaxNumber()-s.Number) / span
	} else {
		x3 = float64(s.Number) / span
	}

	return k * (100*x1 + 10*x2 + 1*x3)
}
