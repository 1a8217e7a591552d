package poker

// Stage is a step of a round. Host and guest walk the same sequence, so each
// side knows which record comes next from its own stage alone.
type Stage string

const (
	PreFlop  Stage = "preflop"
	Flop     Stage = "flop"
	Turn     Stage = "turn"
	River    Stage = "river"
	Showdown Stage = "showdown"
)

var stages = []Stage{PreFlop, Flop, Turn, River, Showdown}

// Next returns the following stage. Showdown wraps to PreFlop and an unknown
// stage defaults to PreFlop.
func (s Stage) Next() Stage {
	for i, r := range stages {
		if r == s {
			if i < len(stages)-1 {
				return stages[i+1]
			}
			return stages[0]
		}
	}
	return PreFlop
}

// Reveal is the number of community cards dealt when the stage opens.
func (s Stage) Reveal() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

// BoardSize is the number of community cards on the table once the stage
// has been revealed.
func (s Stage) BoardSize() int {
	n := 0
	for _, r := range stages {
		n += r.Reveal()
		if r == s {
			return n
		}
	}
	return 0
}

// Betting reports whether players act during the stage.
func (s Stage) Betting() bool {
	return s == PreFlop || s == Flop || s == Turn || s == River
}
