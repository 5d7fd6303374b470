package game

import "strings"

// StandardRules decides games by WinLength in a row or CapturesToWin
// captured pairs. The zero value is ready to use.
type StandardRules struct{}

var (
	firstRun  = strings.Repeat(string(rune(SymbolFirst)), WinLength)
	secondRun = strings.Repeat(string(rune(SymbolSecond)), WinLength)
)

func NewStandardRules() *StandardRules {
	return &StandardRules{}
}

// Terminated checks capture counts first, then every line for a run of
// WinLength stones. Runs for both sides at once are a draw.
func (sr *StandardRules) Terminated(s *State) Outcome {
	if outcome := captureOutcome(s); outcome != Ongoing {
		return outcome
	}

	var first, second bool
	s.Lines().Each(func(_ LineKey, line string) {
		first = first || strings.Contains(line, firstRun)
		second = second || strings.Contains(line, secondRun)
	})
	return combine(first, second)
}

// DeeperWinner re-checks a nominal line win one ply deeper. A winner that
// any reply contradicts with a different, non-draw winner is replaced by
// that reply's winner. Capture wins are final.
func (sr *StandardRules) DeeperWinner(s *State) Outcome {
	nominal := sr.Terminated(s)
	if nominal == Ongoing {
		return Ongoing
	}
	if captureOutcome(s) != Ongoing {
		return nominal
	}

	for _, move := range s.Moves() {
		child, err := s.Play(move)
		if err != nil {
			continue
		}
		if outcome := sr.Terminated(child); outcome.Winner() != NoSide && outcome != nominal {
			return outcome
		}
	}
	return nominal
}

func captureOutcome(s *State) Outcome {
	return combine(s.Captures(First) >= CapturesToWin, s.Captures(Second) >= CapturesToWin)
}

func combine(first, second bool) Outcome {
	switch {
	case first && second:
		return Draw
	case first:
		return FirstWins
	case second:
		return SecondWins
	default:
		return Ongoing
	}
}
