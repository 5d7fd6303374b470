package game

import "strings"

type compiledTreat struct {
	Treat
	patterns [2][]string // per side: template, plus its reversal when different
	minLen   int
}

// PatternEvaluator scores a state by counting pattern-table matches on
// every line, plus the capture bonus of the lineage.
type PatternEvaluator struct {
	terminal []compiledTreat
	treats   []compiledTreat
}

// NewPatternEvaluator returns an evaluator over the default table.
func NewPatternEvaluator() *PatternEvaluator {
	return compileTreats(defaultTreats)
}

// NewPatternEvaluatorWithTreats returns an evaluator over a custom table.
func NewPatternEvaluatorWithTreats(treats []Treat) (*PatternEvaluator, error) {
	if err := validateTreats(treats); err != nil {
		return nil, err
	}
	return compileTreats(treats), nil
}

func compileTreats(treats []Treat) *PatternEvaluator {
	e := &PatternEvaluator{}
	for _, t := range treats {
		ct := compiledTreat{Treat: t, minLen: len(t.Template)}
		for i, template := range []string{t.Template, t.OpponentTemplate} {
			ct.patterns[i] = append(ct.patterns[i], template)
			if r := reverse(template); r != template {
				ct.patterns[i] = append(ct.patterns[i], r)
			}
		}
		if t.Terminal {
			e.terminal = append(e.terminal, ct)
		} else {
			e.treats = append(e.treats, ct)
		}
	}
	return e
}

// Evaluate returns ±WinScore for a decided position, 0 when both sides
// are decided at once, and the pattern score otherwise.
func (e *PatternEvaluator) Evaluate(s *State) int {
	if score, decided := outcomeScore(captureOutcome(s)); decided {
		return score
	}

	lines := s.Lines()
	var firstFive, secondFive bool
	lines.Each(func(_ LineKey, line string) {
		for _, t := range e.terminal {
			firstFive = firstFive || containsAny(line, t.patterns[0])
			secondFive = secondFive || containsAny(line, t.patterns[1])
		}
	})
	if score, decided := outcomeScore(combine(firstFive, secondFive)); decided {
		return score
	}

	score := 0
	lines.Each(func(_ LineKey, line string) {
		for _, t := range e.treats {
			if len(line) < t.minLen {
				continue
			}
			for i, side := range [2]Side{First, Second} {
				n := 0
				for _, p := range t.patterns[i] {
					n += countOverlapping(line, p)
				}
				if n == 0 {
					continue
				}
				value := t.Waiting
				if s.ToMove() == side {
					value = t.ToMove
				}
				if side == First {
					score += n * value
				} else {
					score -= n * value
				}
			}
		}
	})
	return score + s.CaptureBonus()
}

func outcomeScore(o Outcome) (int, bool) {
	switch o {
	case FirstWins:
		return WinScore, true
	case SecondWins:
		return -WinScore, true
	case Draw:
		return 0, true
	default:
		return 0, false
	}
}

func containsAny(line string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}

// countOverlapping counts every occurrence of pattern in line, including
// occurrences that overlap each other.
func countOverlapping(line, pattern string) int {
	n := 0
	for i := 0; i+len(pattern) <= len(line); {
		j := strings.Index(line[i:], pattern)
		if j < 0 {
			break
		}
		n++
		i += j + 1
	}
	return n
}
