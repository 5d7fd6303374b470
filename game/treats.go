package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTreats = errors.New("invalid treat table")

// Treat is a pattern-table entry. Templates are written in line symbols;
// Template uses the First side's symbol and OpponentTemplate the Second
// side's. A Terminal entry decides the position, so its values must be
// WinScore.
type Treat struct {
	Name             string
	Template         string
	OpponentTemplate string
	ToMove           int // value when the template's owner is to move
	Waiting          int // value otherwise
	Terminal         bool
}

func treat(name, template string, toMove, waiting int) Treat {
	return Treat{
		Name:             name,
		Template:         template,
		OpponentTemplate: opponentTemplate(template),
		ToMove:           toMove,
		Waiting:          waiting,
	}
}

// defaultTreats is ordered strongest to weakest.
var defaultTreats = []Treat{
	{
		Name:             "five",
		Template:         "xxxxx",
		OpponentTemplate: "ooooo",
		ToMove:           WinScore,
		Waiting:          WinScore,
		Terminal:         true,
	},
	treat("open-four", "-xxxx-", 50_000, 10_000),
	treat("four", "-xxxx", 20_000, 4_000),
	treat("split-four", "xxx-x", 20_000, 4_000),
	treat("gapped-four", "xx-xx", 20_000, 4_000),
	treat("open-three", "-xxx-", 5_000, 1_000),
	treat("split-three", "-xx-x-", 3_000, 600),
	treat("wide-three", "-x--xx-", 800, 200),
	treat("closed-three", "xxx--", 800, 200),
	treat("open-two", "-xx-", 100, 50),
}

// Treats returns a copy of the default pattern table.
func Treats() []Treat {
	out := make([]Treat, len(defaultTreats))
	copy(out, defaultTreats)
	return out
}

func opponentTemplate(template string) string {
	return strings.Map(func(r rune) rune {
		if r == SymbolFirst {
			return SymbolSecond
		}
		return r
	}, template)
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// validateTreats checks that a table is ordered strongest first, with
// terminal entries leading, and that templates are well formed.
func validateTreats(treats []Treat) error {
	if len(treats) == 0 {
		return fmt.Errorf("empty table: %w", ErrInvalidTreats)
	}
	terminalDone := false
	for i, t := range treats {
		if t.Template == "" || strings.Trim(t.Template, string([]byte{SymbolFirst, SymbolEmpty})) != "" {
			return fmt.Errorf("treat %q template %q: %w", t.Name, t.Template, ErrInvalidTreats)
		}
		if t.OpponentTemplate != opponentTemplate(t.Template) {
			return fmt.Errorf("treat %q opponent template %q does not mirror %q: %w",
				t.Name, t.OpponentTemplate, t.Template, ErrInvalidTreats)
		}
		if t.Terminal {
			if terminalDone {
				return fmt.Errorf("terminal treat %q after non-terminal ones: %w", t.Name, ErrInvalidTreats)
			}
			if t.ToMove != WinScore || t.Waiting != WinScore {
				return fmt.Errorf("terminal treat %q values %d/%d must be %d: %w", t.Name, t.ToMove, t.Waiting, WinScore, ErrInvalidTreats)
			}
			continue
		}
		terminalDone = true
		if t.ToMove < 0 || t.Waiting < 0 || t.ToMove >= WinScore || t.Waiting >= WinScore {
			return fmt.Errorf("treat %q values %d/%d out of range: %w", t.Name, t.ToMove, t.Waiting, ErrInvalidTreats)
		}
		if i > 0 && !treats[i-1].Terminal && t.ToMove > treats[i-1].ToMove {
			return fmt.Errorf("treat %q stronger than %q: %w", t.Name, treats[i-1].Name, ErrInvalidTreats)
		}
	}
	return nil
}
