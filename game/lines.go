package game

import "fmt"

// Direction of a line through the board.
type Direction uint8

const (
	Horizontal   Direction = iota // keyed by y, read by increasing x
	Vertical                      // keyed by x, read by increasing y
	DiagonalDown                  // keyed by x-y, read by increasing x
	DiagonalUp                    // keyed by x+y, read by increasing x
)

const (
	numDirections = 4
	maxLines      = 2*Size - 1
)

var directions = [numDirections]Direction{Horizontal, Vertical, DiagonalDown, DiagonalUp}

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case DiagonalDown:
		return "diagonal-down"
	case DiagonalUp:
		return "diagonal-up"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// LineKey identifies a line by its direction and the coordinate that is
// invariant along it.
type LineKey struct {
	Direction Direction
	Offset    int
}

func (k LineKey) String() string {
	return fmt.Sprintf("%s:%d", k.Direction, k.Offset)
}

func lineKeys(c Coordinate) [numDirections]LineKey {
	return [numDirections]LineKey{
		{Direction: Horizontal, Offset: c.Y},
		{Direction: Vertical, Offset: c.X},
		{Direction: DiagonalDown, Offset: c.X - c.Y},
		{Direction: DiagonalUp, Offset: c.X + c.Y},
	}
}

func (k LineKey) slot() int {
	if k.Direction == DiagonalDown {
		return k.Offset + Size - 1
	}
	return k.Offset
}

func keyAt(d Direction, slot int) LineKey {
	if d == DiagonalDown {
		return LineKey{Direction: d, Offset: slot - (Size - 1)}
	}
	return LineKey{Direction: d, Offset: slot}
}

// cells lists the board cells on the line in reading order.
func (k LineKey) cells() []Coordinate {
	out := make([]Coordinate, 0, Size)
	switch k.Direction {
	case Horizontal:
		for x := 0; x < Size; x++ {
			out = append(out, Coordinate{X: x, Y: k.Offset})
		}
	case Vertical:
		for y := 0; y < Size; y++ {
			out = append(out, Coordinate{X: k.Offset, Y: y})
		}
	case DiagonalDown:
		for x := max(0, k.Offset); x <= min(Size-1, Size-1+k.Offset); x++ {
			out = append(out, Coordinate{X: x, Y: x - k.Offset})
		}
	case DiagonalUp:
		for x := max(0, k.Offset-(Size-1)); x <= min(Size-1, k.Offset); x++ {
			out = append(out, Coordinate{X: x, Y: k.Offset - x})
		}
	}
	return out
}

// Lines holds the four direction-keyed line encodings of a state. Each
// string has one symbol per occupied or frontier cell on the line, in
// reading order.
type Lines struct {
	lines [numDirections][maxLines]string
}

// Get returns the line for k, or "" for an unknown key.
func (l *Lines) Get(k LineKey) string {
	if k.Direction >= numDirections || k.slot() < 0 || k.slot() >= maxLines {
		return ""
	}
	return l.lines[k.Direction][k.slot()]
}

// Each visits every non-empty line.
func (l *Lines) Each(fn func(LineKey, string)) {
	for _, d := range directions {
		for slot, line := range l.lines[d] {
			if line != "" {
				fn(keyAt(d, slot), line)
			}
		}
	}
}

// materializeLines builds every line in a single pass over occupied and
// frontier cells sorted by (x, y).
func materializeLines(s *State) *Lines {
	var buf [numDirections][maxLines][]byte
	var visible cellSet
	for i := range visible {
		visible[i] = s.occupied[i] | s.frontier[i]
	}
	visible.each(func(c Coordinate) {
		sym := s.symbol(c)
		for d, k := range lineKeys(c) {
			buf[d][k.slot()] = append(buf[d][k.slot()], sym)
		}
	})

	lines := &Lines{}
	for d := range buf {
		for slot, b := range buf[d] {
			lines.lines[d][slot] = string(b)
		}
	}
	return lines
}

// reindex derives a child's lines from its parent's by rebuilding only
// the lines through changed cells.
func reindex(parent *Lines, s *State, changed []Coordinate) *Lines {
	lines := &Lines{lines: parent.lines}
	var seen [numDirections][maxLines]bool
	for _, c := range changed {
		for d, k := range lineKeys(c) {
			if seen[d][k.slot()] {
				continue
			}
			seen[d][k.slot()] = true
			lines.lines[d][k.slot()] = buildLine(s, k)
		}
	}
	return lines
}

func buildLine(s *State, k LineKey) string {
	b := make([]byte, 0, Size)
	for _, c := range k.cells() {
		if s.visible(c) {
			b = append(b, s.symbol(c))
		}
	}
	return string(b)
}
