package game

import (
	"fmt"
	"strings"
)

// Placement is a stone owned by a player, as handed over by the caller.
type Placement struct {
	Coordinate
	Player string
}

// Position is everything needed to rebuild a state from stored records.
// Coordinates are expected to be validated by the caller.
type Position struct {
	Players  [2]string
	Stones   []Placement
	Captures map[string]int // pairs captured so far, by player
	ToMove   string
}

// Capture is a bracketed pair removed by a move.
type Capture struct {
	By     Side
	Stones [2]Coordinate
}

// Choice is what the search decided on a state.
type Choice struct {
	Move  Coordinate
	Value int
	Found bool // false when no child improved the bound
}

// State is a board snapshot for one ply. States are never mutated after
// construction apart from their lazily built lines and the recorded
// search choice; Play always returns a fresh state.
type State struct {
	players      [2]string
	stones       [2]cellSet
	occupied     cellSet
	frontier     cellSet
	captures     [2]int
	captureBonus int
	toMove       Side

	parent   *State
	move     Coordinate
	hasMove  bool
	captured []Capture

	lines  *Lines
	chosen *Choice
}

// NewState builds a root state from a stored position.
func NewState(p Position) (*State, error) {
	if p.Players[0] == "" || p.Players[1] == "" || p.Players[0] == p.Players[1] {
		return nil, fmt.Errorf("players %q and %q: %w", p.Players[0], p.Players[1], ErrInvalidPosition)
	}
	s := &State{players: p.Players}

	side, ok := s.SideOf(p.ToMove)
	if !ok {
		return nil, fmt.Errorf("player to move %q: %w", p.ToMove, ErrUnknownPlayer)
	}
	s.toMove = side

	for _, stone := range p.Stones {
		if !stone.InBounds() {
			return nil, fmt.Errorf("stone at %s: %w", stone.Coordinate, ErrOutOfBounds)
		}
		owner, ok := s.SideOf(stone.Player)
		if !ok {
			return nil, fmt.Errorf("stone at %s owned by %q: %w", stone.Coordinate, stone.Player, ErrUnknownPlayer)
		}
		if s.occupied.has(stone.Coordinate) {
			return nil, fmt.Errorf("stone at %s: %w", stone.Coordinate, ErrOccupied)
		}
		s.stones[owner.index()].add(stone.Coordinate)
		s.occupied.add(stone.Coordinate)
	}

	for player, count := range p.Captures {
		owner, ok := s.SideOf(player)
		if !ok {
			return nil, fmt.Errorf("captures of %q: %w", player, ErrUnknownPlayer)
		}
		if count < 0 {
			return nil, fmt.Errorf("captures of %q is %d: %w", player, count, ErrInvalidPosition)
		}
		s.captures[owner.index()] = count
	}

	s.initFrontier()
	return s, nil
}

// NewEmptyState returns an empty board with the first player to move.
func NewEmptyState(first, second string) (*State, error) {
	return NewState(Position{Players: [2]string{first, second}, ToMove: first})
}

func (s *State) initFrontier() {
	s.occupied.each(func(c Coordinate) {
		for _, n := range c.neighbors() {
			if !s.occupied.has(n) {
				s.frontier.add(n)
			}
		}
	})
}

// Play returns the state reached by the side to move placing a stone on c.
// Captures are resolved immediately.
func (s *State) Play(c Coordinate) (*State, error) {
	if !c.InBounds() {
		return nil, fmt.Errorf("play %s: %w", c, ErrOutOfBounds)
	}
	if s.occupied.has(c) {
		return nil, fmt.Errorf("play %s: %w", c, ErrOccupied)
	}

	child := *s
	child.parent = s
	child.move = c
	child.hasMove = true
	child.captured = nil
	child.lines = nil
	child.chosen = nil

	mover := s.toMove
	child.stones[mover.index()].add(c)
	child.occupied.add(c)
	child.frontier.remove(c)

	changed := make([]Coordinate, 0, 13)
	changed = append(changed, c)
	for _, n := range c.neighbors() {
		if !child.occupied.has(n) && !child.frontier.has(n) {
			child.frontier.add(n)
			changed = append(changed, n)
		}
	}

	for _, capture := range child.findCaptures(c, mover) {
		child.applyCapture(capture)
		changed = append(changed, capture.Stones[0], capture.Stones[1])
	}

	child.toMove = mover.Opponent()
	if s.lines != nil {
		child.lines = reindex(s.lines, &child, changed)
	}
	return &child, nil
}

func (s *State) SideOf(player string) (Side, bool) {
	switch player {
	case s.players[0]:
		return First, true
	case s.players[1]:
		return Second, true
	default:
		return NoSide, false
	}
}

func (s *State) Players() [2]string {
	return s.players
}

// Player returns the identifier of side, or "" for NoSide.
func (s *State) Player(side Side) string {
	if side == NoSide {
		return ""
	}
	return s.players[side.index()]
}

func (s *State) ToMove() Side {
	return s.toMove
}

// Maximizing reports whether the First side is to move.
func (s *State) Maximizing() bool {
	return s.toMove == First
}

// At returns the owner of c, or NoSide.
func (s *State) At(c Coordinate) Side {
	switch {
	case !c.InBounds():
		return NoSide
	case s.stones[0].has(c):
		return First
	case s.stones[1].has(c):
		return Second
	default:
		return NoSide
	}
}

func (s *State) Stones(side Side) []Coordinate {
	if side == NoSide {
		return nil
	}
	return s.stones[side.index()].slice()
}

func (s *State) StoneCount() int {
	return s.occupied.len()
}

// Moves lists the frontier in (x, y) order. These are the only moves the
// search considers.
func (s *State) Moves() []Coordinate {
	return s.frontier.slice()
}

func (s *State) InFrontier(c Coordinate) bool {
	return c.InBounds() && s.frontier.has(c)
}

func (s *State) Captures(side Side) int {
	if side == NoSide {
		return 0
	}
	return s.captures[side.index()]
}

// CaptureBonus is the capture value accrued along this lineage, positive
// for the First side.
func (s *State) CaptureBonus() int {
	return s.captureBonus
}

func (s *State) Parent() *State {
	return s.parent
}

// Move returns the coordinate that produced this state, if any.
func (s *State) Move() (Coordinate, bool) {
	return s.move, s.hasMove
}

// Captured returns the captures made by the move that produced this state.
func (s *State) Captured() []Capture {
	out := make([]Capture, len(s.captured))
	copy(out, s.captured)
	return out
}

// Lines returns the line encodings, building them on first use.
func (s *State) Lines() *Lines {
	if s.lines == nil {
		s.lines = materializeLines(s)
	}
	return s.lines
}

// Record stores the search decision on this state.
func (s *State) Record(c Choice) {
	s.chosen = &c
}

func (s *State) Chosen() (Choice, bool) {
	if s.chosen == nil {
		return Choice{}, false
	}
	return *s.chosen, true
}

func (s *State) visible(c Coordinate) bool {
	return s.occupied.has(c) || s.frontier.has(c)
}

func (s *State) symbol(c Coordinate) byte {
	return s.At(c).Symbol()
}

// Pretty renders the board with X and O for stones and '.' for frontier
// cells.
func (s *State) Pretty() string {
	var b strings.Builder
	b.WriteString("   ")
	for x := 0; x < Size; x++ {
		fmt.Fprintf(&b, "%2d", x)
	}
	b.WriteByte('\n')
	for y := 0; y < Size; y++ {
		fmt.Fprintf(&b, "%2d ", y)
		for x := 0; x < Size; x++ {
			c := Coordinate{X: x, Y: y}
			switch {
			case s.stones[0].has(c):
				b.WriteString(" X")
			case s.stones[1].has(c):
				b.WriteString(" O")
			case s.frontier.has(c):
				b.WriteString(" .")
			default:
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *State) String() string {
	return fmt.Sprintf("%s=%v %s=%v to_move=%s captures=%v",
		s.players[0], s.Stones(First), s.players[1], s.Stones(Second), s.Player(s.toMove), s.captures)
}
