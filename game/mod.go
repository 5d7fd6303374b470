package game

import "errors"

const (
	Size          = 19
	Cells         = Size * Size
	WinLength     = 5
	CapturesToWin = 5
)

// WinScore is the heuristic value of a decided position. Every other
// reachable score stays well below it.
const WinScore = 1_000_000

var (
	ErrOutOfBounds     = errors.New("coordinate out of bounds")
	ErrOccupied        = errors.New("coordinate already occupied")
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrInvalidPosition = errors.New("invalid position")
)

// Side identifies one of the two players. First is the maximizing side.
type Side uint8

const (
	NoSide Side = iota
	First
	Second
)

func (s Side) Opponent() Side {
	switch s {
	case First:
		return Second
	case Second:
		return First
	default:
		return NoSide
	}
}

// Symbol is the character used for the side in line encodings.
func (s Side) Symbol() byte {
	switch s {
	case First:
		return SymbolFirst
	case Second:
		return SymbolSecond
	default:
		return SymbolEmpty
	}
}

func (s Side) index() int {
	return int(s) - 1
}

const (
	SymbolFirst  = 'x'
	SymbolSecond = 'o'
	SymbolEmpty  = '-'
)

// Outcome of a terminal check.
type Outcome uint8

const (
	Ongoing Outcome = iota
	FirstWins
	SecondWins
	Draw
)

// Winner returns the winning side, or NoSide for Ongoing and Draw.
func (o Outcome) Winner() Side {
	switch o {
	case FirstWins:
		return First
	case SecondWins:
		return Second
	default:
		return NoSide
	}
}

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first"
	case SecondWins:
		return "second"
	case Draw:
		return "draw"
	default:
		return "ongoing"
	}
}

// Evaluator scores a state. Positive values favor the First side.
type Evaluator interface {
	Evaluate(*State) int
}

// EvaluatorFunc adapts a plain function to an Evaluator.
type EvaluatorFunc func(*State) int

func (f EvaluatorFunc) Evaluate(s *State) int {
	return f(s)
}

// Terminal decides whether a state ends the game.
type Terminal interface {
	Terminated(*State) Outcome
}
