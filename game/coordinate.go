package game

import (
	"fmt"
	"math/bits"
)

// Coordinate is a cell on the board.
type Coordinate struct {
	X, Y int
}

// Center of the board.
var Center = Coordinate{X: Size / 2, Y: Size / 2}

func (c Coordinate) InBounds() bool {
	return c.X >= 0 && c.X < Size && c.Y >= 0 && c.Y < Size
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// index orders cells by x first, then y, which is the order every
// line encoding reads the board in.
func (c Coordinate) index() int {
	return c.X*Size + c.Y
}

func coordinateAt(index int) Coordinate {
	return Coordinate{X: index / Size, Y: index % Size}
}

// neighbors returns the in-bounds cells within Chebyshev distance 1,
// excluding c itself.
func (c Coordinate) neighbors() []Coordinate {
	out := make([]Coordinate, 0, 8)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coordinate{X: c.X + dx, Y: c.Y + dy}
			if n.InBounds() {
				out = append(out, n)
			}
		}
	}
	return out
}

// cellSet is a fixed-size bitset over board cells. Being a value type,
// copying a state copies its sets without sharing.
type cellSet [(Cells + 63) / 64]uint64

func (s *cellSet) add(c Coordinate) {
	i := c.index()
	s[i/64] |= 1 << (i % 64)
}

func (s *cellSet) remove(c Coordinate) {
	i := c.index()
	s[i/64] &^= 1 << (i % 64)
}

func (s *cellSet) has(c Coordinate) bool {
	i := c.index()
	return s[i/64]&(1<<(i%64)) != 0
}

func (s *cellSet) len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// each visits members in ascending index order.
func (s *cellSet) each(fn func(Coordinate)) {
	for wi, w := range s {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(coordinateAt(wi*64 + b))
			w &= w - 1
		}
	}
}

func (s *cellSet) slice() []Coordinate {
	out := make([]Coordinate, 0, s.len())
	s.each(func(c Coordinate) {
		out = append(out, c)
	})
	return out
}
