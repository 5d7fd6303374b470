package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaptures(t *testing.T) {
	t.Run("capturing a bracketed pair", func(t *testing.T) {
		s := newTestState(t, merge(row(First, 5, 5), row(Second, 5, 6, 7)), First)

		child := mustPlay(t, s, Coordinate{X: 8, Y: 5})

		require.Equal(t, NoSide, child.At(Coordinate{X: 6, Y: 5}), "Bracketed stone should be removed")
		require.Equal(t, NoSide, child.At(Coordinate{X: 7, Y: 5}), "Bracketed stone should be removed")
		require.Equal(t, 1, child.Captures(First))
		require.Equal(t, 0, child.Captures(Second))
		require.True(t, child.InFrontier(Coordinate{X: 6, Y: 5}), "Captured cell should reopen")
		require.True(t, child.InFrontier(Coordinate{X: 7, Y: 5}), "Captured cell should reopen")
		require.Equal(t, CaptureValue(1), child.CaptureBonus())
		require.Equal(t, []Capture{{By: First, Stones: [2]Coordinate{{7, 5}, {6, 5}}}}, child.Captured())
		require.Equal(t, "-x--x-", child.Lines().Get(LineKey{Direction: Horizontal, Offset: 5}))
		require.Empty(t, s.Captured(), "Parent should report no captures")
	})

	for _, d := range bracketDirections {
		t.Run(fmt.Sprintf("capturing along direction (%d,%d)", d[0], d[1]), func(t *testing.T) {
			move := Coordinate{X: 9, Y: 9}
			first := Coordinate{X: 9 + d[0], Y: 9 + d[1]}
			second := Coordinate{X: 9 + 2*d[0], Y: 9 + 2*d[1]}
			closing := Coordinate{X: 9 + 3*d[0], Y: 9 + 3*d[1]}
			s := newTestState(t, map[Coordinate]Side{first: Second, second: Second, closing: First}, First, 1, 0)

			child := mustPlay(t, s, move)

			require.Equal(t, 2, child.StoneCount(), "Only the two bracketing stones should remain")
			require.Equal(t, 2, child.Captures(First), "Counter should increase by exactly one")
			require.True(t, child.InFrontier(first))
			require.True(t, child.InFrontier(second))
			require.Equal(t, []Capture{{By: First, Stones: [2]Coordinate{first, second}}}, child.Captured())
		})
	}

	t.Run("capturing for the second player", func(t *testing.T) {
		s := newTestState(t, merge(row(Second, 2, 2), row(First, 2, 3, 4)), Second)

		child := mustPlay(t, s, Coordinate{X: 5, Y: 2})

		require.Equal(t, 1, child.Captures(Second))
		require.Equal(t, -CaptureValue(1), child.CaptureBonus(), "Second side captures should count against First")
	})

	t.Run("capturing two pairs with one move", func(t *testing.T) {
		s := newTestState(t, merge(
			row(First, 9, 6, 12),
			row(Second, 9, 7, 8, 10, 11),
		), First)

		child := mustPlay(t, s, Coordinate{X: 9, Y: 9})

		require.Equal(t, 2, child.Captures(First))
		require.Len(t, child.Captured(), 2)
		require.Equal(t, CaptureValue(1)+CaptureValue(2), child.CaptureBonus())
		require.Empty(t, child.Stones(Second))
	})

	t.Run("inheriting the capture bonus", func(t *testing.T) {
		s := newTestState(t, merge(row(First, 5, 5), row(Second, 5, 6, 7)), First)
		child := mustPlay(t, s, Coordinate{X: 8, Y: 5})

		grandChild := mustPlay(t, child, Coordinate{X: 0, Y: 0})

		require.Equal(t, child.CaptureBonus(), grandChild.CaptureBonus())
		require.Empty(t, grandChild.Captured())
	})

	t.Run("ignoring a pair without a closing stone", func(t *testing.T) {
		s := newTestState(t, row(Second, 5, 6, 7), First)

		child := mustPlay(t, s, Coordinate{X: 8, Y: 5})

		require.Equal(t, 0, child.Captures(First))
		require.Equal(t, 3, child.StoneCount())
	})

	t.Run("ignoring a single flanked stone", func(t *testing.T) {
		s := newTestState(t, merge(row(First, 5, 5), row(Second, 5, 6)), First)

		child := mustPlay(t, s, Coordinate{X: 7, Y: 5})

		require.Equal(t, 0, child.Captures(First))
	})

	t.Run("ignoring three flanked stones", func(t *testing.T) {
		s := newTestState(t, merge(row(First, 5, 4), row(Second, 5, 5, 6, 7)), First)

		child := mustPlay(t, s, Coordinate{X: 8, Y: 5})

		require.Equal(t, 0, child.Captures(First))
	})

	t.Run("moving into a bracket is safe", func(t *testing.T) {
		s := newTestState(t, merge(row(First, 5, 5, 8), row(Second, 5, 6)), Second)

		child := mustPlay(t, s, Coordinate{X: 7, Y: 5})

		require.Equal(t, 0, child.Captures(First))
		require.Equal(t, 0, child.Captures(Second))
		require.Equal(t, Second, child.At(Coordinate{X: 7, Y: 5}))
	})
}

func TestCaptureValue(t *testing.T) {
	require.Equal(t, 0, CaptureValue(-1))
	require.Equal(t, 20, CaptureValue(1))
	require.Equal(t, CaptureValue(5), CaptureValue(9), "Values should cap at the last entry")
	for i := 1; i < len(captureValues); i++ {
		require.Greater(t, captureValues[i], captureValues[i-1], "Capture values should ascend")
	}
}
