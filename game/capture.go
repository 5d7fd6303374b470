package game

// captureValues is the bonus accrued per capture, indexed by the
// capturer's running count and capped at the last entry.
var captureValues = [...]int{0, 20, 40, 80, 160, 320}

// CaptureValue returns the bonus for reaching count captured pairs.
func CaptureValue(count int) int {
	if count < 0 {
		return 0
	}
	return captureValues[min(count, len(captureValues)-1)]
}

var bracketDirections = [8][2]int{
	{1, 0}, {-1, 0},
	{0, 1}, {0, -1},
	{1, 1}, {-1, -1},
	{1, -1}, {-1, 1},
}

// findCaptures checks the mover, opponent, opponent, mover bracket with
// the stone on c at one end, in both directions along each of the four
// lines through c.
func (s *State) findCaptures(c Coordinate, mover Side) []Capture {
	var captures []Capture
	opponent := mover.Opponent()
	for _, d := range bracketDirections {
		first := Coordinate{X: c.X + d[0], Y: c.Y + d[1]}
		second := Coordinate{X: c.X + 2*d[0], Y: c.Y + 2*d[1]}
		closing := Coordinate{X: c.X + 3*d[0], Y: c.Y + 3*d[1]}
		if !closing.InBounds() {
			continue
		}
		if s.At(first) == opponent && s.At(second) == opponent && s.At(closing) == mover {
			captures = append(captures, Capture{By: mover, Stones: [2]Coordinate{first, second}})
		}
	}
	return captures
}

// applyCapture removes the pair, reopens both cells and credits the
// capturer.
func (s *State) applyCapture(capture Capture) {
	victim := capture.By.Opponent()
	for _, c := range capture.Stones {
		s.stones[victim.index()].remove(c)
		s.occupied.remove(c)
		s.frontier.add(c)
	}

	s.captures[capture.By.index()]++
	bonus := CaptureValue(s.captures[capture.By.index()])
	if capture.By == First {
		s.captureBonus += bonus
	} else {
		s.captureBonus -= bonus
	}
	s.captured = append(s.captured, capture)
}
