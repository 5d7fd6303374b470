package searcher

import "math"

// Search bounds. Infinity marks "no bound yet" and sits far above
// game.WinScore, so no heuristic value can reach it.
const (
	Infinity = math.MaxInt32
	MaxDepth = 8
)
