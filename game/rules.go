package game

// Rules decides game outcomes. DeeperWinner is used by callers that must
// commit to a result, such as a match loop deciding the game is over.
type Rules interface {
	Terminal
	DeeperWinner(*State) Outcome
}
