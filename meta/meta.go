// meta/meta.go
package meta

// DEPTH defines the default search depth in plies.
const DEPTH = 2

// MAX_DEPTH defines the deepest agent the depth experiment pits against the baseline.
const MAX_DEPTH = 3

// SEARCH_DURATION defines the default per-move deadline, "0s" for none.
const SEARCH_DURATION = "2s"

// NUM_GAMES defines the number of games per matchup.
const NUM_GAMES = 10

// OPENING_PLIES defines the number of random moves played before the agents take over.
const OPENING_PLIES = 2

// EXPLORATION defines the chance of a training agent playing a random frontier move.
const EXPLORATION = 0.1

// MAX_MOVES defines the move limit of a game.
const MAX_MOVES = 200

const SEED = 1

const PLAYER_1 = "player1"
const PLAYER_2 = "player2"

const OUTPUT_DIR = "results"
const EXPERIMENT = "depth"
const LOG_LEVEL = "info"
