// Package engine implements the static evaluator and the fixed-depth
// negamax searcher. Scores are centipawns from White's perspective unless
// noted otherwise.
package engine

import "github.com/notnil/chess"

const (
	// MateScore is the sentinel magnitude for a delivered checkmate. Ordinary
	// evaluations stay well below it.
	MateScore = 99999

	// Infinity bounds the alpha-beta window. It must clear MateScore with
	// room to spare so mate scores never collide with the window edges.
	Infinity = 1000000
)

// Config holds the evaluator tunables. Construct once, pass by value.
type Config struct {
	// PhaseThreshold is the total-material sum, in hundreds of centipawns,
	// at or above which the middlegame king table applies. Below it the
	// endgame table rewards king activity instead.
	PhaseThreshold int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{PhaseThreshold: 24}
}

// Evaluate scores the position from White's perspective. Terminal positions
// short-circuit: checkmate is ±MateScore signed against the mated side, any
// other finished game is a dead 0.
func Evaluate(game *chess.Game, cfg Config) int {
	if game.Outcome() != chess.NoOutcome {
		if game.Method() == chess.Checkmate {
			if game.Position().Turn() == chess.White {
				return -MateScore
			}
			return MateScore
		}
		return 0
	}

	board := game.Position().Board()

	score := 0
	whiteMaterial, blackMaterial := 0, 0
	whiteKing, blackKing := chess.NoSquare, chess.NoSquare

	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece == chess.NoPiece {
			continue
		}
		if piece.Type() == chess.King {
			if piece.Color() == chess.White {
				whiteKing = sq
			} else {
				blackKing = sq
			}
			continue
		}
		if piece.Color() == chess.White {
			whiteMaterial += pieceValues[piece.Type()]
			score += pstValue(piece.Type(), sq)
		} else {
			blackMaterial += pieceValues[piece.Type()]
			score -= pstValue(piece.Type(), mirror(sq))
		}
	}
	score += whiteMaterial - blackMaterial

	// Crude phase: total material decides which king table is in effect.
	kingTable := &kingEndgameTable
	if (whiteMaterial+blackMaterial)/100 >= cfg.PhaseThreshold {
		kingTable = &kingMiddlegameTable
	}
	if whiteKing != chess.NoSquare {
		score += kingTable[whiteKing]
	}
	if blackKing != chess.NoSquare {
		score -= kingTable[mirror(blackKing)]
	}

	// Mobility counts only the side to move, signed by whose turn it is.
	// Asymmetric on purpose; kept for compatibility with the tuned tables.
	mobility := 2 * len(game.ValidMoves())
	if game.Position().Turn() == chess.White {
		score += mobility
	} else {
		score -= mobility
	}

	return score
}
