// Package bots contains the playing strategies the console front end can
// choose between.
package bots

import "github.com/notnil/chess"

// ChessBot picks a move for the side to move. BestMove returns nil only when
// the game has no legal moves left.
type ChessBot interface {
	BestMove(game *chess.Game) *chess.Move
	Name() string
}
