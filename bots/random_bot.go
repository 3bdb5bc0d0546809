package bots

import "github.com/notnil/chess"

// RandomBot plays the first legal move the rules engine reports. It doubles
// as the policy SearchBot falls back to when a search produces no move.
type RandomBot struct{}

func NewRandomBot() *RandomBot {
	return &RandomBot{}
}

func (b *RandomBot) BestMove(game *chess.Game) *chess.Move {
	moves := game.ValidMoves()
	if len(moves) > 0 {
		return moves[0]
	}
	return nil
}

func (b *RandomBot) Name() string {
	return "Random Bot"
}
