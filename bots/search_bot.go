package bots

import (
	"fmt"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"chessmate/engine"
)

// SearchBot plays the move chosen by the fixed-depth alpha-beta searcher.
type SearchBot struct {
	Depth   int
	UseBook bool

	searcher *engine.Searcher
	log      *zap.SugaredLogger
}

// NewSearchBot wraps a searcher at a fixed depth. log may be nil.
func NewSearchBot(searcher *engine.Searcher, depth int, useBook bool, log *zap.SugaredLogger) *SearchBot {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &SearchBot{Depth: depth, UseBook: useBook, searcher: searcher, log: log}
}

func (b *SearchBot) Name() string {
	return fmt.Sprintf("Search Bot (depth %d)", b.Depth)
}

// BestMove runs the search and applies the last-resort fallback: if the
// search comes back empty on a position that still has legal moves, the
// first legal move is played and the event is logged so it stays
// distinguishable from a normal result.
func (b *SearchBot) BestMove(game *chess.Game) *chess.Move {
	if game == nil {
		return nil
	}
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil
	}

	result := b.searcher.Search(game, b.Depth, b.UseBook)
	if result.Move == nil {
		b.log.Warnw("search returned no move, falling back to first legal move",
			"fen", game.FEN(), "depth", b.Depth)
		return moves[0]
	}

	if result.FromBook {
		b.log.Infow("playing book move", "move", result.Move.String())
	} else {
		b.log.Infow("search complete",
			"move", result.Move.String(),
			"score", result.Score,
			"nodes", result.Nodes)
	}
	return result.Move
}
