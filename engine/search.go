package engine

import (
	"fmt"
	"sort"
	"time"

	"github.com/notnil/chess"
	"go.uber.org/zap"
)

// Book supplies pre-computed opening moves. Probe returns nil when the
// position is out of book; errors are treated the same as a miss.
type Book interface {
	Probe(game *chess.Game) (*chess.Move, error)
}

// Result is the outcome of one Search call. Score is from White's
// perspective. Move is nil only at a terminal root (or after a root-level
// deadline trip); callers own the last-resort fallback in that case.
type Result struct {
	Move     *chess.Move
	Score    int
	FromBook bool
	Nodes    uint64
}

// Searcher runs fixed-depth negamax with alpha-beta pruning. It keeps no
// state between calls, so identical inputs produce identical results as long
// as TimeLimit is zero.
type Searcher struct {
	// TimeLimit optionally bounds a single Search call. When it trips, nodes
	// unwind with their static evaluation; a trip at the root can leave the
	// result without a move. Zero disables the limit.
	TimeLimit time.Duration

	cfg   Config
	book  Book
	log   *zap.SugaredLogger
	start time.Time
	nodes uint64
}

// NewSearcher wires the searcher to its collaborators. book and log may be
// nil: a nil book never suggests, a nil log discards.
func NewSearcher(cfg Config, book Book, log *zap.SugaredLogger) *Searcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Searcher{cfg: cfg, book: book, log: log}
}

// Search returns the best move for the side to move, looking maxDepth plies
// ahead. With useBook set the opening book is consulted first; a book hit
// bypasses the tree search and carries no score. Depth 0 degenerates to a
// static evaluation of the root.
func (s *Searcher) Search(game *chess.Game, maxDepth int, useBook bool) Result {
	if game == nil {
		panic("engine: Search called with nil game")
	}
	if maxDepth < 0 {
		panic(fmt.Sprintf("engine: Search called with negative depth %d", maxDepth))
	}

	if useBook && s.book != nil {
		move, err := s.book.Probe(game)
		if err != nil {
			s.log.Debugw("opening book unavailable", "error", err)
		} else if move != nil {
			s.log.Debugw("opening book hit", "move", move.String())
			return Result{Move: move, FromBook: true}
		}
	}

	s.start = time.Now()
	s.nodes = 0
	score, move := s.negamax(game, maxDepth, -Infinity, Infinity)
	if game.Position().Turn() == chess.Black {
		score = -score
	}
	return Result{Move: move, Score: score, Nodes: s.nodes}
}

// negamax works entirely in mover-relative scores: the return value is from
// the perspective of the side to move at this node, and each level negates
// its child's score. White-relative conversion happens once, in Search.
func (s *Searcher) negamax(game *chess.Game, depth, alpha, beta int) (int, *chess.Move) {
	s.nodes++
	if depth == 0 || game.Outcome() != chess.NoOutcome || s.expired() {
		return s.relativeEval(game), nil
	}

	moves := game.ValidMoves()
	if len(moves) == 0 {
		// Rules engine and terminal check disagree; fall back to the static
		// evaluation rather than crash.
		return s.relativeEval(game), nil
	}
	orderMoves(moves)

	bestScore := -Infinity
	var bestMove *chess.Move
	for _, move := range moves {
		child := game.Clone()
		if err := child.Move(move); err != nil {
			continue
		}
		score, _ := s.negamax(child, depth-1, -beta, -alpha)
		score = -score

		if score > bestScore {
			bestScore = score
			bestMove = move
		}
		if bestScore > alpha {
			alpha = bestScore
		}
		if alpha >= beta {
			break
		}
	}
	return bestScore, bestMove
}

// relativeEval adapts the White-relative evaluator to the mover-relative
// convention negamax recurses in.
func (s *Searcher) relativeEval(game *chess.Game) int {
	score := Evaluate(game, s.cfg)
	if game.Position().Turn() == chess.Black {
		return -score
	}
	return score
}

func (s *Searcher) expired() bool {
	return s.TimeLimit > 0 && time.Since(s.start) > s.TimeLimit
}

// orderMoves puts captures ahead of quiet moves, keeping generation order
// within each group. Ordering only changes how much of the tree gets pruned,
// never the result.
func orderMoves(moves []*chess.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return isCapture(moves[i]) && !isCapture(moves[j])
	})
}

func isCapture(move *chess.Move) bool {
	return move.HasTag(chess.Capture) || move.HasTag(chess.EnPassant)
}
