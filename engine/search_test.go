package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/notnil/chess"
)

var italianGame = "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"

// backRankMate: Ra8 is mate, everything else is not.
var backRankMate = "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"

type firstMoveBook struct{}

func (firstMoveBook) Probe(game *chess.Game) (*chess.Move, error) {
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return nil, nil
	}
	return moves[0], nil
}

type failingBook struct{}

func (failingBook) Probe(*chess.Game) (*chess.Move, error) {
	return nil, errors.New("book data missing")
}

type missBook struct{}

func (missBook) Probe(*chess.Game) (*chess.Move, error) {
	return nil, nil
}

func newTestSearcher() *Searcher {
	return NewSearcher(DefaultConfig(), missBook{}, nil)
}

func playSAN(t *testing.T, game *chess.Game, sans ...string) {
	t.Helper()
	for _, san := range sans {
		move, err := (chess.AlgebraicNotation{}).Decode(game.Position(), san)
		if err != nil {
			t.Fatalf("decode %q: %v", san, err)
		}
		if err := game.Move(move); err != nil {
			t.Fatalf("apply %q: %v", san, err)
		}
	}
}

func isValidMove(game *chess.Game, move *chess.Move) bool {
	for _, m := range game.ValidMoves() {
		if m.String() == move.String() {
			return true
		}
	}
	return false
}

func TestSearchDepthZeroIsStaticEval(t *testing.T) {
	game := chess.NewGame()
	res := newTestSearcher().Search(game, 0, false)
	if res.Move != nil {
		t.Errorf("depth 0 returned a move: %s", res.Move)
	}
	if want := Evaluate(game, DefaultConfig()); res.Score != want {
		t.Errorf("depth 0 score = %d, want Evaluate = %d", res.Score, want)
	}
}

func TestSearchStartPositionDepthOne(t *testing.T) {
	game := chess.NewGame()
	res := newTestSearcher().Search(game, 1, false)
	if res.Move == nil {
		t.Fatal("no move returned from the start position")
	}
	if !isValidMove(game, res.Move) {
		t.Errorf("returned move %s is not legal", res.Move)
	}
	if res.Score <= -MateScore || res.Score >= MateScore {
		t.Errorf("score %d should be strictly between the mate sentinels", res.Score)
	}
	if res.FromBook {
		t.Error("book flag set with useBook=false")
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	game := gameFromFEN(t, italianGame)
	first := newTestSearcher().Search(game, 2, false)
	second := newTestSearcher().Search(game, 2, false)
	if first.Move.String() != second.Move.String() || first.Score != second.Score {
		t.Errorf("repeated search differs: (%s, %d) vs (%s, %d)",
			first.Move, first.Score, second.Move, second.Score)
	}
}

func TestSearchFindsFoolsMate(t *testing.T) {
	game := chess.NewGame()
	playSAN(t, game, "f3", "e5", "g4")

	res := newTestSearcher().Search(game, 1, false)
	if res.Move == nil {
		t.Fatal("no move returned")
	}
	if got := res.Move.String(); got != "d8h4" {
		t.Errorf("best move = %s, want d8h4 (Qh4#)", got)
	}
	if res.Score != -MateScore {
		t.Errorf("score = %d, want %d (mate for Black)", res.Score, -MateScore)
	}
}

func TestSearchFindsBackRankMate(t *testing.T) {
	game := gameFromFEN(t, backRankMate)
	res := newTestSearcher().Search(game, 1, false)
	if res.Move == nil {
		t.Fatal("no move returned")
	}
	if got := res.Move.String(); got != "a1a8" {
		t.Errorf("best move = %s, want a1a8 (Ra8#)", got)
	}
	if res.Score != MateScore {
		t.Errorf("score = %d, want %d (mate for White)", res.Score, MateScore)
	}
}

// fullWidthNegamax is the unpruned reference search, mover-relative like the
// internal recursion.
func fullWidthNegamax(game *chess.Game, depth int, cfg Config) int {
	relative := func(g *chess.Game) int {
		score := Evaluate(g, cfg)
		if g.Position().Turn() == chess.Black {
			return -score
		}
		return score
	}
	if depth == 0 || game.Outcome() != chess.NoOutcome {
		return relative(game)
	}
	moves := game.ValidMoves()
	if len(moves) == 0 {
		return relative(game)
	}
	best := -Infinity
	for _, move := range moves {
		child := game.Clone()
		if err := child.Move(move); err != nil {
			continue
		}
		if score := -fullWidthNegamax(child, depth-1, cfg); score > best {
			best = score
		}
	}
	return best
}

func TestAlphaBetaMatchesFullWidthSearch(t *testing.T) {
	for _, tc := range []struct {
		fen   string
		depth int
	}{
		{italianGame, 2},
		{backRankMate, 2},
	} {
		game := gameFromFEN(t, tc.fen)
		pruned := newTestSearcher().Search(game, tc.depth, false)

		want := fullWidthNegamax(game, tc.depth, DefaultConfig())
		if game.Position().Turn() == chess.Black {
			want = -want
		}
		if pruned.Score != want {
			t.Errorf("%s depth %d: pruned score %d != full-width score %d",
				tc.fen, tc.depth, pruned.Score, want)
		}
	}
}

func TestSearchUsesBookWhenEnabled(t *testing.T) {
	game := chess.NewGame()
	s := NewSearcher(DefaultConfig(), firstMoveBook{}, nil)

	res := s.Search(game, 3, true)
	if !res.FromBook {
		t.Fatal("expected a book move")
	}
	if want := game.ValidMoves()[0].String(); res.Move.String() != want {
		t.Errorf("book move = %s, want %s", res.Move, want)
	}
	if res.Score != 0 || res.Nodes != 0 {
		t.Errorf("book moves bypass scoring, got score=%d nodes=%d", res.Score, res.Nodes)
	}

	res = s.Search(game, 1, false)
	if res.FromBook {
		t.Error("book consulted with useBook=false")
	}
}

func TestSearchBookFailureFallsThrough(t *testing.T) {
	game := chess.NewGame()
	s := NewSearcher(DefaultConfig(), failingBook{}, nil)
	res := s.Search(game, 1, true)
	if res.FromBook {
		t.Error("failed probe must not count as a book hit")
	}
	if res.Move == nil || !isValidMove(game, res.Move) {
		t.Errorf("expected a legal searched move, got %v", res.Move)
	}
}

func TestSearchTerminalRootReturnsNoMove(t *testing.T) {
	game := gameFromFEN(t, whiteCheckmated)
	res := newTestSearcher().Search(game, 3, false)
	if res.Move != nil {
		t.Errorf("terminal root returned move %s", res.Move)
	}
	if res.Score != -MateScore {
		t.Errorf("terminal root score = %d, want %d", res.Score, -MateScore)
	}
}

func TestSearchNegativeDepthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on negative depth")
		}
	}()
	newTestSearcher().Search(chess.NewGame(), -1, false)
}

func TestSearchNilGamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil game")
		}
	}()
	newTestSearcher().Search(nil, 1, false)
}

func TestSearchTimeLimitUnwinds(t *testing.T) {
	s := newTestSearcher()
	s.TimeLimit = time.Nanosecond

	// The limit trips almost immediately; the search must still terminate
	// and any move it does report must be legal.
	game := chess.NewGame()
	res := s.Search(game, 5, false)
	if res.Move != nil && !isValidMove(game, res.Move) {
		t.Errorf("move %s is not legal", res.Move)
	}
	if res.Score < -MateScore || res.Score > MateScore {
		t.Errorf("score %d outside evaluation range", res.Score)
	}
}
