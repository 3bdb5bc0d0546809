// Package book exposes the ECO opening data shipped with notnil/chess as a
// soft oracle: a miss, an out-of-book position, or any failure all come back
// as "no suggestion".
package book

import (
	"github.com/notnil/chess"
	"github.com/notnil/chess/opening"
)

// ECO suggests continuations from the Encyclopaedia of Chess Openings.
type ECO struct {
	eco *opening.BookECO
}

// NewECO loads the built-in ECO data. The data is embedded in the library,
// so construction cannot fail.
func NewECO() *ECO {
	return &ECO{eco: opening.NewBookECO()}
}

// Probe returns a legal continuation of the game's opening line, or nil when
// the position is out of book. Deterministic for a fixed move history.
func (b *ECO) Probe(game *chess.Game) (*chess.Move, error) {
	played := game.Moves()
	valid := game.ValidMoves()
	for _, o := range b.eco.Possible(played) {
		line := o.Game().Moves()
		if len(line) <= len(played) {
			continue
		}
		next := line[len(played)]
		for _, m := range valid {
			if m.String() == next.String() {
				return m, nil
			}
		}
	}
	return nil, nil
}

// None never suggests a move. It keeps search tests independent of the
// opening data.
type None struct{}

// Probe always reports "no suggestion".
func (None) Probe(*chess.Game) (*chess.Move, error) {
	return nil, nil
}
