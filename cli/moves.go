package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/notnil/chess"
)

var pieceGlyphs = map[chess.Piece]string{
	chess.WhiteKing:   "♔",
	chess.WhiteQueen:  "♕",
	chess.WhiteRook:   "♖",
	chess.WhiteBishop: "♗",
	chess.WhiteKnight: "♘",
	chess.WhitePawn:   "♙",
	chess.BlackKing:   "♚",
	chess.BlackQueen:  "♛",
	chess.BlackRook:   "♜",
	chess.BlackBishop: "♝",
	chess.BlackKnight: "♞",
	chess.BlackPawn:   "♟",
}

func renderBoard(w io.Writer, game *chess.Game) {
	board := game.Position().Board()

	fmt.Fprintln(w, "\n   a b c d e f g h")
	fmt.Fprintln(w, "  ┌────────────────┐")
	for rank := 7; rank >= 0; rank-- {
		row := make([]string, 0, 8)
		for file := 0; file < 8; file++ {
			piece := board.Piece(chess.Square(file + rank*8))
			if piece == chess.NoPiece {
				row = append(row, ".")
			} else {
				row = append(row, pieceGlyphs[piece])
			}
		}
		fmt.Fprintf(w, "%d │ %s │ %d\n", rank+1, strings.Join(row, " "), rank+1)
	}
	fmt.Fprintln(w, "  └────────────────┘")
	fmt.Fprintln(w, "   a b c d e f g h")
	fmt.Fprintf(w, "\nSide to move: %s\n", game.Position().Turn().Name())
	if inCheck(game) {
		fmt.Fprintln(w, "Check!")
	}
}

// inCheck reports whether the last applied move gave check. Positions loaded
// without history report false, which is fine for a loop that always starts
// from the initial position.
func inCheck(game *chess.Game) bool {
	moves := game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// parseMove accepts UCI first, then SAN, and returns the matching legal move
// or nil.
func parseMove(input string, game *chess.Game) *chess.Move {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil
	}
	pos := game.Position()
	if move, err := (chess.UCINotation{}).Decode(pos, s); err == nil {
		if m := matchValid(game, move); m != nil {
			return m
		}
	}
	if move, err := (chess.AlgebraicNotation{}).Decode(pos, s); err == nil {
		if m := matchValid(game, move); m != nil {
			return m
		}
	}
	return nil
}

func matchValid(game *chess.Game, move *chess.Move) *chess.Move {
	for _, m := range game.ValidMoves() {
		if m.String() == move.String() {
			return m
		}
	}
	return nil
}

// legalMoveList renders the legal moves as a sorted SAN list.
func legalMoveList(game *chess.Game) string {
	pos := game.Position()
	moves := game.ValidMoves()
	sans := make([]string, 0, len(moves))
	for _, m := range moves {
		sans = append(sans, chess.AlgebraicNotation{}.Encode(pos, m))
	}
	sort.Strings(sans)
	return strings.Join(sans, ", ")
}

// undo rebuilds the game without its last half-move. The rules engine keeps
// no undo stack, so the shortened move list is replayed onto a fresh game.
func undo(game *chess.Game) (*chess.Game, bool) {
	moves := game.Moves()
	if len(moves) == 0 {
		return game, false
	}
	rewound := chess.NewGame()
	for _, m := range moves[:len(moves)-1] {
		move, err := (chess.UCINotation{}).Decode(rewound.Position(), m.String())
		if err != nil {
			return game, false
		}
		if err := rewound.Move(move); err != nil {
			return game, false
		}
	}
	return rewound, true
}
