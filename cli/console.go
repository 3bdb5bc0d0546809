// Package cli is the text front end: board rendering, move input in SAN or
// UCI, the in-game commands (help, moves, fen, undo, quit) and the
// human-versus-bot game loop.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"chessmate/bots"
)

// Console runs one game of chess between a human and a bot.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	bot  bots.ChessBot
	side chess.Color // the human's side
	log  *zap.SugaredLogger
	game *chess.Game
}

// New builds a console game. log may be nil.
func New(in io.Reader, out io.Writer, bot bots.ChessBot, humanSide chess.Color, log *zap.SugaredLogger) *Console {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		bot:  bot,
		side: humanSide,
		log:  log,
	}
}

// Run plays from the standard starting position until the game ends, the
// human quits, or input runs out.
func (c *Console) Run() error {
	c.game = chess.NewGame()
	fmt.Fprintln(c.out, "=== Console Chess ===")
	fmt.Fprintln(c.out, "Type 'help' for commands. Moves in SAN (e.g., Nf3) or UCI (e2e4).")

	for c.game.Outcome() == chess.NoOutcome {
		renderBoard(c.out, c.game)
		if c.game.Position().Turn() == c.side {
			if quit := c.humanTurn(); quit {
				return c.in.Err()
			}
		} else {
			c.aiTurn()
		}
	}

	renderBoard(c.out, c.game)
	fmt.Fprintln(c.out, resultBanner(c.game))
	return nil
}

// humanTurn reads input until a move is applied, an undo rewinds the game,
// or the human quits. Returns true on quit or exhausted input.
func (c *Console) humanTurn() bool {
	for {
		fmt.Fprint(c.out, "Your move> ")
		if !c.in.Scan() {
			return true
		}
		input := strings.TrimSpace(c.in.Text())

		switch strings.ToLower(input) {
		case "q", "quit", "exit":
			fmt.Fprintln(c.out, "Goodbye!")
			return true
		case "h", "help":
			fmt.Fprintln(c.out, "Commands: help, moves, fen, undo, quit. Enter a move like 'e2e4' or 'Nf3'.")
			continue
		case "moves":
			fmt.Fprintln(c.out, legalMoveList(c.game))
			continue
		case "fen":
			fmt.Fprintln(c.out, c.game.FEN())
			continue
		case "undo":
			rewound, ok := undo(c.game)
			if !ok {
				fmt.Fprintln(c.out, "Nothing to undo.")
				continue
			}
			c.game = rewound
			return false
		}

		move := parseMove(input, c.game)
		if move == nil {
			fmt.Fprintln(c.out, "Unrecognized or illegal move. Try again (type 'moves' to list legal moves).")
			continue
		}
		if err := c.game.Move(move); err != nil {
			fmt.Fprintln(c.out, "Unrecognized or illegal move. Try again (type 'moves' to list legal moves).")
			continue
		}
		return false
	}
}

// aiTurn asks the bot for a move and applies it, falling back to the first
// legal move if the bot comes back empty.
func (c *Console) aiTurn() {
	fmt.Fprintf(c.out, "%s thinking...\n", c.bot.Name())
	start := time.Now()

	move := c.bot.BestMove(c.game)
	label := "plays"
	if move == nil {
		valid := c.game.ValidMoves()
		if len(valid) == 0 {
			return
		}
		move = valid[0]
		label = "fallback plays"
		c.log.Warnw("bot returned no move, using first legal move", "fen", c.game.FEN())
	}

	san := chess.AlgebraicNotation{}.Encode(c.game.Position(), move)
	if err := c.game.Move(move); err != nil {
		c.log.Errorw("failed to apply bot move", "move", move.String(), "error", err)
		return
	}
	fmt.Fprintf(c.out, "%s %s: %s (%s)  [%.2fs]\n",
		c.bot.Name(), label, san, move.String(), time.Since(start).Seconds())
}

func resultBanner(game *chess.Game) string {
	switch game.Method() {
	case chess.Checkmate:
		winner := "Black"
		if game.Outcome() == chess.WhiteWon {
			winner = "White"
		}
		return fmt.Sprintf("Checkmate! %s wins.", winner)
	case chess.Stalemate:
		return "Stalemate."
	case chess.InsufficientMaterial:
		return "Draw by insufficient material."
	case chess.FivefoldRepetition:
		return "Draw by fivefold repetition."
	case chess.SeventyFiveMoveRule:
		return "Draw by the seventy-five move rule."
	default:
		return "Game over: " + game.Outcome().String()
	}
}
