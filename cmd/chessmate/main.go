package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"chessmate/book"
	"chessmate/bots"
	"chessmate/cli"
	"chessmate/config"
	"chessmate/engine"
)

func main() {
	logger := newLogger()

	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatalw("failed to load configuration", "error", err)
	}

	bot, err := buildBot(cfg, logger)
	if err != nil {
		logger.Fatalw("failed to build bot", "error", err)
	}
	logger.Infow("starting game",
		"bot", bot.Name(), "human_side", cfg.HumanSide().Name(), "use_book", cfg.UseBook)

	console := cli.New(os.Stdin, os.Stdout, bot, cfg.HumanSide(), logger)
	if err := console.Run(); err != nil {
		logger.Fatalw("game loop failed", "error", err)
	}
}

func newLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func buildBot(cfg *config.Config, log *zap.SugaredLogger) (bots.ChessBot, error) {
	switch cfg.Bot {
	case "", "search":
		searcher := engine.NewSearcher(
			engine.Config{PhaseThreshold: cfg.PhaseThreshold},
			book.NewECO(),
			log,
		)
		searcher.TimeLimit = time.Duration(cfg.TimeLimitMS) * time.Millisecond
		return bots.NewSearchBot(searcher, cfg.SearchDepth(), cfg.UseBook, log), nil
	case "random":
		return bots.NewRandomBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot %q", cfg.Bot)
	}
}
