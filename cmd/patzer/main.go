package main

import (
	"errors"
	"flag"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kresna/patzer/board"
	"github.com/kresna/patzer/cli"
)

const (
	exitOK = iota
	exitErr
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	depth      = flag.Int("depth", 0, "search depth in plies (overrides config)")
	debug      = flag.Bool("debug", false, "print per-search engine stats")
	svgPath    = flag.String("svg", "", "write an SVG snapshot after every move")
	noColor    = flag.Bool("nocolor", false, "plain ASCII board rendering")
	demo       = flag.Bool("demo", false, "play one scripted round and exit")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Str("game_id", uuid.NewString()).
		Logger()
	if !*debug {
		logger = logger.Level(zerolog.InfoLevel)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error().Err(err).Msg("bad config")
		return err
	}

	i := cli.NewInterface(cfg, logger)
	if len(args) > 0 {
		if err := i.LoadPosition(args[0]); err != nil {
			if !errors.Is(err, board.ErrInvalidDiagram) {
				logger.Error().Err(err).Msg("cannot load position")
				return err
			}
			logger.Warn().Err(err).Msg("bad position diagram, starting from the initial position")
		}
	}

	if *demo {
		return i.RunScripted()
	}
	return i.Run()
}

func loadConfig(logger zerolog.Logger) (cli.Config, error) {
	cfg := cli.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = cli.LoadConfig(*configPath)
		if err != nil {
			return cfg, err
		}
		logger.Info().Str("path", *configPath).Msg("config loaded")
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *debug {
		cfg.Debug = true
	}
	if *svgPath != "" {
		cfg.SVGPath = *svgPath
	}
	if *noColor {
		cfg.Colors = false
	}
	return cfg, nil
}
