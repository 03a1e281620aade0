package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"martianrobots/internal/config"
	"martianrobots/internal/mission"
)

func main() {
	// Flags are parsed before a config error is reported so -h always works.
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		cfg = config.Defaults()
	}

	interactive := flag.Bool("i", false, "prompt for the grid and each robot line by line")
	flag.BoolVar(&cfg.ShowMap, "map", cfg.ShowMap, "draw the grid on stderr after each robot")
	flag.IntVar(&cfg.MaxCoordinate, "max-coord", cfg.MaxCoordinate, "largest accepted coordinate, 0 for no limit")
	flag.IntVar(&cfg.MaxInstructions, "max-instructions", cfg.MaxInstructions, "longest accepted instruction line, 0 for no limit")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [mission file | -]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	setupLogging(cfg)
	if cfgErr != nil {
		log.Fatal().Err(cfgErr).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}
	logger := log.With().Str("run", uuid.NewString()).Logger()

	limits := mission.Limits{MaxCoordinate: cfg.MaxCoordinate, MaxInstructions: cfg.MaxInstructions}
	ctx := mission.NewContext(os.Stdout, logger)
	if cfg.ShowMap {
		ctx.Map = os.Stderr
	}

	path := flag.Arg(0)
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *interactive || (path == "" && isatty.IsTerminal(os.Stdin.Fd())) {
		if err := mission.NewSession(os.Stdin, os.Stderr, ctx, limits).Run(); err != nil {
			logger.Fatal().Err(err).Msg("session failed")
		}
		return
	}

	var (
		plan *mission.Plan
		err  error
	)
	if path == "" || path == "-" {
		var data []byte
		if data, err = io.ReadAll(os.Stdin); err != nil {
			logger.Fatal().Err(err).Msg("read stdin")
		}
		plan, err = mission.Parse("stdin", string(data), limits)
	} else {
		plan, err = mission.Load(path, limits)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid mission")
	}
	if _, err := plan.Exec(ctx); err != nil {
		logger.Fatal().Err(err).Msg("mission aborted")
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping warn")
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
