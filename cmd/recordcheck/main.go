// recordcheck validates USI game record files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/domino14/shogimove/config"
	"github.com/domino14/shogimove/usi"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	level := zerolog.InfoLevel
	if cfg.GetBool(config.ConfigDebug) {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()

	var paths []string
	for _, a := range os.Args[1:] {
		if !strings.HasPrefix(a, "--") {
			paths = append(paths, a)
		}
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: recordcheck [--record-workers=n] [--debug] <file> ...")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	sum, err := usi.CheckFiles(ctx, paths, cfg.GetInt(config.ConfigRecordWorkers))
	if err != nil {
		log.Error().Err(err).Msg("record-check-failed")
		os.Exit(1)
	}
	log.Info().Int("files", sum.Files).Int("games", sum.Games).Int("moves", sum.Moves).
		Dur("elapsed", time.Since(start)).Msg("records-ok")
}
