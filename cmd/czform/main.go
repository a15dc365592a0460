package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/goliatone/go-commitform/pkg/prompt"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd(defaultDeps()).Execute(); err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			log.Info().Msg("Commit aborted.")
			os.Exit(130)
		}
		log.Error().Err(err).Msg("czform failed")
		os.Exit(1)
	}
}
