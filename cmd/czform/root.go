package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	commitform "github.com/goliatone/go-commitform"
	"github.com/goliatone/go-commitform/pkg/config"
	"github.com/goliatone/go-commitform/pkg/form"
	"github.com/goliatone/go-commitform/pkg/gitcommit"
	"github.com/goliatone/go-commitform/pkg/prompt"
)

const debugEnv = "CZFORM_DEBUG"

// deps holds what the commands reach outside the process for, so tests can
// swap them.
type deps struct {
	interactive func() bool
	prompter    func(out io.Writer) form.Prompter
	recorder    func(dir string, all bool) (recorder, error)
	getwd       func() (string, error)
	lookupEnv   func(string) (string, bool)
}

type recorder interface {
	gitcommit.Recorder
	HasStagedChanges() (bool, error)
}

func defaultDeps() deps {
	return deps{
		interactive: isInteractive,
		prompter: func(out io.Writer) form.Prompter {
			driver := prompt.NewSurveyDriver(out, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
			return prompt.New(prompt.WithDriver(driver))
		},
		recorder: func(dir string, all bool) (recorder, error) {
			return gitcommit.Open(dir, gitcommit.WithStageAll(all), gitcommit.WithLogger(log.Logger))
		},
		getwd:     os.Getwd,
		lookupEnv: os.LookupEnv,
	}
}

type rootOptions struct {
	configPath string
	catalog    string
	output     string
	dryRun     bool
	all        bool
	debug      bool
}

func newRootCmd(d deps) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "czform",
		Short:         "Write a structured commit message by answering a few questions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, d, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (defaults to .czform.yaml/.yml/.json in the working directory)")
	flags.StringVar(&opts.catalog, "catalog", "", "change type preset (conventional, keepachangelog)")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the message to a file instead of committing")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the message instead of committing")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "stage all changes before committing")

	cmd.AddCommand(newTypesCmd(d, opts))
	return cmd
}

func loadConfig(d deps, opts *rootOptions) (config.Config, string, error) {
	dir, err := d.getwd()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("czform: working directory: %w", err)
	}
	cfg, err := config.Resolve(opts.configPath, dir, d.lookupEnv)
	if err != nil {
		return config.Config{}, "", err
	}
	if opts.catalog != "" {
		cfg.Catalog = opts.catalog
		cfg.Types = nil
		if err := cfg.Validate(); err != nil {
			return config.Config{}, "", err
		}
	}
	return cfg, dir, nil
}

func configureLogging(d deps, opts *rootOptions) {
	level := zerolog.InfoLevel
	if _, ok := d.lookupEnv(debugEnv); ok || opts.debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
}

func runRoot(cmd *cobra.Command, d deps, opts *rootOptions) error {
	configureLogging(d, opts)

	cfg, dir, err := loadConfig(d, opts)
	if err != nil {
		return err
	}
	if cfg.Source != "" {
		log.Debug().Str("path", cfg.Source).Msg("config loaded")
	}

	if !d.interactive() {
		return errors.New("czform: an interactive terminal is required")
	}

	var rec recorder
	if !opts.dryRun && opts.output == "" {
		rec, err = d.recorder(dir, opts.all)
		if err != nil {
			return err
		}
		if !opts.all {
			staged, err := rec.HasStagedChanges()
			if err != nil {
				return err
			}
			if !staged {
				return gitcommit.ErrNothingToCommit
			}
		}
	}

	res, err := commitform.Compose(cmd.Context(),
		commitform.WithConfig(cfg),
		commitform.WithPrompter(d.prompter(cmd.ErrOrStderr())),
		commitform.WithLogger(log.Logger),
	)
	if err != nil {
		return err
	}

	switch {
	case opts.output != "":
		if err := os.WriteFile(opts.output, []byte(res.Message+"\n"), 0o644); err != nil {
			return fmt.Errorf("czform: write %s: %w", opts.output, err)
		}
		log.Info().Str("path", opts.output).Msg("Commit message written")
	case opts.dryRun:
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	default:
		fmt.Fprintln(cmd.ErrOrStderr(), renderPreview(res.Message))
		hash, err := rec.Record(cmd.Context(), res.Message)
		if err != nil {
			return err
		}
		log.Info().Str("hash", shortHash(hash)).Msg("Commit successfully created!")
	}
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
