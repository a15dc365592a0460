// Package commitform runs an interactive commit message session: it asks the
// questions of the field policy table through a prompter and assembles the
// answers into a width-constrained commit message.
package commitform

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-commitform/pkg/changetype"
	"github.com/goliatone/go-commitform/pkg/config"
	"github.com/goliatone/go-commitform/pkg/form"
	"github.com/goliatone/go-commitform/pkg/policy"
	"github.com/goliatone/go-commitform/pkg/prompt"
)

// Result is the outcome of a session.
type Result struct {
	Message string
	Answers *form.AnswerSet
}

// Option customises Compose.
type Option func(*session)

type session struct {
	cfg      config.Config
	catalog  *changetype.Catalog
	prompter form.Prompter
	logger   zerolog.Logger
}

// WithConfig supplies the resolved configuration. Defaults apply otherwise.
func WithConfig(cfg config.Config) Option {
	return func(s *session) {
		s.cfg = cfg
	}
}

// WithCatalog overrides the catalog derived from the configuration.
func WithCatalog(catalog *changetype.Catalog) Option {
	return func(s *session) {
		s.catalog = catalog
	}
}

// WithPrompter replaces the survey backed terminal prompter.
func WithPrompter(p form.Prompter) Option {
	return func(s *session) {
		if p != nil {
			s.prompter = p
		}
	}
}

// WithLogger attaches a logger to the orchestrator.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *session) {
		s.logger = logger
	}
}

// Compose builds the policy table for the configured catalog, runs it
// against the prompter and returns the assembled message with the answers.
func Compose(ctx context.Context, options ...Option) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("commitform: context is required")
	}
	s := &session{
		cfg:    config.Default(),
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.catalog == nil {
		catalog, err := s.cfg.ChangeTypes()
		if err != nil {
			return Result{}, err
		}
		s.catalog = catalog
	}
	if s.prompter == nil {
		s.prompter = prompt.New()
	}

	table, err := policy.Table(s.catalog, s.cfg.PolicyOptions())
	if err != nil {
		return Result{}, err
	}

	orch := form.New(
		form.WithSettings(s.cfg.Settings()),
		form.WithLogger(s.logger),
	)
	answers, err := orch.Collect(ctx, table, s.prompter)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Message: orch.Assemble(answers),
		Answers: answers,
	}, nil
}
