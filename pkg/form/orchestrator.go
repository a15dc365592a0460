package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-commitform/pkg/wrap"
)

const (
	defaultMaxHeaderWidth = 100
	defaultMaxLineWidth   = 100
)

// Prompter presents one question at a time and returns the collected value.
// Implementations apply the question's validator and normalizer and only
// return once the input passed validation.
type Prompter interface {
	Ask(ctx context.Context, q Question) (Value, error)
}

// PrompterFunc adapts a function into a Prompter.
type PrompterFunc func(ctx context.Context, q Question) (Value, error)

// Ask delegates to the underlying function.
func (fn PrompterFunc) Ask(ctx context.Context, q Question) (Value, error) {
	return fn(ctx, q)
}

// WrapFunc wraps a section of the commit message.
type WrapFunc func(text string, opts wrap.Options) string

// Settings carries the width limits used during a session.
type Settings struct {
	MaxHeaderWidth int
	MaxLineWidth   int
}

// Option customises the Orchestrator.
type Option func(*Orchestrator)

// WithSettings overrides the width limits. Non-positive values keep the
// defaults.
func WithSettings(s Settings) Option {
	return func(o *Orchestrator) {
		if s.MaxHeaderWidth > 0 {
			o.settings.MaxHeaderWidth = s.MaxHeaderWidth
		}
		if s.MaxLineWidth > 0 {
			o.settings.MaxLineWidth = s.MaxLineWidth
		}
	}
}

// WithWrapper replaces the line wrapper used during assembly.
func WithWrapper(fn WrapFunc) Option {
	return func(o *Orchestrator) {
		if fn != nil {
			o.wrap = fn
		}
	}
}

// WithLogger attaches a logger. Field progress is logged at debug level.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator walks a policy table against a Prompter and assembles the
// resulting commit message.
type Orchestrator struct {
	settings Settings
	wrap     WrapFunc
	logger   zerolog.Logger
}

// New constructs an Orchestrator with 100 column limits, the default wrapper
// and a no-op logger.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		settings: Settings{
			MaxHeaderWidth: defaultMaxHeaderWidth,
			MaxLineWidth:   defaultMaxLineWidth,
		},
		wrap:   wrap.String,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	return o
}

// Settings reports the effective width limits.
func (o *Orchestrator) Settings() Settings {
	return o.settings
}

// Run collects answers for every visible field of table and returns the
// assembled commit message.
func (o *Orchestrator) Run(ctx context.Context, table []FieldSpec, prompter Prompter) (string, error) {
	answers, err := o.Collect(ctx, table, prompter)
	if err != nil {
		return "", err
	}
	return o.Assemble(answers), nil
}

// Collect walks table in order. Fields whose visibility predicate returns
// false are skipped and stay absent from the returned AnswerSet.
func (o *Orchestrator) Collect(ctx context.Context, table []FieldSpec, prompter Prompter) (*AnswerSet, error) {
	if ctx == nil {
		return nil, errors.New("form: context is required")
	}
	if prompter == nil {
		return nil, ErrNoPrompter
	}

	answers := NewAnswerSet()
	for _, spec := range table {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if spec.When != nil && !spec.When(answers) {
			o.logger.Debug().Str("field", spec.Name).Msg("field skipped")
			continue
		}

		q := NewQuestion(spec, answers)
		value, err := prompter.Ask(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("form: field %q: %w", spec.Name, err)
		}
		if err := checkAnswer(q, value); err != nil {
			return nil, fmt.Errorf("form: field %q: prompter returned invalid value: %w", spec.Name, err)
		}
		if err := answers.record(spec.Name, value); err != nil {
			return nil, err
		}
		o.logger.Debug().Str("field", spec.Name).Str("value", value.Text()).Msg("field collected")
	}
	return answers, nil
}

func checkAnswer(q Question, value Value) error {
	switch q.Kind {
	case KindConfirm:
		if !value.IsFlag() {
			return fmt.Errorf("expected a boolean answer")
		}
		return nil
	case KindSelect:
		if value.IsFlag() {
			return fmt.Errorf("expected a selection")
		}
		for _, choice := range q.Choices {
			if choice.Value == value.Text() {
				return nil
			}
		}
		return fmt.Errorf("%q is not one of the available choices", value.Text())
	default:
		if value.IsFlag() {
			return fmt.Errorf("expected a text answer")
		}
		if q.Skippable && strings.TrimSpace(value.Text()) == "" {
			return nil
		}
		return q.Validate(value.Text())
	}
}
