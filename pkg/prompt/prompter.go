// Package prompt presents form questions in a terminal. The Prompter walks a
// single question until the operator's input passes validation; the Driver
// underneath does the actual terminal I/O.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goliatone/go-commitform/pkg/form"
)

const defaultPageSize = 12

// Prompter implements form.Prompter on top of a Driver.
type Prompter struct {
	driver   Driver
	out      io.Writer
	theme    Theme
	pageSize int
}

var _ form.Prompter = (*Prompter)(nil)

// New constructs a Prompter. Without WithDriver it uses the survey driver on
// the process terminal.
func New(options ...Option) *Prompter {
	p := &Prompter{
		out:      os.Stdout,
		pageSize: defaultPageSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(p)
	}
	if p.driver == nil {
		p.driver = NewSurveyDriver(p.out)
	}
	return p
}

// Ask presents q and returns the normalized answer. Invalid input is reported
// through the driver and the question is asked again.
func (p *Prompter) Ask(ctx context.Context, q form.Question) (form.Value, error) {
	if ctx == nil {
		return form.Value{}, errors.New("prompt: context is required")
	}
	switch q.Kind {
	case form.KindConfirm:
		return p.askConfirm(ctx, q)
	case form.KindSelect:
		return p.askSelect(ctx, q)
	case form.KindText:
		return p.askText(ctx, q)
	default:
		return form.Value{}, fmt.Errorf("%w: %q", ErrUnsupportedKind, q.Kind)
	}
}

func (p *Prompter) askText(ctx context.Context, q form.Question) (form.Value, error) {
	defaultVal := ""
	if q.HasDefault {
		defaultVal = q.Default.Text()
	}
	validate := func(raw string) error {
		if q.Skippable && strings.TrimSpace(raw) == "" {
			return nil
		}
		return q.Validate(raw)
	}

	for {
		response, err := p.driver.Input(ctx, InputConfig{
			Message:   p.message(q),
			Default:   defaultVal,
			Validator: validate,
		})
		if err != nil {
			return form.Value{}, err
		}
		if err := validate(response); err != nil {
			if err := p.invalid(ctx, q, err); err != nil {
				return form.Value{}, err
			}
			continue
		}
		return form.Text(q.Normalize(response)), nil
	}
}

func (p *Prompter) askConfirm(ctx context.Context, q form.Question) (form.Value, error) {
	resp, err := p.driver.Confirm(ctx, ConfirmConfig{
		Message: p.message(q),
		Default: q.HasDefault && q.Default.Bool(),
	})
	if err != nil {
		return form.Value{}, err
	}
	return form.Flag(resp), nil
}

func (p *Prompter) askSelect(ctx context.Context, q form.Question) (form.Value, error) {
	if len(q.Choices) == 0 {
		return form.Value{}, fmt.Errorf("prompt: field %s has no choices", q.Name)
	}
	options := make([]string, len(q.Choices))
	defaultIdx := -1
	for i, choice := range q.Choices {
		options[i] = choice.Label
		if q.HasDefault && choice.Value == q.Default.Text() {
			defaultIdx = i
		}
	}

	for {
		idx, err := p.driver.Select(ctx, SelectConfig{
			Message:      p.message(q),
			Options:      options,
			DefaultIndex: defaultIdx,
			PageSize:     p.pageSize,
		})
		if err != nil {
			return form.Value{}, err
		}
		if idx < 0 || idx >= len(options) {
			if err := p.driver.Info(ctx, fmt.Sprintf("%sInvalid %s selection", p.theme.ErrorPrefix, q.Name)); err != nil {
				return form.Value{}, err
			}
			continue
		}
		return form.Text(q.Choices[idx].Value), nil
	}
}

func (p *Prompter) message(q form.Question) string {
	return p.theme.PromptPrefix + q.Message
}

func (p *Prompter) invalid(ctx context.Context, q form.Question, err error) error {
	return p.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %v", p.theme.ErrorPrefix, q.Name, err))
}
