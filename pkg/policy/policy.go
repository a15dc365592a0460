// Package policy defines the ordered questions of a commit session and the
// rules attached to each of them.
package policy

import (
	"fmt"

	"github.com/goliatone/go-commitform/pkg/changetype"
	"github.com/goliatone/go-commitform/pkg/form"
	"github.com/goliatone/go-commitform/pkg/visibility"
)

// Field names, in the order they are asked.
const (
	FieldType            = form.FieldType
	FieldScope           = form.FieldScope
	FieldSubject         = form.FieldSubject
	FieldBody            = form.FieldBody
	FieldIsBreaking      = "isBreaking"
	FieldBreakingBody    = "breakingBody"
	FieldBreaking        = form.FieldBreaking
	FieldIsIssueAffected = "isIssueAffected"
	FieldIssuesBody      = "issuesBody"
	FieldIssues          = form.FieldIssues
)

// placeholderBody pre-fills the mandatory body questions.
const placeholderBody = "-"

// Options carries the configuration the table depends on.
type Options struct {
	MaxHeaderWidth int
	DefaultType    string
	DefaultScope   string
	DefaultSubject string
	DefaultBody    string
	// DefaultIssues pre-fills the issue references and flips the
	// "affects open issues" default to yes when non-empty.
	DefaultIssues string
}

// DefaultOptions returns the stock 100 column configuration.
func DefaultOptions() Options {
	return Options{MaxHeaderWidth: 100}
}

// Table builds the field policy table for catalog.
func Table(catalog *changetype.Catalog, opts Options) ([]form.FieldSpec, error) {
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("policy: change type catalog is empty")
	}
	if opts.MaxHeaderWidth <= 0 {
		opts.MaxHeaderWidth = DefaultOptions().MaxHeaderWidth
	}

	defaultType := catalog.First().ID
	if _, ok := catalog.Lookup(opts.DefaultType); ok {
		defaultType = opts.DefaultType
	}

	return []form.FieldSpec{
		{
			Name:    FieldType,
			Kind:    form.KindSelect,
			Message: form.StaticMessage("Select the type of change that you're committing:"),
			Choices: catalog.Choices(),
			Default: form.Literal(form.Text(defaultType)),
		},
		{
			Name:      FieldScope,
			Kind:      form.KindText,
			Message:   form.StaticMessage("What is the scope of this change (e.g. component or file name): (press enter to skip)"),
			Default:   form.Literal(form.Text(opts.DefaultScope)),
			Normalize: NormalizeScope,
			Skippable: true,
		},
		{
			Name: FieldSubject,
			Kind: form.KindText,
			Message: func(answers *form.AnswerSet) string {
				return fmt.Sprintf(
					"Write a short, imperative tense description of the change (max %d chars):",
					HeaderBudget(opts.MaxHeaderWidth, answers.Text(FieldType), answers.Text(FieldScope)),
				)
			},
			Default:   optionalText(opts.DefaultSubject),
			Validate:  ValidateSubject(opts.MaxHeaderWidth),
			Normalize: NormalizeSubject,
		},
		{
			Name:      FieldBody,
			Kind:      form.KindText,
			Message:   form.StaticMessage("Provide a longer description of the change: (press enter to skip)"),
			Default:   form.Literal(form.Text(opts.DefaultBody)),
			Skippable: true,
		},
		{
			Name:    FieldIsBreaking,
			Kind:    form.KindConfirm,
			Message: form.StaticMessage("Are there any breaking changes?"),
			Default: form.Literal(form.Flag(false)),
		},
		{
			Name:     FieldBreakingBody,
			Kind:     form.KindText,
			Message:  form.StaticMessage("A BREAKING CHANGE commit requires a body. Please enter a longer description of the commit itself:"),
			Default:  form.Literal(form.Text(placeholderBody)),
			Validate: requireText(FieldBreakingBody, "Body is required for BREAKING CHANGE"),
			When:     visibility.All(visibility.IsTrue(FieldIsBreaking), visibility.Blank(FieldBody)),
		},
		{
			Name:    FieldBreaking,
			Kind:    form.KindText,
			Message: form.StaticMessage("Describe the breaking changes:"),
			When:    visibility.IsTrue(FieldIsBreaking),
		},
		{
			Name:    FieldIsIssueAffected,
			Kind:    form.KindConfirm,
			Message: form.StaticMessage("Does this change affect any open issues?"),
			Default: form.Literal(form.Flag(opts.DefaultIssues != "")),
		},
		{
			Name:     FieldIssuesBody,
			Kind:     form.KindText,
			Message:  form.StaticMessage("If issues are closed, the commit requires a body. Please enter a longer description of the commit itself:"),
			Default:  form.Literal(form.Text(placeholderBody)),
			Validate: requireText(FieldIssuesBody, "Body is required when closing issues"),
			When: visibility.All(
				visibility.IsTrue(FieldIsIssueAffected),
				visibility.Blank(FieldBody),
				visibility.Blank(FieldBreakingBody),
			),
		},
		{
			Name:    FieldIssues,
			Kind:    form.KindText,
			Message: form.StaticMessage(`Add issue references (e.g. "fix #123", "re #123".):`),
			Default: optionalText(opts.DefaultIssues),
			When:    visibility.IsTrue(FieldIsIssueAffected),
		},
	}, nil
}

func optionalText(s string) form.DefaultFunc {
	if s == "" {
		return nil
	}
	return form.Literal(form.Text(s))
}
