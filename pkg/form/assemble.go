package form

import (
	"strings"

	"github.com/goliatone/go-commitform/pkg/wrap"
)

// Field names the assembler reads.
const (
	FieldType     = "type"
	FieldScope    = "scope"
	FieldSubject  = "subject"
	FieldBody     = "body"
	FieldBreaking = "breaking"
	FieldIssues   = "issues"
)

// BreakingMarker prefixes the breaking change section.
const BreakingMarker = "BREAKING CHANGE: "

// Header formats the first line of a commit message. The scope is wrapped in
// parentheses only when present.
func Header(changeType, scope, subject string) string {
	if scope != "" {
		return changeType + "(" + scope + "): " + subject
	}
	return changeType + ": " + subject
}

// Assemble renders answers into a commit message: header, body, breaking
// change notice and issue references, separated by one blank line. Empty
// sections are left out.
func (o *Orchestrator) Assemble(answers *AnswerSet) string {
	opts := wrap.Options{
		Width:   o.settings.MaxLineWidth,
		Trim:    true,
		Cut:     false,
		Newline: "\n",
		Indent:  "",
	}

	head := Header(answers.Text(FieldType), answers.Text(FieldScope), answers.Text(FieldSubject))
	if n := len([]rune(head)); n > o.settings.MaxHeaderWidth {
		o.logger.Warn().Int("length", n).Int("max", o.settings.MaxHeaderWidth).Msg("header exceeds max width")
	}

	sections := []string{head}

	if body := answers.Text(FieldBody); body != "" {
		sections = append(sections, o.wrap(body, opts))
	}

	if breaking := strings.TrimSpace(answers.Text(FieldBreaking)); breaking != "" {
		breaking = BreakingMarker + strings.TrimPrefix(breaking, BreakingMarker)
		sections = append(sections, o.wrap(breaking, opts))
	}

	if issues := answers.Text(FieldIssues); issues != "" {
		sections = append(sections, o.wrap(issues, opts))
	}

	return strings.Join(nonEmpty(sections), "\n\n")
}

func nonEmpty(sections []string) []string {
	out := sections[:0]
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
