package policy

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-commitform/pkg/form"
)

// NormalizeSubject trims the subject, lowercases an uppercase first letter
// and strips every trailing period. Whitespace left between trailing periods
// goes with them so the result is stable under repeated normalization.
func NormalizeSubject(subject string) string {
	subject = strings.TrimSpace(subject)
	if r, size := utf8.DecodeRuneInString(subject); size > 0 && unicode.IsUpper(r) {
		subject = string(unicode.ToLower(r)) + subject[size:]
	}
	return strings.TrimRightFunc(subject, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
}

// HeaderBudget is the room left for the subject once the type, the optional
// scope and their separators are accounted for.
func HeaderBudget(maxHeaderWidth int, changeType, scope string) int {
	budget := maxHeaderWidth - utf8.RuneCountInString(changeType) - 2
	if scope != "" {
		budget -= utf8.RuneCountInString(scope) + 2
	}
	return budget
}

// ValidateSubject returns a validator that checks the normalized subject
// against the header budget computed from the type and scope answers.
func ValidateSubject(maxHeaderWidth int) form.Validator {
	return func(raw string, answers *form.AnswerSet) error {
		subject := NormalizeSubject(raw)
		length := utf8.RuneCountInString(subject)
		if length == 0 {
			return form.NewValidationError(FieldSubject, "subject is required")
		}
		budget := HeaderBudget(maxHeaderWidth, answers.Text(FieldType), answers.Text(FieldScope))
		if length > budget {
			return form.NewValidationError(FieldSubject, fmt.Sprintf(
				"Subject length must be less than or equal to %d characters. Current length is %d characters.",
				budget, length,
			))
		}
		return nil
	}
}

// NormalizeScope trims and lowercases the scope.
func NormalizeScope(scope string) string {
	return strings.ToLower(strings.TrimSpace(scope))
}

func requireText(field, message string) form.Validator {
	return func(raw string, _ *form.AnswerSet) error {
		if strings.TrimSpace(raw) == "" {
			return form.NewValidationError(field, message)
		}
		return nil
	}
}
