// Package visibility builds the predicates that decide whether a form field
// is asked, based on the answers collected before it.
package visibility

import "github.com/goliatone/go-commitform/pkg/form"

// Predicate reports whether a field should be visible for the given answers.
type Predicate = form.Visibility

// Always is visible regardless of the answers.
func Always(*form.AnswerSet) bool { return true }

// IsTrue is visible when the named confirm field was recorded as true.
func IsTrue(name string) Predicate {
	return func(answers *form.AnswerSet) bool {
		return answers.Bool(name)
	}
}

// Blank is visible when the named field is absent or was recorded as empty
// text. A skipped field counts as blank.
func Blank(name string) Predicate {
	return func(answers *form.AnswerSet) bool {
		v, ok := answers.Lookup(name)
		if !ok {
			return true
		}
		if v.IsFlag() {
			return !v.Bool()
		}
		return v.Text() == ""
	}
}

// Present is visible when the named field was recorded, whatever its value.
func Present(name string) Predicate {
	return func(answers *form.AnswerSet) bool {
		return answers.Has(name)
	}
}

// Not inverts p.
func Not(p Predicate) Predicate {
	return func(answers *form.AnswerSet) bool {
		return !p(answers)
	}
}

// All is visible when every predicate is. Nil predicates are ignored.
func All(preds ...Predicate) Predicate {
	return func(answers *form.AnswerSet) bool {
		for _, p := range preds {
			if p != nil && !p(answers) {
				return false
			}
		}
		return true
	}
}

// Any is visible when at least one predicate is.
func Any(preds ...Predicate) Predicate {
	return func(answers *form.AnswerSet) bool {
		for _, p := range preds {
			if p != nil && p(answers) {
				return true
			}
		}
		return false
	}
}
