package policy

import (
	"strings"
	"testing"

	"github.com/goliatone/go-commitform/pkg/form"
)

func TestNormalizeSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Fix bug.", "fix bug"},
		{"  Add endpoint  ", "add endpoint"},
		{"already lower", "already lower"},
		{"Trailing dots...", "trailing dots"},
		{"1st release.", "1st release"},
		{"(scope) Thing", "(scope) Thing"},
		{"Élan", "élan"},
		{"x . .", "x"},
		{"...", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeSubject(tc.in); got != tc.want {
			t.Fatalf("NormalizeSubject(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeSubject_Idempotent(t *testing.T) {
	inputs := []string{"Fix bug.", " A. ", "x . .", "Upper Case Words..", "ümlaut", "  .  "}
	for _, in := range inputs {
		once := NormalizeSubject(in)
		if twice := NormalizeSubject(once); twice != once {
			t.Fatalf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestHeaderBudget(t *testing.T) {
	tests := []struct {
		max        int
		typ, scope string
		want       int
	}{
		{100, "fix", "", 95},
		{100, "feat", "api", 89},
		{50, "refactor", "parser", 32},
		{10, "chore", "deps", -3},
	}
	for _, tc := range tests {
		if got := HeaderBudget(tc.max, tc.typ, tc.scope); got != tc.want {
			t.Fatalf("HeaderBudget(%d, %q, %q) = %d, want %d", tc.max, tc.typ, tc.scope, got, tc.want)
		}
	}
}

func TestValidateSubject_AcceptsExactlyBudgetRange(t *testing.T) {
	combos := []struct{ typ, scope string }{
		{"fix", ""},
		{"feat", "api"},
		{"docs", "readme"},
	}
	const maxWidth = 40
	validate := ValidateSubject(maxWidth)

	for _, c := range combos {
		answers, err := form.FromMap([]string{FieldType, FieldScope}, map[string]any{
			FieldType:  c.typ,
			FieldScope: c.scope,
		})
		if err != nil {
			t.Fatalf("answers: %v", err)
		}
		budget := HeaderBudget(maxWidth, c.typ, c.scope)

		if err := validate("", answers); err == nil || err.Error() != "subject is required" {
			t.Fatalf("%v: expected required error, got %v", c, err)
		}
		if err := validate(strings.Repeat("a", budget), answers); err != nil {
			t.Fatalf("%v: subject at budget rejected: %v", c, err)
		}
		if err := validate("a", answers); err != nil {
			t.Fatalf("%v: one char subject rejected: %v", c, err)
		}
		err = validate(strings.Repeat("a", budget+1), answers)
		if err == nil {
			t.Fatalf("%v: subject over budget accepted", c)
		}
		if !form.IsValidationError(err) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		if !strings.Contains(err.Error(), "less than or equal to") {
			t.Fatalf("unexpected message %q", err.Error())
		}
	}
}

func TestValidateSubject_MeasuresNormalizedSubject(t *testing.T) {
	answers, _ := form.FromMap([]string{FieldType}, map[string]any{FieldType: "fix"})
	validate := ValidateSubject(10)
	// budget is 5: "abcde" fits once trailing periods and spaces are gone
	if err := validate("  Abcde...  ", answers); err != nil {
		t.Fatalf("expected normalized subject to fit: %v", err)
	}
	if err := validate(" ... ", answers); err == nil {
		t.Fatalf("expected required error for punctuation only subject")
	}
}

func TestValidateSubject_RecomputesBudgetPerCall(t *testing.T) {
	validate := ValidateSubject(20)
	short, _ := form.FromMap([]string{FieldType}, map[string]any{FieldType: "fix"})
	long, _ := form.FromMap([]string{FieldType, FieldScope}, map[string]any{FieldType: "refactor", FieldScope: "core"})

	subject := strings.Repeat("s", 12)
	if err := validate(subject, short); err != nil {
		t.Fatalf("12 chars should fit a 15 char budget: %v", err)
	}
	if err := validate(subject, long); err == nil {
		t.Fatalf("12 chars should not fit a 4 char budget")
	}
}
