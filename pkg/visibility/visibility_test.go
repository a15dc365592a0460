package visibility

import (
	"testing"

	"github.com/goliatone/go-commitform/pkg/form"
)

func answers(t *testing.T, order []string, values map[string]any) *form.AnswerSet {
	t.Helper()
	set, err := form.FromMap(order, values)
	if err != nil {
		t.Fatalf("build answers: %v", err)
	}
	return set
}

func TestBlank_TreatsAbsentAndEmptyAlike(t *testing.T) {
	set := answers(t, []string{"body", "breakingBody"}, map[string]any{
		"body":         "",
		"breakingBody": "-",
	})

	cases := map[string]bool{
		"body":         true,
		"breakingBody": false,
		"issuesBody":   true,
	}
	for name, want := range cases {
		if got := Blank(name)(set); got != want {
			t.Fatalf("Blank(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestPresent_DistinguishesAbsentFromEmpty(t *testing.T) {
	set := answers(t, []string{"body"}, map[string]any{"body": ""})
	if !Present("body")(set) {
		t.Fatalf("empty body should be present")
	}
	if Present("breakingBody")(set) {
		t.Fatalf("skipped field should be absent")
	}
}

func TestCombinators(t *testing.T) {
	set := answers(t, []string{"isBreaking", "body"}, map[string]any{
		"isBreaking": true,
		"body":       "details",
	})

	tests := []struct {
		name string
		pred Predicate
		want bool
	}{
		{"always", Always, true},
		{"is true", IsTrue("isBreaking"), true},
		{"is true on absent", IsTrue("isIssueAffected"), false},
		{"all", All(IsTrue("isBreaking"), Blank("body")), false},
		{"all ignores nil", All(nil, IsTrue("isBreaking")), true},
		{"any", Any(Blank("body"), IsTrue("isBreaking")), true},
		{"not", Not(Blank("body")), true},
		{"empty all", All(), true},
		{"empty any", Any(), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pred(set); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}
