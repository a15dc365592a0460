package wrap

import (
	"strings"
	"testing"
)

func TestString_ShortTextUnchanged(t *testing.T) {
	got := String("fix the parser", Options{Width: 100, Trim: true})
	if got != "fix the parser" {
		t.Fatalf("expected unchanged text, got %q", got)
	}
}

func TestString_BreaksOnWords(t *testing.T) {
	got := String("the quick brown fox", Options{Width: 10, Trim: true})
	want := "the quick\nbrown fox"
	if got != want {
		t.Fatalf("unexpected wrap:\nwant %q\n got %q", want, got)
	}
}

func TestString_NeverCutsLongWordsWithoutCut(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{name: "plain", word: strings.Repeat("x", 30)},
		{name: "hyphenated", word: "backward-incompatible"},
		{name: "kebab identifier", word: "max-header-width-option"},
		{name: "url path", word: "https://example.com/docs/breaking-changes/v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := String("see "+tt.word+" for details", Options{Width: 10, Trim: true})
			lines := strings.Split(got, "\n")
			found := false
			for _, line := range lines {
				if line == tt.word {
					found = true
				}
			}
			if !found {
				t.Fatalf("word %q was split: %q", tt.word, got)
			}
			if strings.Join(strings.Fields(got), " ") != "see "+tt.word+" for details" {
				t.Fatalf("words changed during wrap: %q", got)
			}
		})
	}
}

func TestString_HyphenIsNotABreakPoint(t *testing.T) {
	got := String("backward-incompatible change to the api", Options{Width: 10, Trim: true})
	want := "backward-incompatible\nchange to\nthe api"
	if got != want {
		t.Fatalf("unexpected wrap:\nwant %q\n got %q", want, got)
	}
}

func TestString_CutSplitsLongWords(t *testing.T) {
	got := String("backward-incompatible", Options{Width: 10, Cut: true})
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 10 {
			t.Fatalf("line %q exceeds width with Cut", line)
		}
	}
}

func TestString_PreservesBlankLines(t *testing.T) {
	got := String("first paragraph\n\nsecond paragraph", Options{Width: 100, Trim: true})
	want := "first paragraph\n\nsecond paragraph"
	if got != want {
		t.Fatalf("blank line lost:\nwant %q\n got %q", want, got)
	}
}

func TestString_TrimAndIndent(t *testing.T) {
	got := String("one  \ntwo\t", Options{Width: 0, Trim: true, Indent: "> "})
	want := "> one\n> two"
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestString_CustomNewline(t *testing.T) {
	got := String("a\nb", Options{Newline: "\r\n"})
	if got != "a\r\nb" {
		t.Fatalf("unexpected newline handling: %q", got)
	}
}

func TestString_LinesFitWidth(t *testing.T) {
	text := "Provide a longer description of the change so that it spans several lines when wrapped"
	got := String(text, Options{Width: 20, Trim: true})
	for _, line := range strings.Split(got, "\n") {
		if len(line) > 20 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	if strings.Join(strings.Fields(got), " ") != text {
		t.Fatalf("words changed during wrap: %q", got)
	}
}
