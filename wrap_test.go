package rubywrap

import (
	"errors"
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		cursor   int
		want     string
	}{
		{"fits unchanged", "hello", 80, 0, "hello"},
		{"simple break", "a b c d", 3, 0, "a b\nc d"},
		{"exact fit does not break", "abc", 3, 0, "abc"},
		{"unbreakable word passes through", strings.Repeat("x", 100), 10, 0, strings.Repeat("x", 100)},
		{"forced break preserved", "foo\nbar", 80, 0, "foo\nbar"},
		{"forced break with narrow limit", "foo\nbar", 3, 0, "foo\nbar"},
		{"forced break at the limit does not double-break", "ab\ncd", 2, 0, "ab\ncd"},
		{"trailing forced break keeps blank line", "ab\n", 2, 0, "ab\n"},
		{"annotation stays whole", "<何|なに> said the <王|おう>", 6, 0, "<何|なに> said\nthe <王|おう>"},
		{"annotation too wide passes through", "hi <長い言葉|ながいことば> hi", 3, 0, "hi <長い言葉|ながいことば> hi"},
		{"double-width counts double", "a― b― c―", 7, 0, "a― b―\nc―"},
		{"empty line", "", 10, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.input, tt.maxWidth, tt.cursor)
			if err != nil {
				t.Fatalf("Wrap(%q, %d, %d) error: %v", tt.input, tt.maxWidth, tt.cursor, err)
			}
			if got != tt.want {
				t.Errorf("Wrap(%q, %d, %d) = %q, want %q", tt.input, tt.maxWidth, tt.cursor, got, tt.want)
			}
		})
	}
}

// TestWrapStartCursor checks that the cursor consumes columns on the first
// line only.
func TestWrapStartCursor(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		cursor   int
		want     string
	}{
		{"no cursor fits", "one two", 8, 0, "one two"},
		{"cursor forces early break", "one two", 7, 4, "one\ntwo"},
		{"cursor pushes everything to next line", "word", 4, 3, "\nword"},
		{"cursor resets after break", "aa bb cc", 5, 3, "aa\nbb cc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.input, tt.maxWidth, tt.cursor)
			if err != nil {
				t.Fatalf("Wrap(%q, %d, %d) error: %v", tt.input, tt.maxWidth, tt.cursor, err)
			}
			if got != tt.want {
				t.Errorf("Wrap(%q, %d, %d) = %q, want %q", tt.input, tt.maxWidth, tt.cursor, got, tt.want)
			}
		})
	}
}

// TestWrapLinesWithinBudget checks that every produced line fits the width
// budget whenever no single unit exceeds it.
func TestWrapLinesWithinBudget(t *testing.T) {
	inputs := []struct {
		line     string
		maxWidth int
	}{
		{"the quick brown fox jumps over the lazy dog", 10},
		{"<狐|きつね> jumps over the <犬|いぬ>", 8},
		{"a b c d e f g h i j", 4},
		{"― ― ― ―", 5},
	}
	for _, in := range inputs {
		got, err := Wrap(in.line, in.maxWidth, 0)
		if err != nil {
			t.Fatalf("Wrap(%q, %d) error: %v", in.line, in.maxWidth, err)
		}
		for _, line := range strings.Split(got, "\n") {
			if w := BaselineWidth(line); w > in.maxWidth {
				t.Errorf("Wrap(%q, %d): line %q has width %d", in.line, in.maxWidth, line, w)
			}
		}
	}
}

func TestWrapMalformed(t *testing.T) {
	// A malformed line wide enough to need wrapping propagates the
	// segmentation error.
	line := "some words here <broken ruby with no end and quite a lot of text"
	_, err := Wrap(line, 10, 0)
	var malformed *MalformedAnnotationError
	if !errors.As(err, &malformed) {
		t.Fatalf("Wrap error = %v, want *MalformedAnnotationError", err)
	}

	// The same line already within budget takes the fast path and is
	// returned unchanged, courtesy of the raw-measurement fallback.
	got, err := Wrap(line, 200, 0)
	if err != nil {
		t.Fatalf("Wrap fast path error: %v", err)
	}
	if got != line {
		t.Errorf("Wrap fast path = %q, want input unchanged", got)
	}
}
