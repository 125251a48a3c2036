package rubywrap

import (
	"errors"
	"fmt"
	"strings"
)

// Ruby annotation delimiters, written <base|reading> in script text.
const (
	rubyStart = '<'
	rubyMid   = '|'
	rubyEnd   = '>'
)

// The states of the ruby annotation parser.
const (
	rbOutside = iota // not inside an annotation
	rbBase           // between < and |, the rendered base segment
	rbReading        // between | and >, the reading segment
)

// MalformedAnnotationError reports ruby delimiters fired out of order or
// left unterminated. It names the offending line so authoring errors can be
// located in script assets.
type MalformedAnnotationError struct {
	Line   string // the full input line
	Pos    int    // rune index of the offending position
	Reason string
}

func (e *MalformedAnnotationError) Error() string {
	return fmt.Sprintf("%s at %d in line %q", e.Reason, e.Pos, e.Line)
}

// transitionRubyState advances the annotation parser by one code point. It
// returns the new state and whether the code point belongs to the baseline
// text, that is, whether [StripReading] emits it. A delimiter fired from
// the wrong state returns a *MalformedAnnotationError and leaves the state
// unchanged.
func transitionRubyState(state int, r rune, line string, pos int) (newState int, emit bool, err error) {
	switch r {
	case rubyStart:
		if state != rbOutside {
			return state, false, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "repeated ruby-start"}
		}
		return rbBase, false, nil
	case rubyMid:
		if state != rbBase {
			return state, false, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "ruby-delimiter in non-ruby text"}
		}
		return rbReading, false, nil
	case rubyEnd:
		switch state {
		case rbReading:
			return rbOutside, false, nil
		case rbBase:
			return state, false, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "ruby-end without ruby-delimiter"}
		default:
			return state, false, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "ruby-end outside ruby context"}
		}
	}
	// Ordinary characters keep the state. Baseline characters are everything
	// outside an annotation plus the base segment of one.
	return state, state != rbReading, nil
}

// HasRuby reports whether line contains any ruby delimiter. It is a cheap
// pre-test; a true result does not imply the annotations are well formed.
func HasRuby(line string) bool {
	return strings.ContainsAny(line, "<|>")
}

// StripReading returns line with every ruby annotation replaced by its base
// segment only: readings and delimiters are removed, all other characters
// are preserved verbatim. The result is the baseline text, what actually
// occupies columns in the text box. Stripping an annotation-free line
// returns it unchanged.
func StripReading(line string) (string, error) {
	var b strings.Builder
	b.Grow(len(line))
	state := rbOutside
	pos := 0
	for _, r := range line {
		var emit bool
		var err error
		state, emit, err = transitionRubyState(state, r, line, pos)
		if err != nil {
			return "", err
		}
		if emit {
			b.WriteRune(r)
		}
		pos++
	}
	if state != rbOutside {
		return "", &MalformedAnnotationError{Line: line, Pos: pos, Reason: "unterminated ruby annotation"}
	}
	return b.String(), nil
}

// BaselineWidth returns the display width of line as if it contained no
// ruby markup. Malformed annotations do not fail the measurement: the
// diagnostic is traced and the raw, unstripped line is measured instead, so
// wrapping stays best effort even for corrupt script lines. Callers that
// need the strict result use [StripReading] directly.
func BaselineWidth(line string) int {
	stripped, err := StripReading(line)
	var malformed *MalformedAnnotationError
	if errors.As(err, &malformed) {
		T().Errorf("measuring raw line: %v", malformed)
		return Width(line)
	}
	return Width(stripped)
}

// Annotation is one ruby group: base text rendered at the baseline, reading
// text rendered above it.
type Annotation struct {
	Base    string
	Reading string
}

// Annotations extracts the ruby groups of line in order of appearance.
// Characters outside annotations are skipped; a line without annotations
// yields nil.
func Annotations(line string) ([]Annotation, error) {
	var anns []Annotation
	var base, reading strings.Builder
	state := rbOutside
	pos := 0
	for _, r := range line {
		prev := state
		var err error
		state, _, err = transitionRubyState(state, r, line, pos)
		if err != nil {
			return nil, err
		}
		pos++
		switch {
		case prev == rbBase && state == rbBase:
			base.WriteRune(r)
		case prev == rbReading && state == rbReading:
			reading.WriteRune(r)
		case prev == rbReading && state == rbOutside:
			anns = append(anns, Annotation{Base: base.String(), Reading: reading.String()})
			base.Reset()
			reading.Reset()
		}
	}
	if state != rbOutside {
		return nil, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "unterminated ruby annotation"}
	}
	return anns, nil
}
