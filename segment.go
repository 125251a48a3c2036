package rubywrap

import "strings"

// newlineWord is the standalone unit emitted for a forced line break. The
// wrapper re-inserts it as a first-class break instead of packing it.
const newlineWord = "\n"

// The states of the word segmenter.
const (
	sgText = iota // outside any annotation
	sgRuby        // inside <...>, the whole annotation is one unit
)

// transitionWordState advances the segmenter by one code point. Only the
// annotation delimiters change state; their alternation is checked the same
// way the annotation parser checks it.
func transitionWordState(state int, r rune, line string, pos int) (int, error) {
	switch r {
	case rubyStart:
		if state == sgRuby {
			return state, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "repeated ruby-start"}
		}
		return sgRuby, nil
	case rubyEnd:
		if state != sgRuby {
			return state, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "ruby-end without ruby-start"}
		}
		return sgText, nil
	}
	return state, nil
}

// Words splits line into display units: maximal runs of non-space
// characters, whole ruby annotations, and standalone newline markers. A
// full <base|reading> annotation is never split across unit boundaries;
// spaces and newlines inside an annotation belong to its unit, since
// breaking mid-annotation would desynchronize base and reading rendering.
// Forced breaks survive as their own "\n" unit.
func Words(line string) ([]string, error) {
	var words []string
	var acc strings.Builder
	state := sgText
	pos := 0
	for _, r := range line {
		var err error
		state, err = transitionWordState(state, r, line, pos)
		if err != nil {
			return nil, err
		}
		pos++

		if state == sgText && (r == ' ' || r == '\n') {
			// A space or newline outside an annotation completes the
			// current unit, even an empty one.
			words = append(words, acc.String())
			if r == '\n' {
				words = append(words, newlineWord)
			}
			acc.Reset()
			continue
		}
		acc.WriteRune(r)
	}
	if state == sgRuby {
		return nil, &MalformedAnnotationError{Line: line, Pos: pos, Reason: "unterminated ruby annotation"}
	}
	if acc.Len() > 0 {
		words = append(words, acc.String())
	}
	return words, nil
}
