package rubywrap

import (
	"fmt"
	"strings"
)

// Inline control codes, written %{code} in script text:
//
//	%{n}   forced newline
//	%{s}   forced space
//	%{i} %{/i}   italics on/off (reserved)
//	%{b} %{/b}   bold on/off (reserved)
//	%{r} %{/r}   reverse video on/off (reserved)
//
// The reserved codes are rejected until the renderer implements them.

// UnknownControlCodeError reports a control code name outside the
// recognized set. There is no fallback rendering for an unrecognized code;
// it is an authoring error to be fixed in content.
type UnknownControlCodeError struct {
	Line string // the full input line
	Code string // the unrecognized code name
}

func (e *UnknownControlCodeError) Error() string {
	return fmt.Sprintf("unhandled control code %q in line %q", e.Code, e.Line)
}

// The states of the control code scanner.
const (
	ccNormal  = iota // copying characters through
	ccPercent        // seen %, waiting for {
	ccCode           // inside %{...}, accumulating the code name
)

// ExpandControlCodes rewrites the %{...} escapes in text into the literal
// characters they stand for: %{n} becomes a newline and %{s} a space. The
// expansion runs before measurement and wrapping, so downstream stages only
// ever see literal characters. A % not followed by { is copied through
// literally; an unterminated %{... at end of input is discarded.
func ExpandControlCodes(text string) (string, error) {
	var out strings.Builder
	var code strings.Builder
	out.Grow(len(text))
	state := ccNormal
	for _, r := range text {
		switch state {
		case ccNormal:
			if r == '%' {
				state = ccPercent
				continue
			}
			out.WriteRune(r)
		case ccPercent:
			if r == '{' {
				state = ccCode
				code.Reset()
				continue
			}
			// Not a control code after all. Emit the pending % and
			// re-process this character in the normal state.
			out.WriteRune('%')
			if r == '%' {
				continue
			}
			state = ccNormal
			out.WriteRune(r)
		case ccCode:
			if r == '}' {
				expanded, err := expandCode(code.String(), text)
				if err != nil {
					return "", err
				}
				out.WriteString(expanded)
				state = ccNormal
				continue
			}
			code.WriteRune(r)
		}
	}
	if state == ccPercent {
		out.WriteRune('%')
	}
	return out.String(), nil
}

// expandCode maps a closed control code name to its literal expansion.
func expandCode(code, line string) (string, error) {
	switch code {
	case "n":
		return "\n", nil
	case "s":
		return " ", nil
	}
	return "", &UnknownControlCodeError{Line: line, Code: code}
}
