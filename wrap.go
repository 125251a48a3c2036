package rubywrap

import "strings"

// Wrap re-wraps line to at most maxWidth display columns, measuring the
// baseline text only so ruby markup never counts against the budget.
// startCursor is the number of columns already consumed on the first output
// line by other UI content (a speaker name, an icon); it applies to the
// first line only.
//
// The result is either line unchanged or its units re-joined into multiple
// lines separated by "\n". Two deliberate exceptions to the width budget:
// a line whose widest single unit exceeds maxWidth passes through unchanged
// (overflow beats corrupting an annotation or splitting a token), and a
// malformed line measured via the raw fallback may overflow as well.
// Segmentation errors on malformed annotations propagate.
func Wrap(line string, maxWidth, startCursor int) (string, error) {
	// Already fits, cursor included.
	if BaselineWidth(line)+startCursor < maxWidth {
		return line, nil
	}

	words, err := Words(line)
	if err != nil {
		return "", err
	}

	// A unit wider than the limit cannot be placed on any line without
	// splitting it, so the whole line passes through unchanged.
	for _, w := range words {
		if BaselineWidth(w) > maxWidth {
			return line, nil
		}
	}

	return strings.Join(packWords(words, maxWidth, startCursor), "\n"), nil
}

// packWords greedily folds units into completed lines of at most maxWidth
// columns each. The cursor offsets the first line only and resets to zero
// after every break. The overflow check runs before the forced-break check:
// when a break lands exactly on the limit right in front of a forced "\n",
// the newline unit is absorbed into the break instead of emitting a second,
// empty line.
func packWords(words []string, maxWidth, cursor int) []string {
	var lines []string
	acc := ""
	firstWord := true
	for _, word := range words {
		candidate := word
		if !firstWord {
			candidate = acc + " " + word
		}

		if BaselineWidth(candidate)+cursor > maxWidth {
			lines = append(lines, acc)
			if word == newlineWord {
				acc = ""
				firstWord = true
			} else {
				acc = word
				firstWord = false
			}
			cursor = 0
			continue
		}

		if word == newlineWord {
			lines = append(lines, acc)
			acc = ""
			firstWord = true
			cursor = 0
			continue
		}

		acc = candidate
		firstWord = false
	}

	// A trailing accumulator is flushed; an empty one still counts when the
	// final unit was a forced break, since the trailing blank line is
	// author intent.
	if acc != "" || (len(words) > 0 && words[len(words)-1] == newlineWord) {
		lines = append(lines, acc)
	}
	return lines
}
