package rubywrap

import "github.com/mattn/go-runewidth"

// doubleWide holds the code points that occupy two display columns on the
// target surface. The set starts with U+2015 HORIZONTAL BAR, which the
// reference game font renders at double width, and can be extended with
// [SetDoubleWide] to match other fonts.
var doubleWide = map[rune]struct{}{
	'―': {},
}

// eastAsian selects the East Asian measuring mode, see [EastAsianWidths].
var eastAsian bool

// SetDoubleWide adds the given code points to the double-width set consulted
// by [Width]. The set is expected to be configured once, before any
// measurement, to match the target font; there is no way to remove a code
// point.
func SetDoubleWide(runes ...rune) {
	for _, r := range runes {
		doubleWide[r] = struct{}{}
	}
}

// EastAsianWidths toggles East Asian measuring mode. When enabled, code
// points outside the double-width set are measured with their East Asian
// Width as reported by go-runewidth, so CJK ideographs and fullwidth forms
// count as two columns. When disabled (the default), every code point
// outside the double-width set counts as one column, which matches fonts
// that allocate a single cell per glyph regardless of script.
func EastAsianWidths(enable bool) {
	eastAsian = enable
}

// Width returns the display width of text in columns. It never fails: every
// code point contributes at least one column, so layout decisions can rely
// on a total measurement even for garbage input.
func Width(text string) int {
	width := 0
	for _, r := range text {
		width += charWidth(r)
	}
	return width
}

// charWidth returns the column width of a single code point. The
// double-width override set wins over everything else; printable ASCII is
// fast tracked.
func charWidth(r rune) int {
	if _, ok := doubleWide[r]; ok {
		return 2
	}
	if r >= 0x20 && r <= 0x7e {
		return 1
	}
	if eastAsian {
		if w := runewidth.RuneWidth(r); w > 0 {
			return w
		}
		// Control and combining code points still occupy a cell in the
		// fixed-width text box model.
		return 1
	}
	return 1
}
