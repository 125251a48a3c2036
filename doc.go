/*
Package rubywrap formats annotated dialogue text for fixed-width display
surfaces such as game text boxes.

Script lines may carry inline ruby annotations (base text paired with a
reading, as used in Japanese typesetting) and custom control codes for
forced breaks and spaces. This package measures the true on-screen width of
such lines, splits them into display-safe units, and re-wraps them to a
maximum line width without ever splitting inside an annotation or a control
code, while preserving author-intended hard breaks.

# Overview

Using this package, you can:
  - Measure display width in columns, with double-width glyph support
  - Strip ruby readings to obtain the baseline text
  - Split a line into indivisible display units
  - Greedily wrap a line to a column budget
  - Expand %{...} control codes into literal characters

All operations are pure, synchronous transformations over in-memory
strings. Lines are processed independently, so callers may parallelize
across lines freely.

# Getting Started

For simple use cases:
  - [Width] - Column width of plain text
  - [BaselineWidth] - Column width ignoring ruby markup
  - [Wrap] - Re-wrap a line to a column budget

For the individual pipeline stages:
  - [StripReading] / [Annotations] - Parse ruby markup
  - [Words] - Ruby-aware word segmentation
  - [ExpandControlCodes] - Rewrite %{n} and %{s} escapes

# Ruby Annotations

A ruby annotation pairs base text with a reading, delimited as

	<base|reading>

Only the base segment occupies columns; the reading is rendered above it.
Annotations are atomic for wrapping purposes: a break inside one would
desynchronize base and reading rendering. Delimiters must alternate
correctly (one <, one |, one > in that order, non-nested); anything else is
a *[MalformedAnnotationError] naming the offending line.

The one deliberately forgiving entry point is [BaselineWidth]: it measures
the raw line when stripping fails, because wrapping must stay best effort
even for corrupt script lines. Every other operation treats malformed
markup as a fatal authoring error.

# Control Codes

Inline escapes of the form %{code} are expanded before measurement:
%{n} becomes a forced newline and %{s} a forced space. Unknown code names
are a *[UnknownControlCodeError]. See [ExpandControlCodes].

# Line Wrapping

[Wrap] packs units greedily: a line that already fits is returned
unchanged, a single unit too wide for the budget passes the whole line
through unchanged, and forced breaks are honored without double-emitting
when they coincide with the width limit. A startCursor argument accounts
for columns already consumed on the first line by other UI content.

# Display Width

[Width] counts one column per code point unless the code point is in the
double-width set (seeded with U+2015, extendable with [SetDoubleWide]).
For fonts that render CJK ideographs at double width, enable
[EastAsianWidths] to measure via go-runewidth instead.

Note: Actual rendering depends on the target font. The defaults match the
reference game engine; configure the knobs to match yours.
*/
package rubywrap
