package softwrap

import (
	"math"
	"unicode/utf16"
)

// encodeUnits converts a line to the UTF-16 code units the break algorithms
// walk. Break offsets index into this sequence.
func encodeUnits(line string) []uint16 {
	return utf16.Encode([]rune(line))
}

func isHighSurrogate(unit uint16) bool {
	return unit >= 0xD800 && unit <= 0xDBFF
}

func isLowSurrogate(unit uint16) bool {
	return unit >= 0xDC00 && unit <= 0xDFFF
}

// tabWidth is the number of columns a tab starting at visibleColumn consumes:
// enough to reach the next tab stop.
func tabWidth(visibleColumn float64, tabSize int) float64 {
	return float64(tabSize) - math.Mod(visibleColumn, float64(tabSize))
}

// charWidth returns the column width of one code unit at the given visible
// column. Control characters count as full-width, standing in for their
// rendered substitution glyph.
func charWidth(unit uint16, visibleColumn float64, tabSize int, fullWidthColumns float64, isFullWidth func(rune) bool) float64 {
	if unit == '\t' {
		return tabWidth(visibleColumn, tabSize)
	}
	if isFullWidth(rune(unit)) {
		return fullWidthColumns
	}
	if unit < 32 {
		return fullWidthColumns
	}
	return 1
}

// wrappedIndentWidth computes the indentation, in columns, prepended to every
// continuation line: the first line's leading whitespace (tabs expanded),
// plus zero, one or two extra tab stops per the indent policy. If the indent
// plus one full-width character would meet or exceed the break column, it
// collapses to zero so continuation lines always fit at least one character.
func wrappedIndentWidth(units []uint16, tabSize int, firstBreakColumn int, fullWidthColumns float64, indent WrappingIndent) int {
	if indent == WrappingIndentNone {
		return 0
	}
	firstNonWhitespace := -1
	for i, unit := range units {
		if unit != ' ' && unit != '\t' {
			firstNonWhitespace = i
			break
		}
	}
	if firstNonWhitespace == -1 {
		return 0
	}

	width := 0
	for i := 0; i < firstNonWhitespace; i++ {
		if units[i] == '\t' {
			width += tabSize - width%tabSize
		} else {
			width++
		}
	}

	extraTabs := 0
	switch indent {
	case WrappingIndentIndent:
		extraTabs = 1
	case WrappingIndentDeepIndent:
		extraTabs = 2
	}
	for i := 0; i < extraTabs; i++ {
		width += tabSize - width%tabSize
	}

	if float64(width)+fullWidthColumns >= float64(firstBreakColumn) {
		width = 0
	}
	return width
}
