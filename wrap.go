package softwrap

import (
	"strings"
	"unicode/utf16"
)

// WrappingIndent selects how much indentation continuation lines receive.
type WrappingIndent int

const (
	WrappingIndentNone       WrappingIndent = iota // no extra indent
	WrappingIndentSame                             // match the first line's leading whitespace
	WrappingIndentIndent                           // one extra tab stop
	WrappingIndentDeepIndent                       // two extra tab stops
)

// WordBreak selects the word-breaking rule for CJK text.
type WordBreak int

const (
	// WordBreakNormal allows breaks on either side of ideographs.
	WordBreakNormal WordBreak = iota
	// WordBreakKeepAll suppresses breaks adjacent to ideographs, wrapping
	// CJK/Korean runs only at whitespace and punctuation.
	WordBreakKeepAll
)

// Options are the scalar wrapping parameters. TabSize and
// ColumnsForFullWidthChar must be positive; WrappingColumn == -1 disables
// wrapping entirely.
type Options struct {
	TabSize                 int
	WrappingColumn          int
	ColumnsForFullWidthChar float64
	WrappingIndent          WrappingIndent
	WordBreak               WordBreak
}

// BreakResult describes where one line wraps. A nil *BreakResult means the
// line never needs to wrap.
//
// Offsets index UTF-16 code units, the coordinate space editor buffers and
// LSP positions use; a surrogate pair counts as two units but is never split.
type BreakResult struct {
	// BreakOffsets holds the start offset of each wrapped segment after the
	// first, in strictly increasing order. The last entry is always the
	// line's length in code units.
	BreakOffsets []int
	// BreakOffsetsVisibleColumn holds the visible column (tabs expanded,
	// full-width characters counted) at each break offset. Fractional only
	// when ColumnsForFullWidthChar is fractional.
	BreakOffsetsVisibleColumn []float64
	// WrappedTextIndentLength is the indentation, in columns, prepended to
	// every continuation line.
	WrappedTextIndentLength int
}

// Segments splits line at the computed break offsets. The line must be the
// one the result was computed for.
func (r *BreakResult) Segments(line string) []string {
	units := encodeUnits(line)
	segments := make([]string, 0, len(r.BreakOffsets))
	start := 0
	for _, offset := range r.BreakOffsets {
		if offset > len(units) {
			offset = len(units)
		}
		segments = append(segments, string(utf16.Decode(units[start:offset])))
		start = offset
	}
	return segments
}

// canBreak decides whether a break immediately before the current character
// is allowed. Kinsoku shori: never break after a leading character like an
// open bracket, never break before a trailing character like a period.
func canBreak(prevUnit uint16, prevClass CharacterClass, unit uint16, class CharacterClass) bool {
	return unit != ' ' &&
		(prevClass == ClassBreakAfter ||
			(prevClass == ClassIdeographic && class != ClassBreakAfter) ||
			class == ClassBreakBefore ||
			(class == ClassIdeographic && prevClass != ClassBreakBefore))
}

// ComputeLineBreaks computes the wrap points for one line from scratch.
// It returns nil when wrapping is disabled, the line has at most one code
// unit, or the whole line fits within the wrapping column.
func ComputeLineBreaks(classifier *Classifier, line string, opts Options) *BreakResult {
	return computeLineBreaks(classifier, encodeUnits(line), opts, nil, nil)
}

func computeLineBreaks(classifier *Classifier, units []uint16, opts Options, offsets []int, columns []float64) *BreakResult {
	firstBreakColumn := opts.WrappingColumn
	if firstBreakColumn == -1 {
		return nil
	}
	length := len(units)
	if length <= 1 {
		return nil
	}

	tabSize := opts.TabSize
	fullWidthColumns := opts.ColumnsForFullWidthChar
	isFullWidth := classifier.IsFullWidth
	keepAll := opts.WordBreak == WordBreakKeepAll

	wrappedTextIndentLength := wrappedIndentWidth(units, tabSize, firstBreakColumn, fullWidthColumns, opts.WrappingIndent)
	wrappedLineBreakColumn := float64(firstBreakColumn - wrappedTextIndentLength)

	offsets = offsets[:0]
	columns = columns[:0]
	breakOffset := 0
	breakColumn := 0.0

	breakingColumn := float64(firstBreakColumn)
	prevUnit := units[0]
	prevClass := classifier.Classify(prevUnit)
	visibleColumn := charWidth(prevUnit, 0, tabSize, fullWidthColumns, isFullWidth)

	startOffset := 1
	if isHighSurrogate(prevUnit) {
		// A surrogate pair is a single unit of width 2; never broken.
		visibleColumn++
		prevUnit = units[1]
		prevClass = classifier.Classify(prevUnit)
		startOffset = 2
	}

	for i := startOffset; i < length; i++ {
		charStartOffset := i
		unit := units[i]
		var class CharacterClass
		var width float64

		if isHighSurrogate(unit) {
			i++
			class = ClassNone
			width = 2
		} else {
			class = classifier.Classify(unit)
			width = charWidth(unit, visibleColumn, tabSize, fullWidthColumns, isFullWidth)
		}

		if canBreak(prevUnit, prevClass, unit, class) &&
			(!keepAll || (prevClass != ClassIdeographic && class != ClassIdeographic)) {
			breakOffset = charStartOffset
			breakColumn = visibleColumn
		}

		visibleColumn += width

		// Would adding the character at i cross the breaking column?
		if visibleColumn > breakingColumn {
			if breakOffset == 0 || visibleColumn-breakColumn > wrappedLineBreakColumn {
				// No usable candidate, or the candidate is so far back that
				// breaking there leaves an oversized segment: force a break
				// right here.
				breakOffset = charStartOffset
				breakColumn = visibleColumn - width
			}

			offsets = append(offsets, breakOffset)
			columns = append(columns, breakColumn)
			breakingColumn = breakColumn + wrappedLineBreakColumn
			breakOffset = 0
		}

		prevUnit = unit
		prevClass = class
	}

	if len(offsets) == 0 {
		return nil
	}

	// Close with the line's own end.
	offsets = append(offsets, length)
	columns = append(columns, visibleColumn)

	return &BreakResult{
		BreakOffsets:              offsets,
		BreakOffsetsVisibleColumn: columns,
		WrappedTextIndentLength:   wrappedTextIndentLength,
	}
}

// WrapText soft-wraps every line of text, joining the wrapped segments with
// newlines and indenting continuation lines per the indent policy. Lines that
// fit pass through unchanged.
func WrapText(classifier *Classifier, text string, opts Options) string {
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		result := ComputeLineBreaks(classifier, line, opts)
		if result == nil {
			b.WriteString(line)
			continue
		}
		indent := strings.Repeat(" ", result.WrappedTextIndentLength)
		for j, segment := range result.Segments(line) {
			if j > 0 {
				b.WriteByte('\n')
				b.WriteString(indent)
			}
			b.WriteString(segment)
		}
	}
	return b.String()
}
