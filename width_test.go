package softwrap

import "testing"

func TestTabWidth(t *testing.T) {
	cases := []struct {
		col  float64
		want float64
	}{
		{0, 4},
		{1, 3},
		{3, 1},
		{4, 4},
		{5, 3},
		{11, 1},
	}
	for _, tc := range cases {
		if got := tabWidth(tc.col, 4); got != tc.want {
			t.Errorf("tabWidth(%v, 4): got %v, want %v", tc.col, got, tc.want)
		}
	}
}

func TestCharWidth(t *testing.T) {
	isFW := DefaultIsFullWidth

	if got := charWidth('a', 0, 4, 2, isFW); got != 1 {
		t.Errorf("'a': got %v, want 1", got)
	}
	if got := charWidth('\t', 2, 4, 2, isFW); got != 2 {
		t.Errorf("tab at column 2: got %v, want 2", got)
	}
	if got := charWidth('\t', 4, 4, 2, isFW); got != 4 {
		t.Errorf("tab at a tab stop: got %v, want 4", got)
	}
	if got := charWidth(0x6F22, 0, 4, 2, isFW); got != 2 {
		t.Errorf("漢: got %v, want 2", got)
	}
	// Control characters count as full-width, standing in for their
	// substitution glyph.
	if got := charWidth(0x01, 0, 4, 2, isFW); got != 2 {
		t.Errorf("control char: got %v, want 2", got)
	}
	if got := charWidth(0x01, 0, 4, 1.5, isFW); got != 1.5 {
		t.Errorf("control char at 1.5: got %v", got)
	}
}

func TestWrappedIndentWidthPolicies(t *testing.T) {
	units := encodeUnits("  x")

	if got := wrappedIndentWidth(units, 4, 40, 2, WrappingIndentNone); got != 0 {
		t.Errorf("none: got %d, want 0", got)
	}
	if got := wrappedIndentWidth(units, 4, 40, 2, WrappingIndentSame); got != 2 {
		t.Errorf("same: got %d, want 2", got)
	}
	// One extra tab stop from column 2 lands on 4.
	if got := wrappedIndentWidth(units, 4, 40, 2, WrappingIndentIndent); got != 4 {
		t.Errorf("indent: got %d, want 4", got)
	}
	if got := wrappedIndentWidth(units, 4, 40, 2, WrappingIndentDeepIndent); got != 8 {
		t.Errorf("deep indent: got %d, want 8", got)
	}
}

func TestWrappedIndentWidthTabs(t *testing.T) {
	units := encodeUnits("\t\tx")

	if got := wrappedIndentWidth(units, 4, 40, 2, WrappingIndentSame); got != 8 {
		t.Errorf("same: got %d, want 8", got)
	}
	if got := wrappedIndentWidth(units, 4, 40, 2, WrappingIndentIndent); got != 12 {
		t.Errorf("indent: got %d, want 12", got)
	}
	if got := wrappedIndentWidth(units, 4, 40, 2, WrappingIndentDeepIndent); got != 16 {
		t.Errorf("deep indent: got %d, want 16", got)
	}
}

func TestWrappedIndentWidthResetWhenTooWide(t *testing.T) {
	units := encodeUnits("  x")

	// Indent 4 plus a full-width character meets the break column: collapse
	// to zero so continuation lines still fit something.
	if got := wrappedIndentWidth(units, 4, 4, 2, WrappingIndentIndent); got != 0 {
		t.Errorf("reset: got %d, want 0", got)
	}
	if got := wrappedIndentWidth(units, 4, 6, 2, WrappingIndentIndent); got != 0 {
		t.Errorf("reset at boundary: got %d, want 0", got)
	}
	if got := wrappedIndentWidth(units, 4, 7, 2, WrappingIndentIndent); got != 4 {
		t.Errorf("kept: got %d, want 4", got)
	}
}

func TestWrappedIndentWidthAllWhitespace(t *testing.T) {
	if got := wrappedIndentWidth(encodeUnits("    "), 4, 40, 2, WrappingIndentSame); got != 0 {
		t.Errorf("all-whitespace line: got %d, want 0", got)
	}
	if got := wrappedIndentWidth(nil, 4, 40, 2, WrappingIndentSame); got != 0 {
		t.Errorf("empty line: got %d, want 0", got)
	}
}

func TestSurrogateHelpers(t *testing.T) {
	// 😀 is U+1F600: high surrogate 0xD83D, low surrogate 0xDE00.
	units := encodeUnits("😀")
	if len(units) != 2 {
		t.Fatalf("expected 2 code units, got %d", len(units))
	}
	if !isHighSurrogate(units[0]) || isLowSurrogate(units[0]) {
		t.Errorf("units[0] = %#x misclassified", units[0])
	}
	if !isLowSurrogate(units[1]) || isHighSurrogate(units[1]) {
		t.Errorf("units[1] = %#x misclassified", units[1])
	}
	if isHighSurrogate('a') || isLowSurrogate('a') {
		t.Errorf("'a' misclassified as surrogate")
	}
}
