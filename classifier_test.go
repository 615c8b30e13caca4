package softwrap

import "testing"

func TestClassifyDefaults(t *testing.T) {
	c := NewClassifier(DefaultBreakBefore, DefaultBreakAfter)

	cases := []struct {
		unit uint16
		want CharacterClass
	}{
		{'a', ClassNone},
		{'0', ClassNone},
		{' ', ClassBreakAfter},
		{'\t', ClassBreakAfter},
		{'.', ClassBreakAfter},
		{',', ClassBreakAfter},
		{')', ClassBreakAfter},
		{'}', ClassBreakAfter},
		{'(', ClassBreakBefore},
		{'[', ClassBreakBefore},
		{'{', ClassBreakBefore},
		{0x3002, ClassBreakAfter}, // 。 ideographic full stop
		{0x300C, ClassBreakBefore}, // 「 corner bracket
	}
	for _, tc := range cases {
		if got := c.Classify(tc.unit); got != tc.want {
			t.Errorf("Classify(%#x): got %d, want %d", tc.unit, got, tc.want)
		}
	}
}

func TestClassifyIdeographicRanges(t *testing.T) {
	c := NewClassifier(DefaultBreakBefore, DefaultBreakAfter)

	for _, unit := range []uint16{0x3042, 0x30A2, 0x3400, 0x4DBF, 0x4E00, 0x6F22, 0x9FFF} {
		if got := c.Classify(unit); got != ClassIdeographic {
			t.Errorf("Classify(%#x): got %d, want ClassIdeographic", unit, got)
		}
	}

	// Just outside the ranges.
	for _, unit := range []uint16{0x303F, 0x3100, 0x33FF, 0x4DC0, 0x4DFF, 0xA000} {
		if got := c.Classify(unit); got == ClassIdeographic {
			t.Errorf("Classify(%#x): unexpectedly ideographic", unit)
		}
	}
}

func TestClassifyRangeOverridesConfiguration(t *testing.T) {
	// The ideograph override wins even when the character appears in a
	// configured break set.
	c := NewClassifier("", "あ")
	if got := c.Classify(0x3042); got != ClassIdeographic {
		t.Errorf("configured あ: got %d, want ClassIdeographic", got)
	}
}

func TestClassifyCustomSets(t *testing.T) {
	c := NewClassifier("<", ">")
	if got := c.Classify('<'); got != ClassBreakBefore {
		t.Errorf("'<': got %d", got)
	}
	if got := c.Classify('>'); got != ClassBreakAfter {
		t.Errorf("'>': got %d", got)
	}
	if got := c.Classify('('); got != ClassNone {
		t.Errorf("'(' with custom sets: got %d, want ClassNone", got)
	}

	// A character in both sets ends up BreakAfter, since the second
	// assignment wins.
	both := NewClassifier("!", "!")
	if got := both.Classify('!'); got != ClassBreakAfter {
		t.Errorf("'!' in both sets: got %d, want ClassBreakAfter", got)
	}
}

func TestDefaultIsFullWidth(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'a', false},
		{' ', false},
		{'漢', true},
		{'あ', true},
		{'Ａ', true},  // fullwidth latin
		{'ｱ', false}, // halfwidth katakana
	}
	for _, tc := range cases {
		if got := DefaultIsFullWidth(tc.r); got != tc.want {
			t.Errorf("DefaultIsFullWidth(%q): got %v, want %v", tc.r, got, tc.want)
		}
	}
}
