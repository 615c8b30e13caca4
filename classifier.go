package softwrap

import (
	"unicode/utf16"

	"github.com/mattn/go-runewidth"
)

// CharacterClass tags a code unit for break-point decisions.
type CharacterClass uint8

const (
	ClassNone        CharacterClass = iota
	ClassBreakBefore                // e.g. opening brackets: break before these is allowed
	ClassBreakAfter                 // e.g. spaces, closing punctuation: break after these is allowed
	ClassIdeographic                // CJK/Kana: break on either side, almost unconditionally
)

// Default break-character sets: opening brackets and currency attractors that
// a break may precede, and trailing punctuation (plus CJK forms and small
// kana) that a break may follow. Callers with different kinsoku tables pass
// their own strings to NewClassifier.
const (
	DefaultBreakBefore = "([{‘“〈《「『【〔（［｛｢£¥＄￡￥+＋"
	DefaultBreakAfter  = " \t})]?|/&.,;¢°′″‰℃、。｡､￠，．：；？！％・･ゝゞヽヾーァィゥェォッャュョヮヵヶぁぃぅぇぉっゃゅょゎゕゖㇰㇱㇲㇳㇴㇵㇶㇷㇸㇹㇺㇻㇼㇽㇾㇿ々〻ｧｨｩｪｫｬｭｮｯｰ\"’”〉》」』】〕）］｝｣"
)

// Classifier assigns a CharacterClass to every UTF-16 code unit. ASCII/Latin-1
// units use a flat table; everything else goes through the ideograph ranges
// and a sparse map.
type Classifier struct {
	// IsFullWidth reports whether a code point occupies two half-width cells
	// in a monospace grid. Defaults to a go-runewidth based predicate;
	// replace it before computing breaks if the host measures differently.
	IsFullWidth func(r rune) bool

	ascii [256]CharacterClass
	other map[uint16]CharacterClass
}

// NewClassifier builds a classifier from the two break-character sets.
// Every code unit in breakBefore is tagged ClassBreakBefore and every code
// unit in breakAfter is tagged ClassBreakAfter; assignment is independent per
// unit, so a character present in both strings ends up ClassBreakAfter.
func NewClassifier(breakBefore, breakAfter string) *Classifier {
	c := &Classifier{
		IsFullWidth: DefaultIsFullWidth,
		other:       make(map[uint16]CharacterClass),
	}
	c.setAll(breakBefore, ClassBreakBefore)
	c.setAll(breakAfter, ClassBreakAfter)
	return c
}

func (c *Classifier) setAll(chars string, class CharacterClass) {
	for _, unit := range utf16.Encode([]rune(chars)) {
		if unit < 256 {
			c.ascii[unit] = class
		} else {
			c.other[unit] = class
		}
	}
}

// Classify returns the class of a single UTF-16 code unit. Units ≥ 256 inside
// the Hiragana/Katakana, CJK Extension A, or CJK Unified ranges are always
// ClassIdeographic, regardless of the configured break sets.
func (c *Classifier) Classify(unit uint16) CharacterClass {
	if unit < 256 {
		return c.ascii[unit]
	}
	if (unit >= 0x3040 && unit <= 0x30FF) ||
		(unit >= 0x3400 && unit <= 0x4DBF) ||
		(unit >= 0x4E00 && unit <= 0x9FFF) {
		return ClassIdeographic
	}
	return c.other[unit]
}

// DefaultIsFullWidth is the stock full-width predicate, backed by
// go-runewidth's East Asian Width tables.
func DefaultIsFullWidth(r rune) bool {
	return runewidth.RuneWidth(r) == 2
}
