// Package softwrap computes soft-wrap points for lines of monospace text.
//
// Given a line, a tab size, a wrapping column, a full-width column multiplier
// and an indent policy, it returns the code-unit offsets where the line must
// split so no rendered segment exceeds the column, honouring kinsoku shori
// rules for CJK text and never splitting surrogate pairs. When only the
// wrapping column changes, RecomputeLineBreaks reuses a previous result's
// offsets as search anchors to avoid rescanning the whole line; it always
// produces the same answer as a scan from scratch.
package softwrap
