package softwrap

import "math"

// RecomputeLineBreaks computes the wrap points for a line whose text is
// unchanged but whose wrapping parameters moved, using the previous result's
// break offsets as search anchors instead of rescanning from the left. The
// result is always a fresh value and always identical to what
// ComputeLineBreaks would produce; previous only affects how much of the line
// gets rescanned. A nil or empty previous falls back to the full scan, as
// does WordBreakKeepAll (the backward scan carries no keep-all rule).
func RecomputeLineBreaks(classifier *Classifier, previous *BreakResult, line string, opts Options) *BreakResult {
	return recomputeLineBreaks(classifier, previous, encodeUnits(line), opts, nil, nil)
}

func recomputeLineBreaks(classifier *Classifier, previous *BreakResult, units []uint16, opts Options, offsets []int, columns []float64) *BreakResult {
	if previous == nil || len(previous.BreakOffsets) == 0 || opts.WordBreak == WordBreakKeepAll {
		return computeLineBreaks(classifier, units, opts, offsets, columns)
	}
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

	prevOffsets := previous.BreakOffsets
	prevColumns := previous.BreakOffsetsVisibleColumn

	wrappedTextIndentLength := wrappedIndentWidth(units, tabSize, firstBreakColumn, fullWidthColumns, opts.WrappingIndent)
	wrappedLineBreakColumn := float64(firstBreakColumn - wrappedTextIndentLength)

	offsets = offsets[:0]
	columns = columns[:0]
	lastBreakOffset := 0
	lastBreakColumn := 0.0

	breakingColumn := float64(firstBreakColumn)
	prevCount := len(prevOffsets)
	prevIndex := 0

	// Position the anchor at the previous break whose visible column is
	// closest to the new target. Visible columns increase monotonically, so
	// a local search that stops when the distance stops improving finds it.
	bestDistance := math.Abs(prevColumns[prevIndex] - breakingColumn)
	for prevIndex+1 < prevCount {
		distance := math.Abs(prevColumns[prevIndex+1] - breakingColumn)
		if distance >= bestDistance {
			break
		}
		bestDistance = distance
		prevIndex++
	}

	for lastBreakOffset < length {
		// prevIndex can be -1 after retreating past a tab character.
		prevBreakOffset := 0
		prevBreakColumn := 0.0
		if prevIndex >= 0 && prevIndex < prevCount {
			prevBreakOffset = prevOffsets[prevIndex]
			prevBreakColumn = prevColumns[prevIndex]
		}
		if lastBreakOffset > prevBreakOffset {
			prevBreakOffset = lastBreakOffset
			prevBreakColumn = lastBreakColumn
		}

		breakOffset := 0
		breakColumn := 0.0
		forcedBreakOffset := 0
		forcedBreakColumn := 0.0

		if prevBreakColumn <= breakingColumn {
			// Forward scan from the anchor, as far right as fits.
			visibleColumn := prevBreakColumn
			var prevUnit uint16
			prevClass := ClassNone
			if prevBreakOffset > 0 {
				prevUnit = units[prevBreakOffset-1]
				prevClass = classifier.Classify(prevUnit)
			}
			entireLineFits := true
			for i := prevBreakOffset; i < length; i++ {
				charStartOffset := i
				unit := units[i]
				var class CharacterClass
				var width float64

				if isHighSurrogate(unit) {
					// A surrogate pair is a single unit of width 2; never broken.
					i++
					class = ClassNone
					width = 2
				} else {
					class = classifier.Classify(unit)
					width = charWidth(unit, visibleColumn, tabSize, fullWidthColumns, isFullWidth)
				}

				if charStartOffset > lastBreakOffset && canBreak(prevUnit, prevClass, unit, class) {
					breakOffset = charStartOffset
					breakColumn = visibleColumn
				}

				visibleColumn += width

				if visibleColumn > breakingColumn {
					// A break is needed at or before the character at i.
					if charStartOffset > lastBreakOffset {
						forcedBreakOffset = charStartOffset
						forcedBreakColumn = visibleColumn - width
					} else {
						// Must advance by at least one character.
						forcedBreakOffset = i + 1
						forcedBreakColumn = visibleColumn
					}

					if visibleColumn-breakColumn > wrappedLineBreakColumn {
						// The candidate is too far back to leave a sane segment.
						breakOffset = 0
					}

					entireLineFits = false
					break
				}

				prevUnit = unit
				prevClass = class
			}

			if entireLineFits {
				// The rest of the line fits: reuse the previous closing entry.
				if len(offsets) > 0 {
					offsets = append(offsets, prevOffsets[prevCount-1])
					columns = append(columns, prevColumns[prevCount-1])
				}
				break
			}
		}

		if breakOffset == 0 {
			// Backward scan from the anchor toward the last break.
			visibleColumn := prevBreakColumn
			var unit uint16
			class := ClassNone
			if prevBreakOffset < length {
				unit = units[prevBreakOffset]
				class = classifier.Classify(unit)
			}
			hitTab := false
			for i := prevBreakOffset - 1; i >= lastBreakOffset; i-- {
				charStartOffset := i + 1
				prevUnit := units[i]

				if prevUnit == '\t' {
					// A tab's width is ambiguous measured in reverse; must
					// retreat the anchor and go forwards instead.
					hitTab = true
					break
				}

				var prevClass CharacterClass
				var prevWidth float64

				if isLowSurrogate(prevUnit) {
					i--
					prevClass = ClassNone
					prevWidth = 2
				} else {
					prevClass = classifier.Classify(prevUnit)
					if isFullWidth(rune(prevUnit)) {
						prevWidth = fullWidthColumns
					} else {
						prevWidth = 1
					}
				}

				if visibleColumn <= breakingColumn {
					if forcedBreakOffset == 0 {
						forcedBreakOffset = charStartOffset
						forcedBreakColumn = visibleColumn
					}

					if visibleColumn <= breakingColumn-wrappedLineBreakColumn {
						// Went back more than a whole segment.
						break
					}

					if canBreak(prevUnit, prevClass, unit, class) {
						breakOffset = charStartOffset
						breakColumn = visibleColumn
						break
					}
				}

				visibleColumn -= prevWidth
				unit = prevUnit
				class = prevClass
			}

			if breakOffset != 0 {
				// Breaking here leaves the next segment only this much room;
				// when that is within a tab size, check whether the character
				// at the forced position would still not fit, in which case
				// the natural break just adds a needless line.
				remainingWidthOfNextLine := wrappedLineBreakColumn - (forcedBreakColumn - breakColumn)
				if remainingWidthOfNextLine <= float64(tabSize) && forcedBreakOffset < length {
					forcedUnit := units[forcedBreakOffset]
					var width float64
					if isHighSurrogate(forcedUnit) {
						width = 2
					} else {
						width = charWidth(forcedUnit, forcedBreakColumn, tabSize, fullWidthColumns, isFullWidth)
					}
					if remainingWidthOfNextLine-width < 0 {
						breakOffset = 0
					}
				}
			}

			if hitTab {
				prevIndex--
				continue
			}
		}

		if breakOffset == 0 {
			// No good natural break: take the forced one.
			breakOffset = forcedBreakOffset
			breakColumn = forcedBreakColumn
		}

		if breakOffset <= lastBreakOffset {
			// Guarantee forward progress of at least one character.
			unit := units[lastBreakOffset]
			if isHighSurrogate(unit) {
				breakOffset = lastBreakOffset + 2
				breakColumn = lastBreakColumn + 2
			} else {
				breakOffset = lastBreakOffset + 1
				breakColumn = lastBreakColumn + charWidth(unit, lastBreakColumn, tabSize, fullWidthColumns, isFullWidth)
			}
		}

		lastBreakOffset = breakOffset
		lastBreakColumn = breakColumn
		offsets = append(offsets, breakOffset)
		columns = append(columns, breakColumn)
		breakingColumn = breakColumn + wrappedLineBreakColumn

		for prevIndex < 0 || (prevIndex < prevCount && prevColumns[prevIndex] < breakColumn) {
			prevIndex++
		}

		if prevIndex < prevCount {
			// Re-anchor on the previous break closest to the next target.
			bestDistance = math.Abs(prevColumns[prevIndex] - breakingColumn)
			for prevIndex+1 < prevCount {
				distance := math.Abs(prevColumns[prevIndex+1] - breakingColumn)
				if distance >= bestDistance {
					break
				}
				bestDistance = distance
				prevIndex++
			}
		}
	}

	if len(offsets) == 0 {
		return nil
	}
	return &BreakResult{
		BreakOffsets:              offsets,
		BreakOffsetsVisibleColumn: columns,
		WrappedTextIndentLength:   wrappedTextIndentLength,
	}
}
