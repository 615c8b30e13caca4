package softwrap

// Computer batches break computations for many lines under one set of
// wrapping parameters, recycling retired buffers between requests to keep
// steady-state re-wrapping (e.g. during a window resize) allocation-free.
//
// A Computer must not be used from more than one goroutine at a time. Callers
// that want to wrap lines in parallel should use ComputeLineBreaks and
// RecomputeLineBreaks directly; those never share state.
type Computer struct {
	classifier *Classifier
	opts       Options

	lines    []string
	previous []*BreakResult

	// Retired backing arrays, leased to the next recomputation and handed
	// off into its result.
	spareOffsets []int
	spareColumns []float64
}

// NewComputer returns a Computer for the given classifier and parameters.
func NewComputer(classifier *Classifier, opts Options) *Computer {
	return &Computer{classifier: classifier, opts: opts}
}

// AddRequest queues one line. previous may be nil; when non-nil it must be
// the result of an earlier computation for the same line, and the caller must
// not use it again: its buffers may be recycled into later results.
func (c *Computer) AddRequest(line string, previous *BreakResult) {
	c.lines = append(c.lines, line)
	c.previous = append(c.previous, previous)
}

// Finalize computes a result for every queued request, in order, and clears
// the queue. Entries are nil for lines that need no wrapping.
func (c *Computer) Finalize() []*BreakResult {
	results := make([]*BreakResult, len(c.lines))
	for i, line := range c.lines {
		units := encodeUnits(line)
		prev := c.previous[i]

		offsets, columns := c.spareOffsets, c.spareColumns
		var result *BreakResult
		if prev != nil {
			result = recomputeLineBreaks(c.classifier, prev, units, c.opts, offsets, columns)
		} else {
			result = computeLineBreaks(c.classifier, units, c.opts, offsets, columns)
		}
		if result != nil {
			// Backing arrays now belong to the result.
			c.spareOffsets, c.spareColumns = nil, nil
		}
		if prev != nil {
			// The caller retired prev; reclaim its buffers.
			c.spareOffsets = prev.BreakOffsets[:0]
			c.spareColumns = prev.BreakOffsetsVisibleColumn[:0]
		}
		results[i] = result
	}
	c.lines = c.lines[:0]
	c.previous = c.previous[:0]
	return results
}
