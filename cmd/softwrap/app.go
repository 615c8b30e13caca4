package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/JackWReid/softwrap"
	"github.com/JackWReid/softwrap/internal/terminal"
	"github.com/mattn/go-runewidth"
)

// minLiveColumn is the narrowest wrapping column the viewer allows; anything
// smaller degenerates with full-width characters.
const minLiveColumn = 4

// App is the full-screen viewer. It keeps the previous frame's break results
// so every resize re-wraps incrementally instead of from scratch.
type App struct {
	classifier *softwrap.Classifier
	opts       softwrap.Options
	lines      []string
	results    []*softwrap.BreakResult

	term    *terminal.Terminal
	display []displayRow
	scroll  int
	elapsed time.Duration
	quit    bool
	frame   strings.Builder
}

// displayRow is one visual row: a wrapped segment plus the indent it renders
// under when it continues a line.
type displayRow struct {
	text   string
	indent int
	cont   bool
}

func NewApp(classifier *softwrap.Classifier, opts softwrap.Options, lines []string) *App {
	return &App{
		classifier: classifier,
		opts:       opts,
		lines:      lines,
		results:    make([]*softwrap.BreakResult, len(lines)),
	}
}

func (a *App) Run() error {
	t, err := terminal.NewTerminal()
	if err != nil {
		return err
	}
	a.term = t
	defer t.Restore()

	if a.opts.WrappingColumn > t.Width() {
		a.opts.WrappingColumn = t.Width()
	}
	a.rewrap()
	a.render()

	for !a.quit {
		// Check for resize signal (non-blocking).
		select {
		case <-t.SigwinchChan():
			if t.Resize() {
				a.opts.WrappingColumn = t.Width()
				a.rewrap()
			}
			a.render()
			continue
		default:
		}

		key, err := t.ReadKey()
		if err != nil {
			return err
		}

		a.handleKey(key)
		if !a.quit {
			a.render()
		}
	}

	return nil
}

func (a *App) handleKey(key terminal.Key) {
	switch key.Type {
	case terminal.KeyEscape, terminal.KeyCtrlC:
		a.quit = true
	case terminal.KeyRune:
		switch key.Rune {
		case 'q':
			a.quit = true
		case 'j':
			a.scrollBy(1)
		case 'k':
			a.scrollBy(-1)
		case '+', '=':
			a.adjustColumn(1)
		case '-', '_':
			a.adjustColumn(-1)
		}
	case terminal.KeyDown:
		a.scrollBy(1)
	case terminal.KeyUp:
		a.scrollBy(-1)
	case terminal.KeyPgDn:
		a.scrollBy(a.pageSize())
	case terminal.KeyPgUp:
		a.scrollBy(-a.pageSize())
	case terminal.KeyHome:
		a.scroll = 0
	case terminal.KeyEnd:
		a.scroll = len(a.display) // clamped below
		a.scrollBy(0)
	}
}

// adjustColumn nudges the wrapping column, clamped to the terminal width.
func (a *App) adjustColumn(delta int) {
	col := a.opts.WrappingColumn + delta
	if col < minLiveColumn {
		col = minLiveColumn
	}
	if col > a.term.Width() {
		col = a.term.Width()
	}
	if col == a.opts.WrappingColumn {
		return
	}
	a.opts.WrappingColumn = col
	a.rewrap()
}

// rewrap recomputes every line's breaks, reusing the previous results as the
// starting guess, and rebuilds the display rows.
func (a *App) rewrap() {
	start := time.Now()
	computer := softwrap.NewComputer(a.classifier, a.opts)
	for i, line := range a.lines {
		computer.AddRequest(line, a.results[i])
	}
	a.results = computer.Finalize()
	a.elapsed = time.Since(start)

	a.display = a.display[:0]
	for i, line := range a.lines {
		result := a.results[i]
		if result == nil {
			a.display = append(a.display, displayRow{text: line})
			continue
		}
		for j, segment := range result.Segments(line) {
			a.display = append(a.display, displayRow{
				text:   segment,
				indent: result.WrappedTextIndentLength,
				cont:   j > 0,
			})
		}
	}
	a.scrollBy(0)
}

func (a *App) pageSize() int {
	return a.term.Height() - 1
}

func (a *App) scrollBy(delta int) {
	a.scroll += delta
	max := len(a.display) - a.pageSize()
	if a.scroll > max {
		a.scroll = max
	}
	if a.scroll < 0 {
		a.scroll = 0
	}
}

func (a *App) render() {
	a.frame.Reset()
	a.frame.WriteString("\x1b[2J\x1b[H")

	visible := a.pageSize()
	for i := 0; i < visible; i++ {
		idx := a.scroll + i
		a.frame.WriteString(fmt.Sprintf("\x1b[%d;1H", i+1))
		if idx >= len(a.display) {
			continue
		}
		row := a.display[idx]
		col := 0
		if row.cont && row.indent > 0 {
			a.frame.WriteString(strings.Repeat(" ", row.indent))
			col = row.indent
		}
		a.writeRow(row.text, col)
	}

	a.renderStatusBar()
	os.Stdout.WriteString(a.frame.String())
}

// writeRow writes one segment, expanding tabs against the viewer's own tab
// stops. Raw mode means the terminal's 8-column stops would disagree with the
// wrap computation otherwise.
func (a *App) writeRow(text string, col int) {
	for _, r := range text {
		if r == '\t' {
			pad := a.opts.TabSize - col%a.opts.TabSize
			a.frame.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		a.frame.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
}

func (a *App) renderStatusBar() {
	a.frame.WriteString(fmt.Sprintf("\x1b[%d;1H", a.term.Height()))
	// Reverse video for status bar.
	a.frame.WriteString("\x1b[7m")

	left := fmt.Sprintf(" col %d  tab %d  %s", a.opts.WrappingColumn, a.opts.TabSize, indentLabel(a.opts.WrappingIndent))
	if a.opts.WordBreak == softwrap.WordBreakKeepAll {
		left += "  keep-all"
	}
	right := fmt.Sprintf("%d rows  %s  +/- width  q quit ", len(a.display), formatElapsed(a.elapsed))

	leftRunes := []rune(left)
	rightRunes := []rune(right)
	total := a.term.Width()
	if len(leftRunes)+len(rightRunes) >= total {
		maxLeft := total - len(rightRunes) - 1
		if maxLeft < 0 {
			maxLeft = 0
		}
		if len(leftRunes) > maxLeft {
			leftRunes = leftRunes[:maxLeft]
		}
	}
	gap := total - len(leftRunes) - len(rightRunes)
	if gap < 0 {
		gap = 0
	}

	a.frame.WriteString(string(leftRunes))
	a.frame.WriteString(strings.Repeat(" ", gap))
	a.frame.WriteString(string(rightRunes))
	a.frame.WriteString("\x1b[0m")
}

func indentLabel(wi softwrap.WrappingIndent) string {
	switch wi {
	case softwrap.WrappingIndentSame:
		return "same-indent"
	case softwrap.WrappingIndentIndent:
		return "indent"
	case softwrap.WrappingIndentDeepIndent:
		return "deep-indent"
	}
	return "no-indent"
}

func formatElapsed(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
}
