package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JackWReid/softwrap"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

var Version = "dev"

func main() {
	width := flag.Int("w", 0, "wrapping column (0: terminal width, or 80 when stdout is not a terminal)")
	tab := flag.Int("tab", 4, "tab size in columns")
	indent := flag.String("indent", "none", "continuation indent: none, same, indent, deepindent")
	keepAll := flag.Bool("keepall", false, "keep CJK runs whole, breaking only at whitespace and punctuation")
	measure := flag.Bool("measure", false, "print break offsets and display widths instead of wrapped text")
	live := flag.Bool("live", false, "full-screen viewer that re-wraps on resize")
	flag.Parse()

	if err := run(*width, *tab, *indent, *keepAll, *measure, *live, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "softwrap: %v\n", err)
		os.Exit(1)
	}
}

func run(width, tab int, indentName string, keepAll, measure, live bool, files []string) error {
	indent, err := parseIndent(indentName)
	if err != nil {
		return err
	}
	if width <= 0 {
		width = defaultWidth()
	}

	opts := softwrap.Options{
		TabSize:                 tab,
		WrappingColumn:          width,
		ColumnsForFullWidthChar: 2,
		WrappingIndent:          indent,
	}
	if keepAll {
		opts.WordBreak = softwrap.WordBreakKeepAll
	}
	classifier := softwrap.NewClassifier(softwrap.DefaultBreakBefore, softwrap.DefaultBreakAfter)

	text, err := readInput(files)
	if err != nil {
		return err
	}

	if live {
		return NewApp(classifier, opts, strings.Split(text, "\n")).Run()
	}
	if measure {
		printMeasure(os.Stdout, classifier, strings.Split(text, "\n"), opts)
		return nil
	}
	os.Stdout.WriteString(softwrap.WrapText(classifier, text, opts))
	return nil
}

func parseIndent(name string) (softwrap.WrappingIndent, error) {
	switch name {
	case "none":
		return softwrap.WrappingIndentNone, nil
	case "same":
		return softwrap.WrappingIndentSame, nil
	case "indent":
		return softwrap.WrappingIndentIndent, nil
	case "deepindent":
		return softwrap.WrappingIndentDeepIndent, nil
	}
	return 0, fmt.Errorf("unknown indent mode %q", name)
}

func defaultWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// readInput concatenates the named files, or reads stdin when none are given.
func readInput(files []string) (string, error) {
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	var b strings.Builder
	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			return "", err
		}
		b.Write(data)
	}
	return b.String(), nil
}

// printMeasure reports, per input line, where it wraps and how wide each
// wrapped segment renders. Widths are grapheme-cluster aware, so emoji
// sequences count the way terminals draw them.
func printMeasure(w io.Writer, classifier *softwrap.Classifier, lines []string, opts softwrap.Options) {
	for n, line := range lines {
		result := softwrap.ComputeLineBreaks(classifier, line, opts)
		if result == nil {
			fmt.Fprintf(w, "%d: fits (display width %d)\n", n+1, uniseg.StringWidth(line))
			continue
		}
		fmt.Fprintf(w, "%d: %d segments, continuation indent %d\n", n+1, len(result.BreakOffsets), result.WrappedTextIndentLength)
		start := 0
		for i, segment := range result.Segments(line) {
			fmt.Fprintf(w, "  units %d..%d  col %g  display width %d  %q\n",
				start, result.BreakOffsets[i], result.BreakOffsetsVisibleColumn[i], uniseg.StringWidth(segment), segment)
			start = result.BreakOffsets[i]
		}
	}
}
