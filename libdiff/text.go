package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a line based diff. Op is empty for unchanged lines.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(from, to)
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	res := []Line{}
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != "" {
			return true
		}
	}
	return false
}

// Unified renders lines with a "-", "+" or " " marker each. With colorize,
// deleted lines are red and inserted ones green.
func Unified(lines []Line, colorize bool) string {
	var b strings.Builder
	for _, ln := range lines {
		var s string
		switch ln.Op {
		case Delete:
			s = "-" + ln.Text
			if colorize {
				s = color.RedString("%s", s)
			}
		case Insert:
			s = "+" + ln.Text
			if colorize {
				s = color.GreenString("%s", s)
			}
		default:
			s = " " + ln.Text
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}
