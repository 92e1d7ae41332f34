// Package libdiff renders line diffs of text documents.
package libdiff

import (
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const (
	InsertPrefix = "+ "
	DeletePrefix = "- "
	EqualPrefix  = "  "
)

// Colors colours diff lines. A nil func leaves its lines plain.
type Colors struct {
	Insert, Delete, Equal func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Insert: color.RGB(8, 196, 16).SprintfFunc(),
		Delete: color.RGB(196, 32, 32).SprintfFunc(),
		Equal:  color.RGB(96, 96, 96).SprintfFunc(),
	}
}

// Lines returns the line diff from from to to, one prefixed line per
// input line. It is empty when from and to are equal. colors may be nil.
func Lines(from, to string, colors *Colors) string {
	if from == to {
		return ""
	}
	if colors == nil {
		colors = &Colors{}
	}
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	buf := &strings.Builder{}
	for _, diff := range diffs {
		prefix, fn := EqualPrefix, colors.Equal
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix, fn = InsertPrefix, colors.Insert
		case diffpatch.DiffDelete:
			prefix, fn = DeletePrefix, colors.Delete
		}
		for _, line := range splitLines(diff.Text) {
			line = prefix + line
			if fn != nil {
				line = fn("%s", line)
			}
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

// Stat counts the inserted and deleted lines between from and to.
func Stat(from, to string) (ins, del int) {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	for _, diff := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines) {
		switch diff.Type {
		case diffpatch.DiffInsert:
			ins += len(splitLines(diff.Text))
		case diffpatch.DiffDelete:
			del += len(splitLines(diff.Text))
		}
	}
	return ins, del
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
