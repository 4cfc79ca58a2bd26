// Package emit provides the text-emission mechanics shared by code
// generators: an indentation-aware line writer with comment helpers.
package emit

import (
	"bytes"
	"fmt"
	"strings"
)

// Writer accumulates generated source text line by line.
type Writer struct {
	buf       *bytes.Buffer
	indent    int
	indentStr string
}

// NewWriter creates a writer using indentStr for each indentation level.
func NewWriter(indentStr string) *Writer {
	return &Writer{
		buf:       &bytes.Buffer{},
		indentStr: indentStr,
	}
}

// Indent increases the indentation level for subsequent lines.
func (w *Writer) Indent() {
	w.indent++
}

// Dedent decreases the indentation level.
func (w *Writer) Dedent() {
	if w.indent > 0 {
		w.indent--
	}
}

// Line writes a formatted line with the current indentation. An empty format
// writes a blank line with no indentation.
func (w *Writer) Line(format string, args ...interface{}) {
	if format == "" {
		w.buf.WriteString("\n")
		return
	}

	for i := 0; i < w.indent; i++ {
		w.buf.WriteString(w.indentStr)
	}

	if len(args) > 0 {
		w.buf.WriteString(fmt.Sprintf(format, args...))
	} else {
		w.buf.WriteString(format)
	}
	w.buf.WriteString("\n")
}

// Comment writes each line of text as a line comment. Blank lines become
// bare "//" markers so comment blocks stay visually contiguous.
func (w *Writer) Comment(text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			w.Line("//")
		} else {
			w.Line("// %s", line)
		}
	}
}

// String returns everything written so far.
func (w *Writer) String() string {
	return w.buf.String()
}
