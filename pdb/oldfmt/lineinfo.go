// An error implementation that saves the source, the line number,
// the line and the column we were unhappy with.
// A LineInfo carries one line while it is being worked on. The first
// call to SetError wins. Later calls are quietly dropped, so one can
// check a line in several places and look at the result once.
package oldfmt

import (
	"strconv"
	"strings"
)

// LineError is what we return when a line cannot be used.
// Col is 1-based, like the columns in the format description.
type LineError struct {
	Source string
	N      int // line number, from 1
	Line   string
	Col    int
	Msg    string
}

// Error puts the source, line number, the line itself, a caret under
// the offending column and the description into one string.
func (e *LineError) Error() string {
	var b strings.Builder
	b.WriteString(`"` + e.Source + `", line ` + strconv.Itoa(e.N) + ":\n")
	b.WriteString(e.Line + "\n")
	if e.Col > 1 {
		b.WriteString(strings.Repeat(" ", e.Col-1))
	}
	b.WriteString("^\n")
	b.WriteString(e.Msg)
	return b.String()
}

// LineInfo is one input line plus room for an error.
type LineInfo struct {
	Source string
	N      int
	Data   string
	err    *LineError // nil means no error. Written once.
}

// SetError stores an error for this line, unless there already is one.
// A column less than 1 is stored as 1.
func (li *LineInfo) SetError(col int, msg string) {
	if li.err != nil {
		return
	}
	if col < 1 {
		col = 1
	}
	li.err = &LineError{
		Source: li.Source,
		N:      li.N,
		Line:   li.Data,
		Col:    col,
		Msg:    msg,
	}
}

// ErrorOccurred says if SetError has been called
func (li *LineInfo) ErrorOccurred() bool { return li.err != nil }

// Err returns the stored error or nil. We do not return a nil
// *LineError wrapped in an error interface.
func (li *LineInfo) Err() error {
	if li.err == nil {
		return nil
	}
	return li.err
}

// FormatMessage renders the error. Without an error we just give
// the source, line number and the line.
func (li *LineInfo) FormatMessage() string {
	if li.err != nil {
		return li.err.Error()
	}
	return `"` + li.Source + `", line ` + strconv.Itoa(li.N) + ":\n" + li.Data
}

// IsBlank is true if there is nothing but spaces on the line.
func (li *LineInfo) IsBlank() bool {
	for i := 0; i < len(li.Data); i++ {
		if li.Data[i] != ' ' {
			return false
		}
	}
	return true
}

// StripData returns the line from start (counting from zero) up to the
// last character which is not a space.
func (li *LineInfo) StripData(start int) string {
	if start < 0 {
		start = 0
	}
	sz := len(li.Data)
	for sz > start && li.Data[sz-1] == ' ' {
		sz--
	}
	if sz <= start {
		return ""
	}
	return li.Data[start:sz]
}
