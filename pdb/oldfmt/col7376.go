// Columns 73-76.
// In old files, every record had the four character PDB ID code in
// columns 73-76. Today these columns hold the segment identifier.
// We cannot tell from one line, so we look at the whole file once
// before reading atoms.
// The rule is
//  - exactly one non-blank value is seen on ATOM/HETATM lines,
//  - it is on every ATOM/HETATM line and
//  - it is frequent, either on atom lines or on the other records.
// Real segids are usually short codes that change along the file.

package oldfmt

import (
	"fmt"
)

const (
	DfltThresholdAtom  = 1000 // atom lines with the same value in 73-76
	DfltThresholdOther = 100  // other records with the same value
)

// Col7376 is what we decide about columns 73-76. It is made once
// and not changed.
type Col7376 struct {
	IsOldStyle  bool
	NAtomHetatm int            // number of ATOM and HETATM lines
	Freq        map[string]int // non-blank values on ATOM/HETATM lines
	FreqOther   map[string]int // non-blank values on all other lines
	Finding     string         // explanation if IsOldStyle
}

// isRecordType compares the first six columns of a line with a
// record name. No trimming, no case folding. Short lines are padded.
func isRecordType(name, line string) bool {
	return recordKey(line) == name
}

// col7376 gets the four columns, blank padded.
func col7376(line string) string {
	var b [4]byte
	li := LineInfo{Data: line}
	extract(&li, segidCol, segidLen, b[:])
	return string(b[:])
}

// EvaluateCol7376 looks at every line and decides if columns 73-76 are
// an old style ID code. Thresholds below 1 are treated as 1.
// No atom lines means not old style.
func EvaluateCol7376(lines []string, thrAtom, thrOther int) Col7376 {
	c := Col7376{
		Freq:      make(map[string]int),
		FreqOther: make(map[string]int),
	}
	if thrAtom < 1 {
		thrAtom = 1
	}
	if thrOther < 1 {
		thrOther = 1
	}
	for _, line := range lines {
		isAtom := isRecordType("ATOM  ", line) || isRecordType("HETATM", line)
		if isAtom {
			c.NAtomHetatm++
		}
		if len(line) <= segidCol {
			continue
		}
		w := col7376(line)
		if w == "    " {
			continue
		}
		if isAtom {
			c.Freq[w]++
		} else {
			c.FreqOther[w]++
		}
	}
	if c.NAtomHetatm == 0 || len(c.Freq) != 1 {
		return c
	}
	for w, n := range c.Freq { // only one
		if n != c.NAtomHetatm {
			break
		}
		if n >= thrAtom || c.FreqOther[w] >= thrOther {
			c.IsOldStyle = true
			c.Finding = fmt.Sprintf("columns 73-76 hold %q on %d ATOM/HETATM records: treated as blank", w, n)
		}
	}
	return c
}
