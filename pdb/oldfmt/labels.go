// Labels of an atom, squashed into 19 bytes.
// From the format description,
//  7 - 11  Integer       serial   Atom serial number.
// 13 - 16  Atom          name     Atom name.
// 17       Character     altLoc   Alternate location indicator.
// 18 - 20  Residue name  resName  Residue name.
// 21 - 22                chainID  Chain identifier.
// 23 - 26  Integer       resSeq   Residue sequence number.
// 27       AChar         iCode    Code for insertion of residues.
// 73 - 76  LString(4)    segID    Segment identifier, left-justified.
// Strictly, the chain identifier is only column 22. Column 21 is
// nearly always blank and we take two-character chains if it is not.

package oldfmt

// Offsets and widths within AtomLabels. confid and resid overlap
// their neighbours.
const (
	nameOff, nameLen       = 0, 4
	altlocOff, altlocLen   = 4, 1
	resnameOff, resnameLen = 5, 3
	chainOff, chainLen     = 8, 2
	resseqOff, resseqLen   = 10, 4
	icodeOff, icodeLen     = 14, 1
	segidOff, segidLen     = 15, 4
	confidOff, confidLen   = 4, 4  // altloc + resname
	residOff, residLen     = 10, 5 // resseq + icode

	labelsSize = nameLen + altlocLen + resnameLen + chainLen + resseqLen + icodeLen + segidLen
)

// Where each field starts in a line, counting from zero.
const (
	nameCol    = 12
	altlocCol  = 16
	resnameCol = 17
	chainCol   = 20
	resseqCol  = 22
	icodeCol   = 26
	segidCol   = 72
)

// AtomLabels is the fixed size block of text labels for one atom.
// Every field is blank padded, never shorter than its width.
type AtomLabels [labelsSize]byte

// NewAtomLabels pulls the labels out of an ATOM or HETATM line.
// If oldStyle is set, columns 73-76 hold an ID code and not a segid,
// so the segid is left blank.
func NewAtomLabels(li *LineInfo, oldStyle bool) (lbl AtomLabels) {
	extract(li, nameCol, nameLen, lbl[nameOff:])
	extract(li, altlocCol, altlocLen, lbl[altlocOff:])
	extract(li, resnameCol, resnameLen, lbl[resnameOff:])
	extract(li, chainCol, chainLen, lbl[chainOff:])
	extract(li, resseqCol, resseqLen, lbl[resseqOff:])
	extract(li, icodeCol, icodeLen, lbl[icodeOff:])
	if oldStyle {
		blank(lbl[segidOff : segidOff+segidLen])
	} else {
		extract(li, segidCol, segidLen, lbl[segidOff:])
	}
	return lbl
}

func blank(b []byte) {
	for i := range b {
		b[i] = ' '
	}
}

// extract copies n bytes starting at column iBegin of a line into
// target. If the line is too short, the rest of target is filled with
// blanks. We never look beyond iBegin + n.
func extract(li *LineInfo, iBegin, n int, target []byte) {
	j := 0
	for i := iBegin; i < len(li.Data) && j < n; i++ {
		target[j] = li.Data[i]
		j++
	}
	for ; j < n; j++ {
		target[j] = ' '
	}
}

// areEqual compares n columns of a line from iBegin with target,
// treating missing columns as blanks.
// It returns -1 if everything is the same, otherwise the
// (zero-based) line column of the first difference.
func areEqual(li *LineInfo, iBegin, n int, target []byte) int {
	for j := 0; j < n; j++ {
		c := byte(' ')
		if i := iBegin + j; i < len(li.Data) {
			c = li.Data[i]
		}
		if c != target[j] {
			return iBegin + j
		}
	}
	return -1
}

func (lbl *AtomLabels) field(off, n int) string { return string(lbl[off : off+n]) }

func (lbl *AtomLabels) Name() string { return lbl.field(nameOff, nameLen) }
func (lbl *AtomLabels) Altloc() string { return lbl.field(altlocOff, altlocLen) }
func (lbl *AtomLabels) Resname() string { return lbl.field(resnameOff, resnameLen) }
func (lbl *AtomLabels) Confid() string { return lbl.field(confidOff, confidLen) }
func (lbl *AtomLabels) Resseq() string { return lbl.field(resseqOff, resseqLen) }
func (lbl *AtomLabels) Icode() string { return lbl.field(icodeOff, icodeLen) }
func (lbl *AtomLabels) Resid() string { return lbl.field(residOff, residLen) }
func (lbl *AtomLabels) Segid() string { return lbl.field(segidOff, segidLen) }

// ChainRaw is both columns 21 and 22 as they were in the file.
func (lbl *AtomLabels) ChainRaw() string { return lbl.field(chainOff, chainLen) }

// Chain is the chain identifier. If the first of the two columns is
// blank, we only return the second.
func (lbl *AtomLabels) Chain() string {
	if lbl[chainOff] == ' ' {
		return lbl.field(chainOff+1, 1)
	}
	return lbl.ChainRaw()
}

// PdbFormat gives the labels back the way they look in columns 13-27,
// followed by the segid if there is one.
func (lbl *AtomLabels) PdbFormat() string {
	s := `"` + string(lbl[:segidOff]) + `"`
	if seg := lbl.Segid(); seg != "    " {
		s += ` segid="` + seg + `"`
	}
	return s
}

// sameResid is true if two atoms have the same residue number and
// insertion code. The chain is not looked at.
func sameResid(a, b *AtomLabels) bool {
	return string(a[residOff:residOff+residLen]) == string(b[residOff:residOff+residLen])
}
