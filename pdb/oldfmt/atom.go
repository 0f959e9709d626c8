// Numbers from ATOM, HETATM, ANISOU, SIGATM and SIGUIJ records.
// 31 - 38  Real(8.3)  x
// 39 - 46  Real(8.3)  y
// 47 - 54  Real(8.3)  z
// 55 - 60  Real(6.2)  occupancy
// 61 - 66  Real(6.2)  tempFactor
// 77 - 78  LString(2) element
// 79 - 80  LString(2) charge
// ANISOU and SIGUIJ have six integers in 29-35, 36-42, ... 64-70.
// A blank number is read as zero. Anything else that does not
// parse is an error for the column where the field starts.

package oldfmt

import (
	"strconv"
	"strings"

	"github.com/andrew-torda/pdbinput/pdb/cmmn"
	"github.com/andrew-torda/pdbinput/pdb/hierarchy"
)

const (
	serialCol, serialLen   = 6, 5
	xCol, xyzLen           = 30, 8
	occCol, occLen         = 54, 6
	bCol, bLen             = 60, 6
	elementCol, elementLen = 76, 2
	chargeCol, chargeLen   = 78, 2
	uijCol, uijLen         = 28, 7
)

// cols returns n columns from iBegin, blank padded.
func cols(li *LineInfo, iBegin, n int) string {
	b := make([]byte, n)
	extract(li, iBegin, n, b)
	return string(b)
}

// getFloat reads a float from a fixed field. If an error has already
// been set on the line, we do nothing. This lets us call it several
// times in a row and check the line once.
func getFloat(li *LineInfo, iBegin, n int, what string) float32 {
	if li.ErrorOccurred() {
		return 0
	}
	s := strings.TrimSpace(cols(li, iBegin, n))
	if s == "" {
		return 0
	}
	x, err := strconv.ParseFloat(s, 32)
	if err != nil {
		li.SetError(iBegin+1, "not a floating-point number: "+what)
		return 0
	}
	return float32(x)
}

// getInt is like getFloat, but for integer fields
func getInt(li *LineInfo, iBegin, n int, what string) int {
	if li.ErrorOccurred() {
		return 0
	}
	s := strings.TrimSpace(cols(li, iBegin, n))
	if s == "" {
		return 0
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		li.SetError(iBegin+1, "not an integer: "+what)
		return 0
	}
	return i
}

// getXyz reads three consecutive 8 character fields starting at iBegin
func getXyz(li *LineInfo, iBegin int, what string) cmmn.Xyz {
	return cmmn.Xyz{
		X: getFloat(li, iBegin, xyzLen, what+" x"),
		Y: getFloat(li, iBegin+xyzLen, xyzLen, what+" y"),
		Z: getFloat(li, iBegin+2*xyzLen, xyzLen, what+" z"),
	}
}

// getUij reads the six integers of ANISOU or SIGUIJ records.
func getUij(li *LineInfo, what string) (u cmmn.Uij) {
	for i := range u {
		n := getInt(li, uijCol+i*uijLen, uijLen, what)
		u[i] = float32(n) * cmmn.AnisouFactor
	}
	return u
}

// newAtom makes the atom entry for an ATOM or HETATM line.
// Check li.ErrorOccurred afterwards.
func newAtom(li *LineInfo, lbl *AtomLabels, hetero bool, i int) hierarchy.Atom {
	a := hierarchy.Atom{
		Name:    lbl.Name(),
		Altloc:  lbl.Altloc(),
		Resname: lbl.Resname(),
		Chain:   lbl.Chain(),
		Resseq:  lbl.Resseq(),
		Icode:   lbl.Icode(),
		Segid:   lbl.Segid(),
		Element: cols(li, elementCol, elementLen),
		Charge:  cols(li, chargeCol, chargeLen),
		Hetero:  hetero,
		I:       i,
	}
	a.Xyz = getXyz(li, xCol, "coordinate")
	a.Occ = getFloat(li, occCol, occLen, "occupancy")
	a.B = getFloat(li, bCol, bLen, "B-factor")
	return a
}

// addExtra puts the contents of an ANISOU, SIGATM or SIGUIJ record
// into the atom it belongs to.
func addExtra(li *LineInfo, rt RecordType, a *hierarchy.Atom) {
	switch rt {
	case recAnisou:
		a.Uij = getUij(li, "ANISOU")
		a.HasUij = true
	case recSiguij:
		a.SigUij = getUij(li, "SIGUIJ")
		a.HasSigUij = true
	case recSigatm:
		a.SigXyz = getXyz(li, xCol, "sigma")
		a.SigOcc = getFloat(li, occCol, occLen, "sigma occupancy")
		a.SigB = getFloat(li, bCol, bLen, "sigma B-factor")
		a.HasSigXyz = true
	}
}

// checkEquivalence makes sure an ANISOU, SIGATM or SIGUIJ line has
// the same serial number and labels as the ATOM or HETATM line that
// came before it. Columns 7-27 and 73-80 have to agree. In old style
// files 73-76 are not compared.
func checkEquivalence(li, atomLine *LineInfo, oldStyle bool) {
	type span struct{ begin, n int }
	spans := []span{{serialCol, 21}, {segidCol, 8}}
	if oldStyle {
		spans[1] = span{elementCol, 4}
	}
	for _, sp := range spans {
		ref := []byte(cols(atomLine, sp.begin, sp.n))
		if i := areEqual(li, sp.begin, sp.n, ref); i >= 0 {
			li.SetError(i+1, strings.TrimSpace(recordKey(li.Data))+
				" record is not compatible with the preceding ATOM or HETATM record")
			return
		}
	}
}
