// Record types. The first six columns of a line say what it is.
// The set of names is fixed, so a switch does the job. Anything
// we do not know goes to the unknown section. That is not an error.

package oldfmt

// section says which bucket a record belongs in
type section byte

const (
	secUnknown section = iota
	secTitle
	secRemark
	secPrimaryStructure
	secHeterogen
	secSecondaryStructure
	secConnectivityAnnotation
	secMiscellaneousFeatures
	secCrystallographic
	secCoordinate // not a bucket. These drive the atom reading.
	secConnectivity
	secBookkeeping
	nSection
)

// RecordType is the kind of record, for the records which get special
// treatment. Everything else is recOther and only has a section.
type RecordType byte

const (
	recOther RecordType = iota
	recAtom
	recHetatm
	recAnisou
	recSigatm
	recSiguij
	recModel
	recEndmdl
	recTer
	recBreak
)

// recordKey is the first six columns, blank padded.
func recordKey(line string) string {
	if len(line) >= 6 {
		return line[:6]
	}
	return line + "      "[len(line):]
}

// classify says what a record is and where it belongs.
func classify(key string) (RecordType, section) {
	switch key {
	case "ATOM  ":
		return recAtom, secCoordinate
	case "HETATM":
		return recHetatm, secCoordinate
	case "ANISOU":
		return recAnisou, secCoordinate
	case "SIGATM":
		return recSigatm, secCoordinate
	case "SIGUIJ":
		return recSiguij, secCoordinate
	case "MODEL ":
		return recModel, secCoordinate
	case "ENDMDL":
		return recEndmdl, secCoordinate
	case "TER   ":
		return recTer, secCoordinate
	case "BREAK ":
		return recBreak, secCoordinate

	case "HEADER", "OBSLTE", "TITLE ", "SPLIT ", "CAVEAT", "COMPND", "SOURCE",
		"KEYWDS", "EXPDTA", "NUMMDL", "MDLTYP", "AUTHOR", "REVDAT", "SPRSDE",
		"JRNL  ":
		return recOther, secTitle
	case "REMARK":
		return recOther, secRemark
	case "DBREF ", "DBREF1", "DBREF2", "SEQADV", "SEQRES", "MODRES":
		return recOther, secPrimaryStructure
	case "HET   ", "HETNAM", "HETSYN", "FORMUL":
		return recOther, secHeterogen
	case "HELIX ", "SHEET ", "TURN  ":
		return recOther, secSecondaryStructure
	case "SSBOND", "LINK  ", "LINKR ", "CISPEP":
		return recOther, secConnectivityAnnotation
	case "SITE  ":
		return recOther, secMiscellaneousFeatures
	case "CRYST1", "ORIGX1", "ORIGX2", "ORIGX3", "SCALE1", "SCALE2", "SCALE3",
		"MTRIX1", "MTRIX2", "MTRIX3", "TVECT ":
		return recOther, secCrystallographic
	case "CONECT":
		return recOther, secConnectivity
	case "MASTER", "END   ":
		return recOther, secBookkeeping
	}
	return recOther, secUnknown
}

// isAtomRecord is true for ATOM and HETATM
func (r RecordType) isAtomRecord() bool { return r == recAtom || r == recHetatm }

// isAtomExtra is true for the records which belong to the atom before
func (r RecordType) isAtomExtra() bool {
	return r == recAnisou || r == recSigatm || r == recSiguij
}
