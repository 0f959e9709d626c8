// Package oldfmt reads files in the old, fixed column PDB format.
// An Input is made once from a slice of lines. Header records are
// kept verbatim in sections. ATOM and HETATM records give a flat list
// of labels and atoms, plus the positions of MODEL, TER and BREAK
// records. ConstructHierarchy turns this into a tree.
// An Input is not changed after New returns. It is not safe to call
// ConstructHierarchy from two goroutines at once, but nobody would
// want to.
package oldfmt

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/andrew-torda/pdbinput/pdb/hierarchy"
	"github.com/zeebo/blake3"
)

// Options control reading. The zero value is not the default. Use
// DefaultOptions.
type Options struct {
	ThresholdAtom  int  // see EvaluateCol7376
	ThresholdOther int  //
	TerBreaks      bool // TER records also count as a BREAK
}

// DefaultOptions gives the usual thresholds and TER records which
// only end chains.
func DefaultOptions() *Options {
	return &Options{
		ThresholdAtom:  DfltThresholdAtom,
		ThresholdOther: DfltThresholdOther,
	}
}

// Input is everything we got from one file.
type Input struct {
	source           string
	lines            []string
	col7376          Col7376
	recordTypeCounts map[string]int
	sections         [nSection][]string
	labels           []AtomLabels
	atoms            []hierarchy.Atom
	atomLines        []int // index in lines of each atom
	modelIds         []string
	modelIndices     []int   // where each model starts in atoms
	terIndices       []int   // atom index after each TER
	chainIndices     [][]int // per model, where each chain run ends
	breakIndices     []int
	breakLineNumbers []int
}

// New reads lines, which should not have newlines on the end.
// source is only used in error messages. If opts is nil, we use the
// defaults.
// The first broken line stops everything. The error is a *LineError.
func New(source string, lines []string, opts *Options) (*Input, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	in := &Input{
		source:           source,
		lines:            lines,
		recordTypeCounts: make(map[string]int),
	}
	if err := in.process(opts); err != nil {
		return nil, err
	}
	return in, nil
}

// process is the one pass over the lines.
func (in *Input) process(opts *Options) error {
	in.col7376 = EvaluateCol7376(in.lines, opts.ThresholdAtom, opts.ThresholdOther)
	oldStyle := in.col7376.IsOldStyle
	modelOpen := false
	lastAtom := -1 // line of the atom an ANISOU may belong to
	for i, line := range in.lines {
		li := LineInfo{Source: in.source, N: i + 1, Data: line}
		if li.IsBlank() {
			continue
		}
		key := recordKey(line)
		in.recordTypeCounts[key]++
		rt, sec := classify(key)
		if sec != secCoordinate {
			in.sections[sec] = append(in.sections[sec], line)
			lastAtom = -1
			continue
		}
		switch rt {
		case recModel:
			switch {
			case modelOpen:
				li.SetError(1, "MODEL record without ENDMDL for the previous model")
			case len(in.modelIndices) == 0 && len(in.atoms) > 0:
				li.SetError(1, "MODEL record after ATOM or HETATM records outside of any model")
			default:
				in.modelIds = append(in.modelIds, strings.TrimSpace(li.StripData(6)))
				in.modelIndices = append(in.modelIndices, len(in.atoms))
				modelOpen = true
			}
		case recEndmdl:
			if !modelOpen {
				li.SetError(1, "ENDMDL record without MODEL record")
			}
			modelOpen = false
		case recAtom, recHetatm:
			if len(in.modelIndices) > 0 && !modelOpen {
				li.SetError(1, "ATOM or HETATM record outside MODEL/ENDMDL block")
				break
			}
			lbl := NewAtomLabels(&li, oldStyle)
			a := newAtom(&li, &lbl, rt == recHetatm, len(in.atoms))
			if li.ErrorOccurred() {
				break
			}
			in.labels = append(in.labels, lbl)
			in.atoms = append(in.atoms, a)
			in.atomLines = append(in.atomLines, i)
		case recAnisou, recSigatm, recSiguij:
			if lastAtom < 0 {
				li.SetError(1, strings.TrimSpace(key)+" record without preceding ATOM or HETATM record")
				break
			}
			checkEquivalence(&li, &LineInfo{Data: in.lines[lastAtom]}, oldStyle)
			if !li.ErrorOccurred() {
				addExtra(&li, rt, &in.atoms[len(in.atoms)-1])
			}
		case recTer:
			in.terIndices = append(in.terIndices, len(in.atoms))
			if opts.TerBreaks {
				in.breakIndices = append(in.breakIndices, len(in.atoms))
			}
		case recBreak:
			in.breakIndices = append(in.breakIndices, len(in.atoms))
			in.breakLineNumbers = append(in.breakLineNumbers, i+1)
		}
		if err := li.Err(); err != nil {
			return err
		}
		if rt.isAtomRecord() {
			lastAtom = i
		} else if !rt.isAtomExtra() {
			lastAtom = -1
		}
	}
	in.findChains()
	return nil
}

// modelStarts gives the start of each model. Without MODEL records,
// there is one model if there are any atoms.
func (in *Input) modelStarts() ([]int, []string) {
	if len(in.modelIndices) > 0 {
		return in.modelIndices, in.modelIds
	}
	if len(in.atoms) > 0 {
		return []int{0}, []string{""}
	}
	return nil, nil
}

// modelEnd is one past the last atom of model im
func (in *Input) modelEnd(starts []int, im int) int {
	if im+1 < len(starts) {
		return starts[im+1]
	}
	return len(in.atoms)
}

// sameChain compares both chain columns of two atoms
func sameChain(a, b *AtomLabels) bool {
	return a[chainOff] == b[chainOff] && a[chainOff+1] == b[chainOff+1]
}

// findChains sets the chain indices. In each model, a chain ends when
// the chain identifier changes, at a TER record, or at the end of
// the model.
func (in *Input) findChains() {
	starts, _ := in.modelStarts()
	in.chainIndices = make([][]int, len(starts))
	it := 0 // next TER index
	for im, b := range starts {
		e := in.modelEnd(starts, im)
		var ends []int
		for i := b + 1; i < e; i++ {
			for it < len(in.terIndices) && in.terIndices[it] < i {
				it++
			}
			ter := it < len(in.terIndices) && in.terIndices[it] == i
			if ter || !sameChain(&in.labels[i], &in.labels[i-1]) {
				ends = append(ends, i)
			}
		}
		if e > b {
			ends = append(ends, e)
		}
		in.chainIndices[im] = ends
	}
}

// ModelAtomCounts gives the number of atoms in each model
func (in *Input) ModelAtomCounts() []int {
	starts, _ := in.modelStarts()
	ret := make([]int, len(starts))
	for im, b := range starts {
		ret[im] = in.modelEnd(starts, im) - b
	}
	return ret
}

// AtomSerialNumberStrings goes back to the lines for columns 7-11 of
// each atom. Nothing is saved, so do not call it in a loop.
func (in *Input) AtomSerialNumberStrings() []string {
	ret := make([]string, len(in.atomLines))
	for i, il := range in.atomLines {
		ret[i] = cols(&LineInfo{Data: in.lines[il]}, serialCol, serialLen)
	}
	return ret
}

// Fingerprint is a blake3 hash of the lines, separated by newlines.
func (in *Input) Fingerprint() string {
	h := blake3.New()
	for _, line := range in.lines {
		io.WriteString(h, line)
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// The slices returned below belong to the Input. Do not change them.

func (in *Input) Source() string { return in.source }
func (in *Input) Lines() []string { return in.lines }
func (in *Input) Col7376() Col7376 { return in.col7376 }
func (in *Input) RecordTypeCounts() map[string]int { return in.recordTypeCounts }

func (in *Input) UnknownSection() []string { return in.sections[secUnknown] }
func (in *Input) TitleSection() []string { return in.sections[secTitle] }
func (in *Input) RemarkSection() []string { return in.sections[secRemark] }
func (in *Input) PrimaryStructureSection() []string { return in.sections[secPrimaryStructure] }
func (in *Input) HeterogenSection() []string { return in.sections[secHeterogen] }
func (in *Input) SecondaryStructureSection() []string { return in.sections[secSecondaryStructure] }
func (in *Input) ConnectivityAnnotationSection() []string {
	return in.sections[secConnectivityAnnotation]
}
func (in *Input) MiscellaneousFeaturesSection() []string {
	return in.sections[secMiscellaneousFeatures]
}
func (in *Input) CrystallographicSection() []string { return in.sections[secCrystallographic] }
func (in *Input) ConnectivitySection() []string { return in.sections[secConnectivity] }
func (in *Input) BookkeepingSection() []string { return in.sections[secBookkeeping] }

func (in *Input) AtomLabelsList() []AtomLabels { return in.labels }
func (in *Input) Atoms() []hierarchy.Atom { return in.atoms }
func (in *Input) ModelIds() []string { return in.modelIds }
func (in *Input) ModelIndices() []int { return in.modelIndices }
func (in *Input) TerIndices() []int { return in.terIndices }
func (in *Input) ChainIndices() [][]int { return in.chainIndices }
func (in *Input) BreakIndices() []int { return in.breakIndices }
func (in *Input) BreakRecordLineNumbers() []int { return in.breakLineNumbers }
