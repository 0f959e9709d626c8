// Building the tree.
// Models come from the MODEL records, chains from the chain indices
// worked out while reading. Within a chain, atoms are put into residue
// groups and residue groups are split into atom groups by altloc.
// The atoms in the tree are copies. The Input is not touched, so
// calling this twice gives two identical trees.

package oldfmt

import (
	"github.com/andrew-torda/pdbinput/pdb/hierarchy"
)

// ConstructHierarchy builds the tree.
// With postProcess, a residue group is a contiguous run of atoms with
// the same residue number and insertion code, so a residue which comes
// back after something else is a new group. Without postProcess, all
// atoms of a chain with the same residue number and insertion code go
// in one group, wherever they are. Callers have to live with the
// results.
// A BREAK record always starts a new residue group.
func (in *Input) ConstructHierarchy(postProcess bool) *hierarchy.Root {
	root := new(hierarchy.Root)
	starts, ids := in.modelStarts()
	isBreak := make(map[int]bool, len(in.breakIndices))
	for _, i := range in.breakIndices {
		isBreak[i] = true
	}
	for im, b := range starts {
		m := root.AddModel(ids[im])
		rl := newRangeLoop(in.chainIndices[im], b)
		for rl.next() {
			ch := m.AddChain(in.labels[rl.begin].Chain())
			if postProcess {
				in.contiguousResidues(ch, rl.begin, rl.end, isBreak)
			} else {
				in.groupedResidues(ch, rl.begin, rl.end, isBreak)
			}
		}
	}
	return root
}

// contiguousResidues starts a new residue group every time the resid
// changes or there is a break.
func (in *Input) contiguousResidues(ch *hierarchy.Chain, begin, end int, isBreak map[int]bool) {
	var rg *hierarchy.ResidueGroup
	for i := begin; i < end; i++ {
		lbl := &in.labels[i]
		if rg == nil || isBreak[i] || !sameResid(lbl, &in.labels[i-1]) {
			rg = ch.AddResidueGroup(lbl.Resseq(), lbl.Icode())
		}
		in.addAtom(rg, i)
	}
}

// groupedResidues puts atoms with the same resid together, but does
// not look across a break.
func (in *Input) groupedResidues(ch *hierarchy.Chain, begin, end int, isBreak map[int]bool) {
	seen := make(map[string]*hierarchy.ResidueGroup)
	for i := begin; i < end; i++ {
		if isBreak[i] {
			clear(seen)
		}
		lbl := &in.labels[i]
		rg, ok := seen[lbl.Resid()]
		if !ok {
			rg = ch.AddResidueGroup(lbl.Resseq(), lbl.Icode())
			seen[lbl.Resid()] = rg
		}
		in.addAtom(rg, i)
	}
}

// addAtom copies atom i into the atom group for its altloc.
func (in *Input) addAtom(rg *hierarchy.ResidueGroup, i int) {
	lbl := &in.labels[i]
	a := in.atoms[i]
	rg.FindAtomGroup(lbl.Altloc(), lbl.Resname()).AddAtom(&a)
}
