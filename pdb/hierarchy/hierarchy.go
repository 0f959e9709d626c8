// Package hierarchy has the tree built from the atoms of a pdb file.
// A Root owns models, a model owns chains, a chain owns residue groups,
// a residue group owns atom groups (one per alternative location) and
// an atom group owns atoms.
// Every node points back to its parent. The parent pointers are only
// there for walking up the tree.
package hierarchy

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/pdbinput/pdb/cmmn"
)

// Atom is one ATOM or HETATM record together with anything we picked up
// from following ANISOU, SIGATM and SIGUIJ records.
type Atom struct {
	Name    string // four characters, as in columns 13-16
	Altloc  string
	Resname string
	Chain   string
	Resseq  string
	Icode   string
	Segid   string
	Element string // columns 77-78
	Charge  string // columns 79-80
	Hetero  bool   // came from a HETATM record
	Xyz     cmmn.Xyz
	Occ     float32
	B       float32
	SigXyz  cmmn.Xyz
	SigOcc  float32
	SigB    float32
	Uij     cmmn.Uij
	SigUij  cmmn.Uij

	HasSigXyz bool
	HasUij    bool
	HasSigUij bool

	I      int // index in the flat list of atoms of the input
	Parent *AtomGroup
}

// ID gives something like pdb=" CA  ALA A   1 " for messages
func (a *Atom) ID() string {
	var b strings.Builder
	b.WriteString(`pdb="`)
	b.WriteString(a.Name)
	b.WriteString(a.Altloc)
	b.WriteString(a.Resname)
	if len(a.Chain) < 2 {
		b.WriteByte(' ')
	}
	b.WriteString(a.Chain)
	b.WriteString(a.Resseq)
	b.WriteString(a.Icode)
	b.WriteByte('"')
	if strings.TrimSpace(a.Segid) != "" {
		b.WriteString(` segid="`)
		b.WriteString(a.Segid)
		b.WriteByte('"')
	}
	return b.String()
}

// AtomGroup is the set of atoms in a residue group with the same
// altloc. A blank altloc is the primary conformer.
type AtomGroup struct {
	Altloc  string
	Resname string // from the first atom
	Atoms   []*Atom
	Parent  *ResidueGroup
}

// ResidueGroup is a residue, keyed by sequence number and insertion code.
type ResidueGroup struct {
	Resseq     string
	Icode      string
	AtomGroups []*AtomGroup
	Parent     *Chain
}

// Resid is the residue number and insertion code, as in columns 23-27.
func (rg *ResidueGroup) Resid() string { return rg.Resseq + rg.Icode }

// Chain is a contiguous run of atoms with the same chain identifier.
// Two chains in a model may have the same ID.
type Chain struct {
	ID            string
	ResidueGroups []*ResidueGroup
	Parent        *Model
}

// Model holds the chains between MODEL and ENDMDL. Files without
// MODEL records have one model with an empty ID.
type Model struct {
	ID     string
	Chains []*Chain
	Parent *Root
}

// Root is the top of the tree.
type Root struct {
	Models []*Model
}

// AddModel appends a new, empty model and returns it.
func (r *Root) AddModel(id string) *Model {
	m := &Model{ID: id, Parent: r}
	r.Models = append(r.Models, m)
	return m
}

// AddChain appends a new, empty chain to a model.
func (m *Model) AddChain(id string) *Chain {
	c := &Chain{ID: id, Parent: m}
	m.Chains = append(m.Chains, c)
	return c
}

// AddResidueGroup appends a new, empty residue group to a chain.
func (c *Chain) AddResidueGroup(resseq, icode string) *ResidueGroup {
	rg := &ResidueGroup{Resseq: resseq, Icode: icode, Parent: c}
	c.ResidueGroups = append(c.ResidueGroups, rg)
	return rg
}

// FindAtomGroup returns the atom group with a given altloc, making a
// new one at the end if there is none yet.
func (rg *ResidueGroup) FindAtomGroup(altloc, resname string) *AtomGroup {
	for _, ag := range rg.AtomGroups {
		if ag.Altloc == altloc {
			return ag
		}
	}
	ag := &AtomGroup{Altloc: altloc, Resname: resname, Parent: rg}
	rg.AtomGroups = append(rg.AtomGroups, ag)
	return ag
}

// AddAtom appends an atom and sets its parent.
func (ag *AtomGroup) AddAtom(a *Atom) {
	a.Parent = ag
	ag.Atoms = append(ag.Atoms, a)
}

// Counts is the number of nodes at each level of a tree.
type Counts struct {
	Models, Chains, ResidueGroups, AtomGroups, Atoms int
}

func (c Counts) String() string {
	return fmt.Sprintf("models %d chains %d residue groups %d atom groups %d atoms %d",
		c.Models, c.Chains, c.ResidueGroups, c.AtomGroups, c.Atoms)
}

// Counts walks the tree and counts everything.
func (r *Root) Counts() (c Counts) {
	for _, m := range r.Models {
		c.Models++
		for _, ch := range m.Chains {
			c.Chains++
			for _, rg := range ch.ResidueGroups {
				c.ResidueGroups++
				for _, ag := range rg.AtomGroups {
					c.AtomGroups++
					c.Atoms += len(ag.Atoms)
				}
			}
		}
	}
	return c
}

// Atoms returns all atoms, model by model, in tree order.
// This is not always file order. Atoms with a second altloc
// come after the whole of the first atom group.
func (r *Root) Atoms() []*Atom {
	var ret []*Atom
	for _, m := range r.Models {
		ret = append(ret, m.Atoms()...)
	}
	return ret
}

// Atoms returns the atoms of one model in tree order.
func (m *Model) Atoms() []*Atom {
	var ret []*Atom
	for _, ch := range m.Chains {
		for _, rg := range ch.ResidueGroups {
			for _, ag := range rg.AtomGroups {
				ret = append(ret, ag.Atoms...)
			}
		}
	}
	return ret
}

// NAtom is the number of atoms in a chain
func (ch *Chain) NAtom() (n int) {
	for _, rg := range ch.ResidueGroups {
		for _, ag := range rg.AtomGroups {
			n += len(ag.Atoms)
		}
	}
	return n
}
