package hierarchy_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/pdbinput/pdb/hierarchy"
)

// smallTree has two models. The first has chain A, chain B and
// chain A again. Residue 2 of the first chain has two conformers.
func smallTree() *Root {
	r := new(Root)
	for _, mid := range []string{"1", "2"} {
		m := r.AddModel(mid)
		chA := m.AddChain("A")
		rg := chA.AddResidueGroup("   1", " ")
		ag := rg.FindAtomGroup(" ", "ALA")
		ag.AddAtom(&Atom{Name: " N  "})
		ag.AddAtom(&Atom{Name: " CA "})
		rg = chA.AddResidueGroup("   2", " ")
		rg.FindAtomGroup("A", "SER").AddAtom(&Atom{Name: " OG "})
		rg.FindAtomGroup("B", "SER").AddAtom(&Atom{Name: " OG "})
		if mid == "1" {
			m.AddChain("B").AddResidueGroup("   1", "A").
				FindAtomGroup(" ", "HOH").AddAtom(&Atom{Name: " O  "})
			m.AddChain("A").AddResidueGroup("   9", " ").
				FindAtomGroup(" ", "GLY").AddAtom(&Atom{Name: " O  "})
		}
	}
	return r
}

func TestCounts(t *testing.T) {
	r := smallTree()
	c := r.Counts()
	assert.Equal(t, Counts{Models: 2, Chains: 4, ResidueGroups: 6, AtomGroups: 8, Atoms: 10}, c)
	assert.Len(t, r.Atoms(), 10)
	assert.Len(t, r.Models[1].Atoms(), 4)
	assert.Contains(t, c.String(), "atoms 10")
}

func TestParents(t *testing.T) {
	r := smallTree()
	for _, m := range r.Models {
		require.Same(t, r, m.Parent)
		for _, ch := range m.Chains {
			require.Same(t, m, ch.Parent)
			for _, rg := range ch.ResidueGroups {
				require.Same(t, ch, rg.Parent)
				for _, ag := range rg.AtomGroups {
					require.Same(t, rg, ag.Parent)
					for _, a := range ag.Atoms {
						require.Same(t, ag, a.Parent)
					}
				}
			}
		}
	}
}

func TestFindAtomGroup(t *testing.T) {
	var rg ResidueGroup
	a := rg.FindAtomGroup(" ", "ALA")
	b := rg.FindAtomGroup("A", "ALA")
	require.Same(t, a, rg.FindAtomGroup(" ", "GLY"))
	require.NotSame(t, a, b)
	assert.Equal(t, "ALA", a.Resname, "resname comes from the first atom")
	assert.Len(t, rg.AtomGroups, 2)
}

func TestChainAtomTable(t *testing.T) {
	ids, tbl := smallTree().ChainAtomTable()
	require.Equal(t, []string{"A", "B"}, ids)
	nr, nc := tbl.Size()
	require.Equal(t, 2, nr)
	require.Equal(t, 2, nc)
	assert.Equal(t, []float32{5, 1}, tbl.Mat[0])
	assert.Equal(t, []float32{4, 0}, tbl.Mat[1])
}

func TestShape(t *testing.T) {
	s := smallTree().ShapeString(true)
	lines := strings.Split(strings.TrimSpace(s), "\n")
	assert.Equal(t, `model id="1" #chains=3`, lines[0])
	assert.Equal(t, `  chain id="A" #residue_groups=2`, lines[1])
	assert.Contains(t, s, `    resid="   1A" #atom_groups=1`)
	assert.Contains(t, s, `        " OG "`)
	assert.NotContains(t, smallTree().ShapeString(false), `" OG "`)
}

func TestAtomID(t *testing.T) {
	a := Atom{Name: " CA ", Altloc: " ", Resname: "ALA", Chain: "A",
		Resseq: "  10", Icode: " "}
	assert.Equal(t, `pdb=" CA  ALA A  10 "`, a.ID())
	a.Chain = "AB"
	a.Segid = "SEG1"
	assert.Equal(t, `pdb=" CA  ALAAB  10 " segid="SEG1"`, a.ID())
}
