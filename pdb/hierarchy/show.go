// 17 Oct 2026
// Ways of looking at a tree. Shape is used by the tests and the tree
// command. ChainAtomTable is for the summary command.

package hierarchy

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/matrix"
)

// Shape writes the tree, one node per line, indented by depth.
// If withAtoms is false, atoms are only counted.
func (r *Root) Shape(w io.Writer, withAtoms bool) {
	for _, m := range r.Models {
		fmt.Fprintf(w, "model id=%q #chains=%d\n", m.ID, len(m.Chains))
		for _, ch := range m.Chains {
			fmt.Fprintf(w, "  chain id=%q #residue_groups=%d\n", ch.ID, len(ch.ResidueGroups))
			for _, rg := range ch.ResidueGroups {
				fmt.Fprintf(w, "    resid=%q #atom_groups=%d\n", rg.Resid(), len(rg.AtomGroups))
				for _, ag := range rg.AtomGroups {
					fmt.Fprintf(w, "      altloc=%q resname=%q #atoms=%d\n",
						ag.Altloc, ag.Resname, len(ag.Atoms))
					if !withAtoms {
						continue
					}
					for _, a := range ag.Atoms {
						fmt.Fprintf(w, "        %q\n", a.Name)
					}
				}
			}
		}
	}
}

// ShapeString is Shape into a string
func (r *Root) ShapeString(withAtoms bool) string {
	var b strings.Builder
	r.Shape(&b, withAtoms)
	return b.String()
}

// ChainAtomTable counts atoms per model (rows) and chain identifier
// (columns). Chain identifiers are in order of first appearance over
// all models. Chains which occur more than once in a model, for
// example after a TER record, are summed.
func (r *Root) ChainAtomTable() ([]string, *matrix.FMatrix2d) {
	var ids []string
	col := make(map[string]int)
	for _, m := range r.Models {
		for _, ch := range m.Chains {
			if _, ok := col[ch.ID]; !ok {
				col[ch.ID] = len(ids)
				ids = append(ids, ch.ID)
			}
		}
	}
	tbl := matrix.NewFMatrix2d(len(r.Models), len(ids))
	for i, m := range r.Models {
		for _, ch := range m.Chains {
			tbl.Mat[i][col[ch.ID]] += float32(ch.NAtom())
		}
	}
	return ids, tbl
}
