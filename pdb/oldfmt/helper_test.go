package oldfmt_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/pdbinput/pdb/oldfmt"
)

// at describes one atom line. Zero values give something sensible.
type at struct {
	rec     string // ATOM or HETATM, default ATOM
	serial  int
	name    string // default " CA "
	altloc  string
	resname string // default ALA
	chain   string // default A
	resseq  int
	icode   string
	segid   string
}

// line writes the atom out in columns 1-80.
func (a at) line() string {
	if a.rec == "" {
		a.rec = "ATOM"
	}
	if a.name == "" {
		a.name = " CA "
	}
	if a.resname == "" {
		a.resname = "ALA"
	}
	if a.chain == "" {
		a.chain = "A"
	}
	return fmt.Sprintf("%-6s%5d %-4s%1s%-3s%2s%4d%1s   %8.3f%8.3f%8.3f%6.2f%6.2f      %-4s%2s%2s",
		a.rec, a.serial, a.name, a.altloc, a.resname, a.chain, a.resseq, a.icode,
		1.0, 2.0, 3.0, 1.0, 20.0, a.segid, " C", "  ")
}

// chainAtoms makes one atom per residue number, all in one chain.
func chainAtoms(chain string, resseqs ...int) (ret []string) {
	for _, r := range resseqs {
		ret = append(ret, at{chain: chain, resseq: r}.line())
	}
	return ret
}

// mustInput reads lines and stops the test on any error.
func mustInput(t *testing.T, lines ...string) *oldfmt.Input {
	t.Helper()
	in, err := oldfmt.New("test.pdb", lines, nil)
	require.NoError(t, err)
	return in
}

// join flattens slices of lines
func join(parts ...[]string) (ret []string) {
	for _, p := range parts {
		ret = append(ret, p...)
	}
	return ret
}

func TestHelperColumns(t *testing.T) {
	s := at{serial: 12, name: " CB ", altloc: "B", resname: "SER", chain: "C",
		resseq: 42, icode: "X", segid: "SEG"}.line()
	require.Len(t, s, 80)
	require.Equal(t, "ATOM  ", s[0:6])
	require.Equal(t, "   12", s[6:11])
	require.Equal(t, " CB ", s[12:16])
	require.Equal(t, "B", s[16:17])
	require.Equal(t, "SER", s[17:20])
	require.Equal(t, " C", s[20:22])
	require.Equal(t, "  42", s[22:26])
	require.Equal(t, "X", s[26:27])
	require.Equal(t, "   1.000", s[30:38])
	require.Equal(t, "SEG ", s[72:76])
	require.True(t, strings.HasSuffix(s, " C  "))
}
