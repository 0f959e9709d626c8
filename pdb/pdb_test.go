package pdb_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"

	"github.com/andrew-torda/pdbinput/brokenio"
	. "github.com/andrew-torda/pdbinput/pdb"
	"github.com/andrew-torda/pdbinput/pdb/oldfmt"
)

const small = "testdata/small.pdb"

// compressCopy writes the test file through a compressor into dir
func compressCopy(t *testing.T, dir, name string, mk func(io.Writer) (io.WriteCloser, error)) string {
	t.Helper()
	data, err := os.ReadFile(small)
	require.NoError(t, err)
	var b bytes.Buffer
	w, err := mk(&b)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	fname := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(fname, b.Bytes(), 0o644))
	return fname
}

func TestReadFile(t *testing.T) {
	in, err := ReadFile(small, nil, nil)
	require.NoError(t, err)
	assert.Len(t, in.Atoms(), 4)
	assert.Equal(t, []int{3}, in.TerIndices())
	assert.True(t, in.Atoms()[1].HasUij)
	assert.Len(t, in.TitleSection(), 2)
	assert.Equal(t, [][]int{{3, 4}}, in.ChainIndices())
	root := in.ConstructHierarchy(true)
	assert.Equal(t, 4, root.Counts().Atoms)
}

// Compressed copies give the same lines as the plain file.
func TestReadCompressed(t *testing.T) {
	plain, err := ReadFile(small, nil, nil)
	require.NoError(t, err)
	dir := t.TempDir()
	gz := compressCopy(t, dir, "small.pdb.gz", func(w io.Writer) (io.WriteCloser, error) {
		return gzip.NewWriter(w), nil
	})
	xzf := compressCopy(t, dir, "small.ent.xz", func(w io.Writer) (io.WriteCloser, error) {
		return xz.NewWriter(w)
	})
	for _, fname := range []string{gz, xzf} {
		in, err := ReadFile(fname, nil, nil)
		require.NoError(t, err, fname)
		assert.Equal(t, plain.Lines(), in.Lines(), fname)
		assert.Equal(t, plain.Fingerprint(), in.Fingerprint(), fname)
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadFile(filepath.Join(dir, "does_not_exist.pdb"), nil, nil)
	assert.ErrorIs(t, err, os.ErrNotExist)

	cif := filepath.Join(dir, "x.cif")
	require.NoError(t, os.WriteFile(cif, []byte("data_1XYZ\n"), 0o644))
	_, err = ReadFile(cif, nil, nil)
	assert.ErrorIs(t, err, ErrMmcif)

	broken := filepath.Join(dir, "broken.pdb")
	require.NoError(t, os.WriteFile(broken, []byte("MODEL        1\nENDMDL\nENDMDL\n"), 0o644))
	_, err = ReadFile(broken, nil, nil)
	var le *oldfmt.LineError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 3, le.N)
	assert.Equal(t, broken, le.Source)

	empty := filepath.Join(dir, "empty.pdb")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	in, err := ReadFile(empty, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, in.Lines())
}

func TestOldOrMmcif(t *testing.T) {
	dir := t.TempDir()
	write := func(name, s string) string {
		fname := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(fname, []byte(s), 0o644))
		return fname
	}
	for _, c := range []struct {
		fname string
		want  byte
	}{
		{"/no/such/dir/1abc.pdb", OldFmt},
		{"/no/such/dir/pdb1abc.ent.gz", OldFmt},
		{"/no/such/dir/1ABC.CIF", MmcifFmt},
		{write("noext", "REMARK nothing\n"), OldFmt},
		{write("noext2", "\n\ndata_1ABC\n"), MmcifFmt},
		{write("x.txt", "ATOM      1  CA\n"), OldFmt},
	} {
		got, err := OldOrMmcif(c.fname)
		require.NoError(t, err, c.fname)
		assert.Equal(t, FmtName(c.want), FmtName(got), c.fname)
	}
	_, err := OldOrMmcif(write("junk", "hello\nworld\n"))
	assert.Error(t, err)
}

func TestReadLines(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("a\r\nb\n\nc"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "", "c"}, lines)
	lines, err = ReadLines(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// Reads of a few bytes at a time give the same lines. A failing read
// is passed back.
func TestReadLinesBroken(t *testing.T) {
	data, err := os.ReadFile(small)
	require.NoError(t, err)
	want, err := ReadLines(bytes.NewReader(data))
	require.NoError(t, err)
	for _, n := range []int{1, 5, 79} {
		rdr := brokenio.NewReader(bytes.NewReader(data), int64(n))
		rdr.SetMaxRead(n)
		got, err := ReadLines(rdr)
		require.NoError(t, err)
		assert.Equal(t, want, got, "reads of %d bytes", n)
	}
	rdr := brokenio.NewReader(bytes.NewReader(data), 1)
	rdr.SetMaxRead(100)
	rdr.SetProbFail(1)
	_, err = ReadLines(rdr)
	assert.ErrorIs(t, err, brokenio.ErrBroken)
}

func TestLogWhere(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "log.json")
	lg, err := LogWhere(fname, "debug", "json")
	require.NoError(t, err)
	_, err = ReadFile(small, nil, lg)
	require.NoError(t, err)
	b, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"parsed"`)
	assert.Contains(t, string(b), `"atoms":4`)

	_, err = LogWhere("", "loud", "text")
	assert.Error(t, err)
	_, err = LogWhere("", "info", "xml")
	assert.Error(t, err)
	lg, err = LogWhere("", "WARN", "")
	require.NoError(t, err)
	assert.NotNil(t, lg)
}
