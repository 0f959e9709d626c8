// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format
// we are going to read. Then hand the lines to the old format reader.
// mmCIF files are recognised, but only so we can say no politely.

package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/pdbinput/pdb/cmmn"
	"github.com/andrew-torda/pdbinput/pdb/oldfmt"
	"github.com/andrew-torda/pdbinput/pdb/zwrap"
)

const (
	OldFmt byte = iota
	MmcifFmt
	UnkFmt
)

// ErrMmcif is returned by ReadFile for mmCIF files.
var ErrMmcif = errors.New("mmCIF files are not read here")

// FmtName is for messages
func FmtName(f byte) string {
	switch f {
	case OldFmt:
		return "pdb"
	case MmcifFmt:
		return "mmcif"
	}
	return "unknown"
}

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "MODEL"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	fp, err := os.Open(fname)
	if err != nil {
		return UnkFmt, err
	}
	defer fp.Close()

	rdr, e2 := zwrap.WrapMaybe(fp)
	if e2 != nil {
		return UnkFmt, fmt.Errorf("reading %s: %w", fname, e2)
	}

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bufio.NewReader(rdr))
	for i := 0; i < maxTestLines && scnnr.Scan(); i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return MmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return OldFmt, nil
			}
		}
	}
	return UnkFmt, errors.New(fname + ": cannot recognise format")
}

// OldOrMmcif decides what format we will use.
// It uses the file name if it can, otherwise it peeks inside.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func OldOrMmcif(fname string) (byte, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent to ent
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return OldFmt, nil
		} else if strings.Contains(s, "cif") {
			return MmcifFmt, nil
		}
	}
	return lookInFile(fname)
}

// ReadLines splits a stream into lines without their line endings.
// A carriage return before the newline is dropped too.
func ReadLines(r io.Reader) ([]string, error) {
	const maxLine = 1024 * 1024
	var lines []string
	scnnr := bufio.NewScanner(r)
	scnnr.Buffer(make([]byte, 0, 4096), maxLine)
	for scnnr.Scan() {
		lines = append(lines, strings.TrimSuffix(scnnr.Text(), "\r"))
	}
	return lines, scnnr.Err()
}

// mapLines reads a plain file through a read only memory map.
// An empty file cannot be mapped, but has no lines anyway.
func mapLines(fp *os.File) ([]string, int64, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, 0, err
	}
	if fi.Size() == 0 {
		return nil, 0, nil
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, 0, err
	}
	defer mm.Unmap()
	lines, err := ReadLines(bytes.NewReader(mm))
	return lines, fi.Size(), err
}

// fileLines gets the lines from a file, compressed or not.
func fileLines(fname string) ([]string, byte, int64, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, cmmn.PlainSrc, 0, err
	}
	defer fp.Close()
	src, err := zwrap.Sniff(fp)
	if err != nil {
		return nil, src, 0, err
	}
	if src == cmmn.PlainSrc {
		lines, size, err := mapLines(fp)
		return lines, src, size, err
	}
	fi, err := fp.Stat()
	if err != nil {
		return nil, src, 0, err
	}
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return nil, src, 0, err
	}
	lines, err := ReadLines(rdr)
	return lines, src, fi.Size(), err
}

// ReadFile reads an old format PDB file, plain, gzipped or xz
// compressed. opts may be nil for the defaults. If lg is nil,
// nothing is logged.
// Errors in the file come back as a *oldfmt.LineError.
func ReadFile(fname string, opts *oldfmt.Options, lg *slog.Logger) (*oldfmt.Input, error) {
	if lg == nil {
		lg = discard
	}
	typ, err := OldOrMmcif(fname)
	if err != nil {
		return nil, err
	}
	if typ == MmcifFmt {
		return nil, fmt.Errorf("%s: %w", fname, ErrMmcif)
	}
	lines, src, size, err := fileLines(fname)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	lg.Debug("read", "file", fname, "src", cmmn.SrcName(src), "bytes", size, "lines", len(lines))
	in, err := oldfmt.New(fname, lines, opts)
	if err != nil {
		return nil, err
	}
	if f := in.Col7376().Finding; f != "" {
		lg.Debug("layout", "file", fname, "finding", f)
	}
	lg.Debug("parsed", "file", fname, "atoms", len(in.Atoms()), "models", len(in.ModelAtomCounts()))
	return in, nil
}
