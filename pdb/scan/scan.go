// Package scan reads lots of PDB files and collects what it finds.
// One goroutine sends file names down a channel, a few readers parse
// the files and each keeps its own results. At the end the results
// are merged, so the readers never share anything.
package scan

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gobwas/glob"

	"github.com/andrew-torda/pdbinput/pdb"
	"github.com/andrew-torda/pdbinput/pdb/oldfmt"
)

const nReaderDflt = 3

// Options for Run. The zero value works.
type Options struct {
	Readers  int             // number of reader goroutines
	Read     *oldfmt.Options // passed on to the reader, nil for defaults
	Logger   *slog.Logger
	Progress func(FileResult) // called once per file, from several goroutines
}

// FileResult is what we learnt from one file.
type FileResult struct {
	Name        string
	Size        int64 // on disk, so compressed files look small
	NAtom       int
	NModel      int
	OldStyle    bool
	Fingerprint string
	Err         error
}

// Summary is the merged result of a scan.
type Summary struct {
	Files        []FileResult   // in name order
	RecordCounts map[string]int // over all files that could be read
	Bytes        int64
	NFailed      int
	Duplicates   [][]string // names of files with the same contents
}

// Files walks the tree under root and returns the regular files whose
// base name matches pattern. An empty pattern takes everything.
// If maxFile > 0 we stop after that many.
func Files(root, pattern string, maxFile int) ([]string, error) {
	var g glob.Glob
	if pattern != "" {
		var err error
		if g, err = glob.Compile(pattern); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
	}
	var names []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if g != nil && !g.Match(d.Name()) {
			return nil
		}
		names = append(names, path)
		if maxFile > 0 && len(names) >= maxFile {
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return names, nil
}

// partial is what one reader collects
type partial struct {
	files  []FileResult
	counts map[string]int
}

// eatPDB reads one file. Errors go in the result.
func eatPDB(fname string, opts *Options, counts map[string]int) FileResult {
	res := FileResult{Name: fname}
	if fi, err := os.Stat(fname); err == nil {
		res.Size = fi.Size()
	}
	in, err := pdb.ReadFile(fname, opts.Read, opts.Logger)
	if err != nil {
		res.Err = err
		return res
	}
	res.NAtom = len(in.Atoms())
	res.NModel = len(in.ModelAtomCounts())
	res.OldStyle = in.Col7376().IsOldStyle
	res.Fingerprint = in.Fingerprint()
	for k, v := range in.RecordTypeCounts() {
		counts[k] += v
	}
	return res
}

// readFiles takes names from nmChan until it is closed.
func readFiles(nmChan <-chan string, res chan<- partial, wg *sync.WaitGroup, opts *Options) {
	defer wg.Done()
	p := partial{counts: make(map[string]int)}
	for fname := range nmChan {
		r := eatPDB(fname, opts, p.counts)
		if r.Err != nil {
			opts.Logger.Warn("skipping", "file", fname, "err", r.Err)
		}
		p.files = append(p.files, r)
		if opts.Progress != nil {
			opts.Progress(r)
		}
	}
	res <- p
}

// Run reads the files with a few goroutines. If ctx is cancelled, no
// more names are handed out, the files already started are finished
// and the error from ctx comes back with what we have.
func Run(ctx context.Context, names []string, opts Options) (*Summary, error) {
	if opts.Readers < 1 {
		opts.Readers = nReaderDflt
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	nmChan := make(chan string)
	res := make(chan partial, opts.Readers)

	go func() {
		defer close(nmChan)
		for _, fname := range names {
			select {
			case nmChan <- fname:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < opts.Readers; i++ {
		wg.Add(1)
		go readFiles(nmChan, res, &wg, &opts)
	}
	wg.Wait()
	close(res)

	sum := &Summary{RecordCounts: make(map[string]int)}
	for p := range res {
		sum.Files = append(sum.Files, p.files...)
		for k, v := range p.counts {
			sum.RecordCounts[k] += v
		}
	}
	sort.Slice(sum.Files, func(i, j int) bool { return sum.Files[i].Name < sum.Files[j].Name })
	byPrint := make(map[string][]string)
	for _, f := range sum.Files {
		sum.Bytes += f.Size
		if f.Err != nil {
			sum.NFailed++
			continue
		}
		byPrint[f.Fingerprint] = append(byPrint[f.Fingerprint], f.Name)
	}
	for _, v := range byPrint {
		if len(v) > 1 {
			sum.Duplicates = append(sum.Duplicates, v)
		}
	}
	sort.Slice(sum.Duplicates, func(i, j int) bool { return sum.Duplicates[i][0] < sum.Duplicates[j][0] })
	return sum, ctx.Err()
}

// NAtom is the total over all files
func (s *Summary) NAtom() (n int) {
	for _, f := range s.Files {
		n += f.NAtom
	}
	return n
}
