package pdbcli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/pdbinput/pdb"
	"github.com/andrew-torda/pdbinput/pdb/oldfmt"
	"github.com/andrew-torda/pdbinput/pdb/scan"
)

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary file...",
		Short: "Record counts, sections, models and chains of each file",
		Args:  nArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, fname := range args {
				in, err := pdb.ReadFile(fname, a.cfg.Options(), a.lg)
				if err != nil {
					return err
				}
				summary(a.stdout, in, a.cfg.Hierarchy.PostProcess)
			}
			return nil
		},
	}
}

// summary writes what we know about one file
func summary(w io.Writer, in *oldfmt.Input, postProcess bool) {
	fmt.Fprintln(w, "file", in.Source())
	counts := in.RecordTypeCounts()
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Fprintln(w, "records:")
	for _, k := range keys {
		fmt.Fprintf(w, "  %-6s %d\n", k, counts[k])
	}
	sections := []struct {
		name  string
		lines []string
	}{
		{"title", in.TitleSection()},
		{"remark", in.RemarkSection()},
		{"primary structure", in.PrimaryStructureSection()},
		{"heterogen", in.HeterogenSection()},
		{"secondary structure", in.SecondaryStructureSection()},
		{"connectivity annotation", in.ConnectivityAnnotationSection()},
		{"miscellaneous features", in.MiscellaneousFeaturesSection()},
		{"crystallographic", in.CrystallographicSection()},
		{"connectivity", in.ConnectivitySection()},
		{"bookkeeping", in.BookkeepingSection()},
		{"unknown", in.UnknownSection()},
	}
	fmt.Fprintln(w, "sections:")
	for _, s := range sections {
		if len(s.lines) > 0 {
			fmt.Fprintf(w, "  %-24s %d\n", s.name, len(s.lines))
		}
	}
	if f := in.Col7376().Finding; f != "" {
		fmt.Fprintln(w, "layout:", f)
	}
	fmt.Fprintf(w, "atoms %d models %d ter %d break %d\n", len(in.Atoms()),
		len(in.ModelAtomCounts()), len(in.TerIndices()), len(in.BreakIndices()))
	root := in.ConstructHierarchy(postProcess)
	fmt.Fprintln(w, "hierarchy:", root.Counts())

	ids, tbl := root.ChainAtomTable()
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(w, "%-8s", "model")
	for _, id := range ids {
		fmt.Fprintf(w, " %6q", id)
	}
	fmt.Fprintln(w)
	for i, m := range root.Models {
		fmt.Fprintf(w, "%-8q", m.ID)
		for _, n := range tbl.Mat[i] {
			fmt.Fprintf(w, " %6d", int(n))
		}
		fmt.Fprintln(w)
	}
}

func newTreeCmd(a *app) *cobra.Command {
	var noPostProcess, atoms bool
	cmd := &cobra.Command{
		Use:   "tree file",
		Short: "Print the model / chain / residue group / atom group tree",
		Args:  nArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := pdb.ReadFile(args[0], a.cfg.Options(), a.lg)
			if err != nil {
				return err
			}
			pp := a.cfg.Hierarchy.PostProcess && !noPostProcess
			in.ConstructHierarchy(pp).Shape(a.stdout, atoms)
			return nil
		},
	}
	cmd.Flags().BoolVar(&noPostProcess, "no-post-process", false, "group residues by number over the whole chain")
	cmd.Flags().BoolVar(&atoms, "atoms", false, "print atom names too")
	return cmd
}

func newScanCmd(a *app) *cobra.Command {
	var pattern string
	var readers, maxFile int
	var progress bool
	cmd := &cobra.Command{
		Use:   "scan directory",
		Short: "Read every matching file under a directory",
		Args:  nArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("pattern") {
				pattern = a.cfg.Scan.Pattern
			}
			if !cmd.Flags().Changed("readers") {
				readers = a.cfg.Scan.Readers
			}
			names, err := scan.Files(args[0], pattern, maxFile)
			if err != nil {
				return err
			}
			opts := scan.Options{Readers: readers, Read: a.cfg.Options(), Logger: a.lg}
			if progress {
				bar := progressbar.NewOptions(len(names),
					progressbar.OptionSetWriter(a.stderr),
					progressbar.OptionSetDescription("Reading files"),
					progressbar.OptionSetWidth(40),
					progressbar.OptionShowCount(),
					progressbar.OptionShowIts(),
					progressbar.OptionSetItsString("files/s"),
					progressbar.OptionThrottle(65*time.Millisecond),
					progressbar.OptionOnCompletion(func() { fmt.Fprintln(a.stderr) }),
				)
				opts.Progress = func(scan.FileResult) { bar.Add(1) }
			}
			sum, err := scan.Run(cmd.Context(), names, opts)
			if sum != nil {
				scanReport(a.stdout, sum)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&pattern, "pattern", "", "glob on file names (default from config)")
	cmd.Flags().IntVarP(&readers, "readers", "r", 0, "number of reader goroutines (default from config)")
	cmd.Flags().IntVar(&maxFile, "max", 0, "stop after this many files, 0 for all")
	cmd.Flags().BoolVar(&progress, "progress", false, "show a progress bar on stderr")
	return cmd
}

// scanReport prints the totals, then failures and duplicates
func scanReport(w io.Writer, sum *scan.Summary) {
	fmt.Fprintf(w, "files %s read %s failed %s bytes %s atoms %s\n",
		humanize.Comma(int64(len(sum.Files))),
		humanize.Comma(int64(len(sum.Files)-sum.NFailed)),
		humanize.Comma(int64(sum.NFailed)),
		humanize.Bytes(uint64(sum.Bytes)),
		humanize.Comma(int64(sum.NAtom())))
	nOld := 0
	for _, f := range sum.Files {
		if f.OldStyle {
			nOld++
		}
	}
	if nOld > 0 {
		fmt.Fprintln(w, "old style files", nOld)
	}
	for _, f := range sum.Files {
		if f.Err != nil {
			fmt.Fprintf(w, "failed %s: %s\n", f.Name, oneLine(f.Err))
		}
	}
	for _, d := range sum.Duplicates {
		fmt.Fprintln(w, "same contents:", strings.Join(d, " "))
	}
}

// oneLine keeps reports to one line per file. A LineError on its
// own takes four.
func oneLine(err error) string {
	var le *oldfmt.LineError
	if errors.As(err, &le) {
		return fmt.Sprintf("line %d column %d: %s", le.N, le.Col, le.Msg)
	}
	return err.Error()
}
