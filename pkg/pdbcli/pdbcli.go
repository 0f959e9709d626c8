// 17 Oct 2026
// The pdbinput command. Everything is built fresh on each call to
// Mymain, so the tests can run it as often as they like.

package pdbcli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/andrew-torda/pdbinput/pdb"
	"github.com/andrew-torda/pdbinput/pdb/cmmn"
	"github.com/andrew-torda/pdbinput/pdb/config"
)

// app is what every command gets once the config has been read
type app struct {
	cfgFile string
	verbose bool
	cfg     *config.Config
	lg      *slog.Logger
	stdout  io.Writer
	stderr  io.Writer
}

// usageErr marks errors where the user typed something wrong
type usageErr struct{ error }

func (e usageErr) Unwrap() error { return e.error }

// nArgs is cobra.MinimumNArgs, but says it is a usage error
func nArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageErr{err}
		}
		return nil
	}
}

// setup reads the config and makes the logger
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.verbose {
		cfg.Log.Level = "debug"
	}
	dest := cfg.Log.Dest
	var lg *slog.Logger
	if dest == "stderr" {
		lg, err = pdb.NewLogger(a.stderr, cfg.Log.Level, cfg.Log.Format)
	} else {
		lg, err = pdb.LogWhere(dest, cfg.Log.Level, cfg.Log.Format)
	}
	if err != nil {
		return err
	}
	a.cfg, a.lg = cfg, lg
	return nil
}

func newRoot(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "pdbinput",
		Short: "Read old style PDB coordinate files",
		Long: `pdbinput reads PDB files in the old fixed column format, plain,
gzipped or xz compressed. It can summarise a file, print the
model / chain / residue / atom tree or scan a directory of files.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageErr{err}
	})
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	root.AddCommand(newSummaryCmd(a), newTreeCmd(a), newScanCmd(a))
	return root
}

// Mymain runs the command with args, not including the program name,
// and returns the exit code.
func Mymain(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := newRoot(a)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	if err == nil {
		return cmmn.ExitSuccess
	}
	fmt.Fprintln(stderr, "pdbinput:", err)
	var ue usageErr
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, "try: pdbinput --help")
		return cmmn.ExitUsageError
	}
	return cmmn.ExitFailure
}
