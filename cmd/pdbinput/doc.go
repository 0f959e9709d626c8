// 17 Oct 2026

/*
Pdbinput reads protein structure files in the old, fixed column PDB
format. Files may be plain, gzipped or xz compressed.

Usage:

	pdbinput [--config file] [--verbose] command [flags] args

The commands are:

	summary file...
		record counts, header sections, layout findings, models,
		chains and a table of atoms per model and chain
	tree [--no-post-process] [--atoms] file
		the model / chain / residue group / atom group tree
	scan [--pattern glob] [-r readers] [--max n] [--progress] directory
		read every matching file below directory, report failures
		and files with the same contents

Settings come from defaults, then the YAML file given with --config,
then PDBINPUT_* environment variables, for example
PDBINPUT_LAYOUT_THRESHOLD_ATOM=500 or PDBINPUT_LOG_LEVEL=debug.
*/
package main
