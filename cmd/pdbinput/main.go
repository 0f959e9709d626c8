// 17 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/pdbinput/pkg/pdbcli"
)

func main() {
	os.Exit(pdbcli.Mymain(os.Args[1:], os.Stdout, os.Stderr))
}
