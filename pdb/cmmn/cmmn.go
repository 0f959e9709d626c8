// Package pdb/cmmn has common definitions for coordinates and
// pdb files
package cmmn

import (
	"math"
)

// Does our data come from a plain, gzipped or xz compressed file ?
const (
	PlainSrc byte = iota
	GzipSrc
	XzSrc
)

// SrcName gives a printable name for one of the source kinds.
func SrcName(src byte) string {
	switch src {
	case PlainSrc:
		return "plain"
	case GzipSrc:
		return "gzip"
	case XzSrc:
		return "xz"
	}
	return "unknown"
}

type Xyz struct{ X, Y, Z float32 }
type XyzSl []Xyz // xyz's are coordinates

var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

func (xyz *Xyz) Ok() bool {
	if *xyz != BrokenXyz {
		return true
	}
	return false
}

// Uij is the six independent elements of an anisotropic displacement
// tensor in the order U11, U22, U33, U12, U13, U23.
type Uij [6]float32

// AnisouFactor converts the integers in ANISOU and SIGUIJ records
// to Angstrom**2.
const AnisouFactor = 1.e-4

// Exit codes for the commands
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)
