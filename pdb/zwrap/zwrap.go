// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// We look at the first bytes to decide. gzip files start with 1f 8b,
// xz files with fd 37 7a 58 5a 00. Anything else is read as it is.

package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"

	"github.com/andrew-torda/pdbinput/pdb/cmmn"
	"github.com/ulikunitz/xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// FpZ is what we return.
type FpZ struct {
	fp   io.ReadCloser
	zrdr io.Reader // nil if the source is not compressed
	gz   *gzip.Reader
	src  byte
}

// Src says what we found, one of cmmn.PlainSrc, GzipSrc or XzSrc.
func (fz *FpZ) Src() byte { return fz.src }

// Close closes the decompressor, then the underlying backing readCloser.
// The xz reader has nothing to close.
func (fz *FpZ) Close() error {
	var e1 error
	if fz.gz != nil {
		e1 = fz.gz.Close()
	}
	return errors.Join(e1, fz.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fz *FpZ) Read(p []byte) (int, error) {
	if fz.zrdr != nil {
		return fz.zrdr.Read(p)
	}
	return fz.fp.Read(p)
}

// Wrap treats fp as gzipped. It should be happy with an http stream.
func Wrap(fp io.ReadCloser) (*FpZ, error) {
	gz, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpZ{fp: fp, zrdr: gz, gz: gz, src: cmmn.GzipSrc}, nil
}

// WrapXz treats fp as xz compressed.
func WrapXz(fp io.ReadCloser) (*FpZ, error) {
	xr, err := xz.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpZ{fp: fp, zrdr: xr, src: cmmn.XzSrc}, nil
}

// ReadSeekCloser does not seem to be in the standard library
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// Sniff reads the first few bytes and says what sort of compression
// we are looking at. The position is put back to the start.
func Sniff(fp io.ReadSeeker) (byte, error) {
	head := make([]byte, len(xzMagic))
	n, err := io.ReadFull(fp, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return cmmn.PlainSrc, err
	}
	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		return cmmn.PlainSrc, err
	}
	head = head[:n]
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return cmmn.GzipSrc, nil
	case bytes.HasPrefix(head, xzMagic):
		return cmmn.XzSrc, nil
	}
	return cmmn.PlainSrc, nil
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// You do lose something. If you pass in something which can seek,
// you get back a ReadCloser which cannot seek.
// If the magic number is there but the header is broken, that is an
// error.
func WrapMaybe(fpIn ReadSeekCloser) (*FpZ, error) {
	src, err := Sniff(fpIn)
	if err != nil {
		return nil, err
	}
	var out *FpZ
	switch src {
	case cmmn.GzipSrc:
		out, err = Wrap(fpIn)
	case cmmn.XzSrc:
		out, err = WrapXz(fpIn)
	default:
		return &FpZ{fp: fpIn, src: cmmn.PlainSrc}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s header: %w", cmmn.SrcName(src), err)
	}
	return out, nil
}
