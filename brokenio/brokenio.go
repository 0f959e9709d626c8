// brokenio is a wrapper around an io.Reader. It allows us to set
// rates of failed read operations and to chop reads into small pieces.
// Typical use: You get a file pointer or a reader from a compressed
// source. You write
// reader = brokenio.NewReader(reader, seed) to wrap the old reader.
// Everything then functions as before, but with artificial problems.
// When we introduce a failure on the first read, we return io.EOF
// without an error. This is what one sees on a zero length file.

package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is the error we make up
var ErrBroken = errors.New("brokenio: artificial read failure")

// A Reader is modelled on the various Readers in the standard library,
// but with variables controlling the frequency of errors.
// Probabilities are the fraction of calls where something happens, so
// 0.05 means 5% of the cases.
type Reader struct {
	rdrOrig      io.Reader
	rnd          *rand.Rand
	probZeroFile float32 // first read says there is nothing
	probFail     float32 // a read returns ErrBroken
	maxRead      int     // if > 0, never return more than this
	nCalled      int
	nByte        int
}

// NewReader returns a wrapper around rIn which, until told otherwise,
// does nothing. seed makes the failures repeatable.
func NewReader(rIn io.Reader, seed int64) *Reader {
	return &Reader{rdrOrig: rIn, rnd: rand.New(rand.NewSource(seed))}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetMaxRead makes every read short, at most n bytes.
func (r *Reader) SetMaxRead(n int) { r.maxRead = n }

// Read passes the call on, after deciding if it should go wrong.
// A failure comes after the data has been read, so n may be > 0 with
// the error, as io.Reader allows.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	if r.maxRead > 0 && len(p) > r.maxRead {
		p = p[:r.maxRead]
	}
	n, err := r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if err == nil && r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return n, fmt.Errorf("after %d bytes: %w", r.nByte, ErrBroken)
	}
	return n, err
}

// Stats says how many calls there were and how many bytes went through.
func (r *Reader) Stats() (nCalled, nByte int) { return r.nCalled, r.nByte }
