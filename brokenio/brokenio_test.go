package brokenio_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/andrew-torda/pdbinput/brokenio"
)

var longstring = "0123456789012345678901234567890123456789"

// Short reads must not lose anything
func TestMaxRead(t *testing.T) {
	for _, n := range []int{1, 3, 7, 100} {
		rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
		rdr.SetMaxRead(n)
		b, err := io.ReadAll(rdr)
		if err != nil {
			t.Error(err)
		}
		if string(b) != longstring {
			t.Errorf("max %d got %q", n, b)
		}
		nCalled, nByte := rdr.Stats()
		if nByte != len(longstring) {
			t.Errorf("max %d counted %d bytes", n, nByte)
		}
		if n == 1 && nCalled <= len(longstring) {
			t.Errorf("only %d calls with one byte reads", nCalled)
		}
	}
}

func TestFail(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	rdr.SetProbFail(1)
	_, err := io.ReadAll(rdr)
	if !errors.Is(err, brokenio.ErrBroken) {
		t.Error("wanted ErrBroken, got", err)
	}
}

func TestZeroFile(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	rdr.SetProbZeroFile(1)
	b, err := io.ReadAll(rdr)
	if err != nil || len(b) != 0 {
		t.Errorf("wanted nothing, got %q %v", b, err)
	}
}

// Nothing set, nothing changes
func TestPassThrough(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(longstring), 1)
	if b, err := io.ReadAll(rdr); err != nil || string(b) != longstring {
		t.Errorf("got %q %v", b, err)
	}
}
