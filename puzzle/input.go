package puzzle

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/highwayhash"
	"github.com/viant/afs"
)

// Loader reads puzzle input from any storage afs understands.
type Loader struct {
	fs afs.Service
}

// NewLoader returns a Loader backed by fs, or by afs.New() when fs is nil.
func NewLoader(fs afs.Service) *Loader {
	if fs == nil {
		fs = afs.New()
	}

	return &Loader{fs: fs}
}

// Load returns the raw bytes at url. Failures wrap both ErrInput and the
// storage error.
func (l *Loader) Load(ctx context.Context, url string) ([]byte, error) {
	data, err := l.fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInput, url, err)
	}

	return data, nil
}

// Exists reports whether url can be found.
func (l *Loader) Exists(ctx context.Context, url string) bool {
	ok, err := l.fs.Exists(ctx, url)
	return err == nil && ok
}

// SplitWireInput checks that text is exactly two wire lines followed by an
// empty line, and returns the two wires.
func SplitWireInput(text string) (a, b string, err error) {
	lines := strings.Split(text, "\n")
	if len(lines) != 3 {
		return "", "", &FormatError{
			Reason: fmt.Sprintf("incorrect number of lines: expected 3, got %d", len(lines)),
		}
	}
	if lines[2] != "" {
		return "", "", &FormatError{Reason: "file should end with an empty line"}
	}

	return lines[0], lines[1], nil
}

// SplitOrbitInput checks that text ends with an empty line and returns every
// line before it. An empty text yields no lines.
func SplitOrbitInput(text string) ([]string, error) {
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] != "" {
		return nil, &FormatError{Reason: "file should end with an empty line"}
	}

	return lines[:len(lines)-1], nil
}

// fingerprintKey is fixed so fingerprints are comparable across runs.
var fingerprintKey = []byte("aoc2019-input-fingerprint-key-32")

// Fingerprint returns a 64-bit HighwayHash of data, logged alongside every
// run so results can be matched to the exact input that produced them.
func Fingerprint(data []byte) (uint64, error) {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}
	if _, err = h.Write(data); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}
