// Package fs implements filesystem-backed input fingerprinting.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher fingerprints the inputs that feed a carthage run.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the argument vector and the manifest file contents.
// A missing resolved manifest is hashed as an absence marker so that its
// later appearance changes the fingerprint.
func (h *Hasher) Fingerprint(layout domain.Layout, argv []string) (string, error) {
	digest := xxhash.New()

	for _, arg := range argv {
		_, _ = digest.WriteString(arg)
		_, _ = digest.Write([]byte{0})
	}
	_, _ = digest.Write([]byte{0})

	for _, path := range []string{layout.CartfilePath(), layout.ResolvedCartfilePath()} {
		if err := hashFile(digest, path); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func hashFile(digest *xxhash.Digest, path string) error {
	f, err := os.Open(path) //nolint:gosec // manifest path derived from project layout
	if err != nil {
		if os.IsNotExist(err) {
			_, _ = digest.Write([]byte{0})
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to open manifest"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	_, _ = digest.Write([]byte{1})
	if _, err := io.Copy(digest, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to hash manifest"), "path", path)
	}
	_, _ = digest.Write([]byte{0})

	return nil
}
