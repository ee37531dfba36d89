package fetch

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/virtbuild/guestprep/internal/hashing"
	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/sumfile"
)

// ErrDigestMismatch is returned by Verify when the media digest does not
// match the one recorded in the manifest.
var ErrDigestMismatch = errors.New("digest mismatch")

// Verify checks mediaPath against the digest recorded for its base name
// in the manifest at manifestPath. Manifests mix digest case in the
// wild, so the comparison is case-insensitive. A missing manifest entry
// surfaces as sumfile.ErrNotFound.
func Verify(mediaPath, manifestPath string, spec sumfile.DigestSpec) error {
	name := filepath.Base(mediaPath)

	want, err := sumfile.FindDigest(manifestPath, name, spec)
	if err != nil {
		return fmt.Errorf("failed to look up %s in %s: %w", name, manifestPath, err)
	}

	got, err := hashing.FileDigest(mediaPath, spec)
	if err != nil {
		return fmt.Errorf("failed to checksum %s: %w", mediaPath, err)
	}

	if !strings.EqualFold(want, got) {
		return fmt.Errorf("%w for %s: manifest has %s, file is %s", ErrDigestMismatch, name, want, got)
	}

	log.Infof("Verified %s (%s %s)", mediaPath, spec.Name, got)
	return nil
}
