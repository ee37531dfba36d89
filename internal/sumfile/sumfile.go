package sumfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/virtbuild/guestprep/internal/utils"
)

// ErrNotFound is returned by FindDigest when the manifest contains no
// entry for the requested filename.
var ErrNotFound = errors.New("no manifest entry for file")

// FindDigest scans the manifest at path for an entry whose filename is a
// byte-exact match of filename and returns its recorded hex digest. Lines
// are processed in file order and the first match wins; malformed lines
// are skipped. Returns ErrNotFound if no line matches.
func FindDigest(path, filename string, spec DigestSpec) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open manifest: %w", err)
	}
	defer utils.CloseOrWarn(f)

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		digest, name, ok := splitLine(sc.Text(), spec)
		if !ok {
			continue
		}
		if name == filename {
			return digest, nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("failed to read manifest: %w", err)
	}

	return "", ErrNotFound
}

// FindMD5 looks up the MD5 digest recorded for filename.
func FindMD5(path, filename string) (string, error) {
	return FindDigest(path, filename, MD5)
}

// FindSHA1 looks up the SHA1 digest recorded for filename.
func FindSHA1(path, filename string) (string, error) {
	return FindDigest(path, filename, SHA1)
}

// FindSHA256 looks up the SHA256 digest recorded for filename.
func FindSHA256(path, filename string) (string, error) {
	return FindDigest(path, filename, SHA256)
}
