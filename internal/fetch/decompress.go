package fetch

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/utils"
)

// Decompress unpacks gzip or zstd compressed media next to the archive
// and returns the unpacked path. Paths without a recognized compression
// suffix are returned unchanged.
func Decompress(path string) (string, error) {
	var target string
	switch {
	case strings.HasSuffix(path, ".gz"):
		target = strings.TrimSuffix(path, ".gz")
	case strings.HasSuffix(path, ".zst"):
		target = strings.TrimSuffix(path, ".zst")
	default:
		return path, nil
	}

	in, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer utils.CloseOrWarn(in)

	var reader io.Reader
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(in)
		if err != nil {
			return "", fmt.Errorf("failed to read gzip header of %s: %w", path, err)
		}
		defer utils.CloseOrWarn(gz)
		reader = gz
	} else {
		zr, err := zstd.NewReader(in)
		if err != nil {
			return "", fmt.Errorf("failed to open zstd stream of %s: %w", path, err)
		}
		defer zr.Close()
		reader = zr
	}

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}

	written, err := io.Copy(out, reader)
	if err != nil {
		utils.CloseOrWarn(out)
		return "", fmt.Errorf("failed to decompress %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", target, err)
	}

	log.Infof("Decompressed %s -> %s (%d bytes)", path, target, written)
	return target, nil
}
