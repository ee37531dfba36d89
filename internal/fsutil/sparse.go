package fsutil

import (
	"fmt"
	"io"
	"os"

	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/utils"
	"golang.org/x/sys/unix"
)

// minCopyBufSize matches io_blksize() in coreutils.
const minCopyBufSize = 32 * 1024

// CopySparse copies src to dst, turning all-zero blocks into holes the
// way coreutils cp does. The copy buffer is the larger of 32KiB and the
// source filesystem block size. dst is truncated to the copied length.
func CopySparse(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer utils.CloseOrWarn(in)

	var st unix.Stat_t
	if err := unix.Fstat(int(in.Fd()), &st); err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	bufSize := minCopyBufSize
	if int(st.Blksize) > bufSize {
		bufSize = int(st.Blksize)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open destination: %w", err)
	}

	log.Debugf("Sparse copy %s -> %s (block size %d)", src, dst, bufSize)

	buf := make([]byte, bufSize)
	var written int64
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			chunk := buf[:n]
			if isZeroBlock(chunk) {
				if _, err := out.Seek(int64(n), io.SeekCurrent); err != nil {
					utils.CloseOrWarn(out)
					return fmt.Errorf("failed to seek destination: %w", err)
				}
			} else {
				if _, err := out.Write(chunk); err != nil {
					utils.CloseOrWarn(out)
					return fmt.Errorf("failed to write destination: %w", err)
				}
			}
			written += int64(n)
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			utils.CloseOrWarn(out)
			return fmt.Errorf("failed to read source: %w", rerr)
		}
	}

	// Skipped trailing zero blocks left the file short; fix the length.
	if err := out.Truncate(written); err != nil {
		utils.CloseOrWarn(out)
		return fmt.Errorf("failed to truncate destination: %w", err)
	}

	return out.Close()
}

func isZeroBlock(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
