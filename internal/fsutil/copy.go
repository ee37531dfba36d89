package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/virtbuild/guestprep/internal/utils"
)

// EnsureDir creates path and any missing parents. Existing directories
// are not an error.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// CopyModifyLines copies src to dst passing every line through fn. Lines
// are handed to fn with their trailing newline intact so fn controls the
// exact output, including on the final unterminated line.
func CopyModifyLines(src, dst string, fn func(string) string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer utils.CloseOrWarn(in)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	for {
		line, rerr := r.ReadString('\n')
		if line != "" {
			if _, err := w.WriteString(fn(line)); err != nil {
				utils.CloseOrWarn(out)
				return fmt.Errorf("failed to write destination: %w", err)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			utils.CloseOrWarn(out)
			return fmt.Errorf("failed to read source: %w", rerr)
		}
	}

	if err := w.Flush(); err != nil {
		utils.CloseOrWarn(out)
		return fmt.Errorf("failed to flush destination: %w", err)
	}

	return out.Close()
}
