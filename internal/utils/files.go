package utils

import (
	"io"
	"os"

	"github.com/virtbuild/guestprep/internal/log"
)

// CloseOrWarn closes the given resource and logs a warning on failure.
// Used on cleanup paths where the close error cannot change the outcome.
func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// Exists returns true if the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
