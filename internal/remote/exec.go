// Package remote runs local subprocesses and drives guests over the
// system OpenSSH binaries. Shelling out to ssh/scp (rather than using an
// in-process SSH client) keeps OpenSSH's key handling, agent support and
// option semantics.
package remote

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/virtbuild/guestprep/internal/log"
)

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Cmd    string
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("'%s' failed (%d): %s", e.Cmd, e.Code, strings.TrimSpace(e.Stderr))
}

// Run executes a command with captured stdout and stderr. The executable
// must be resolvable in PATH. A non-zero exit status is returned as an
// *ExitError carrying the exit code and stderr.
func Run(name string, args ...string) (stdout, stderr []byte, err error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, nil, fmt.Errorf("could not find %s: %w", name, err)
	}

	log.Debugf("Running: %s %s", name, strings.Join(args, " "))

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(path, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return outBuf.Bytes(), errBuf.Bytes(), &ExitError{
				Cmd:    name + " " + strings.Join(args, " "),
				Code:   ee.ExitCode(),
				Stderr: errBuf.String(),
			}
		}
		return outBuf.Bytes(), errBuf.Bytes(), fmt.Errorf("failed to run %s: %w", name, err)
	}

	return outBuf.Bytes(), errBuf.Bytes(), nil
}
