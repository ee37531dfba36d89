package remote

import (
	"fmt"
	"path"
	"time"
)

const (
	defaultUser           = "root"
	defaultConnectTimeout = 10 * time.Second
)

// Client executes commands on a guest and uploads files to it.
type Client struct {
	Addr    string
	User    string
	KeyPath string
	Timeout time.Duration
}

func (c *Client) user() string {
	if c.User == "" {
		return defaultUser
	}
	return c.User
}

func (c *Client) target() string {
	return c.user() + "@" + c.Addr
}

// commonOptions is the hardened option set shared by ssh and scp:
// ServerAliveInterval keeps NAT firewalls from dropping long-running
// commands with no output, -F /dev/null ignores global and per-user
// configuration, and PasswordAuthentication=no prevents falling back to
// interactive password prompts.
func (c *Client) commonOptions() []string {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	var opts []string
	if c.KeyPath != "" {
		opts = append(opts, "-i", c.KeyPath)
	}

	return append(opts,
		"-F", "/dev/null",
		"-o", "ServerAliveInterval=30",
		"-o", "StrictHostKeyChecking=no",
		"-o", fmt.Sprintf("ConnectTimeout=%d", int(timeout.Seconds())),
		"-o", "UserKnownHostsFile=/dev/null",
		"-o", "PasswordAuthentication=no",
	)
}

// Execute runs command on the guest and returns its stdout.
func (c *Client) Execute(command string) ([]byte, error) {
	args := append(c.commonOptions(), c.target(), command)

	stdout, _, err := Run("ssh", args...)
	if err != nil {
		return stdout, fmt.Errorf("ssh to %s failed: %w", c.Addr, err)
	}
	return stdout, nil
}

// Upload copies localPath to remotePath on the guest, creating the
// remote parent directory first.
func (c *Client) Upload(localPath, remotePath string) error {
	if _, err := c.Execute("mkdir -p " + path.Dir(remotePath)); err != nil {
		return err
	}

	args := append(c.commonOptions(), localPath, c.target()+":"+remotePath)

	if _, _, err := Run("scp", args...); err != nil {
		return fmt.Errorf("scp to %s failed: %w", c.Addr, err)
	}
	return nil
}
