package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/virtbuild/guestprep/internal/config"
	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/remote"
)

func CreateRunCommand() *RunCommand {
	gc := &RunCommand{
		fs: flag.NewFlagSet("run", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.host, "host", "", "Guest address to connect to")
	gc.fs.StringVar(&gc.user, "user", "", "Remote user (overrides ssh.user)")

	return gc
}

// RunCommand executes a command inside a guest over SSH using the
// hardened non-interactive option set.
type RunCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	host    string
	user    string
	command string
}

func (g *RunCommand) Name() string {
	return g.fs.Name()
}

func (g *RunCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.host == "" {
		return fmt.Errorf("run requires -host")
	}
	if g.fs.NArg() < 1 {
		return fmt.Errorf("run requires a command to execute")
	}
	g.command = strings.Join(g.fs.Args(), " ")

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *RunCommand) client() *remote.Client {
	user := g.cfg.SSH.User
	if g.user != "" {
		user = g.user
	}

	return &remote.Client{
		Addr:    g.host,
		User:    user,
		KeyPath: g.cfg.SSH.PrivateKey,
		Timeout: time.Duration(g.cfg.SSH.ConnectTimeout) * time.Second,
	}
}

func (g *RunCommand) Run() error {
	stdout, err := g.client().Execute(g.command)

	// Guest output is forwarded even when the command fails.
	_, _ = os.Stdout.Write(stdout)

	if err != nil {
		var exitErr *remote.ExitError
		if errors.As(err, &exitErr) {
			_, _ = os.Stderr.WriteString(exitErr.Stderr)
		}
		return apperrors.NewSSHError(
			fmt.Sprintf("command failed on %s", g.host), err)
	}

	return nil
}
