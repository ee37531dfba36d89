package commands

import (
	"flag"
	"fmt"
	"time"

	"github.com/virtbuild/guestprep/internal/assets"
	"github.com/virtbuild/guestprep/internal/config"
	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/remote"
)

func CreatePushCommand() *PushCommand {
	gc := &PushCommand{
		fs: flag.NewFlagSet("push", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.host, "host", "", "Guest address to connect to")
	gc.fs.StringVar(&gc.user, "user", "", "Remote user (overrides ssh.user)")
	gc.fs.BoolVar(&gc.tool, "tool", false, "Resolve the local path below the data dir's guesttools/ directory")

	return gc
}

// PushCommand uploads a local file into a guest over SCP, creating the
// remote parent directory first.
type PushCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	host   string
	user   string
	tool   bool
	local  string
	remote string
}

func (g *PushCommand) Name() string {
	return g.fs.Name()
}

func (g *PushCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.host == "" {
		return fmt.Errorf("push requires -host")
	}
	if g.fs.NArg() != 2 {
		return fmt.Errorf("push requires local and remote path arguments")
	}
	g.local = g.fs.Arg(0)
	g.remote = g.fs.Arg(1)

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	if g.tool {
		local, err := assets.NewStore(g.cfg.General.DataDir).GuestToolsPath(g.local)
		if err != nil {
			return err
		}
		g.local = local
	}

	return nil
}

func (g *PushCommand) Run() error {
	user := g.cfg.SSH.User
	if g.user != "" {
		user = g.user
	}

	client := &remote.Client{
		Addr:    g.host,
		User:    user,
		KeyPath: g.cfg.SSH.PrivateKey,
		Timeout: time.Duration(g.cfg.SSH.ConnectTimeout) * time.Second,
	}

	log.Infof("Uploading %s to %s:%s", g.local, g.host, g.remote)

	if err := client.Upload(g.local, g.remote); err != nil {
		return apperrors.NewSSHError(
			fmt.Sprintf("failed to upload %s to %s", g.local, g.host), err)
	}

	return nil
}
