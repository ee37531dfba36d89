package commands

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/virtbuild/guestprep/internal/assets"
	"github.com/virtbuild/guestprep/internal/config"
	"github.com/virtbuild/guestprep/internal/httpd"
	"github.com/virtbuild/guestprep/internal/log"
)

func CreateServeCommand() *ServeCommand {
	gc := &ServeCommand{
		fs: flag.NewFlagSet("serve", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.listen, "listen", "", "Listen address (overrides general.listen_addr)")

	return gc
}

// ServeCommand runs the guest-facing asset server until interrupted.
type ServeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	listen string
}

func (g *ServeCommand) Name() string {
	return g.fs.Name()
}

func (g *ServeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *ServeCommand) Run() error {
	listen := g.cfg.General.ListenAddr
	if g.listen != "" {
		listen = g.listen
	}

	store := assets.NewStore(g.cfg.General.DataDir)

	server, err := httpd.NewServer(store.Dir(), listen, g.cfg.General.OpenFirewall)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Infof("Received %v, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(shutdownCtx); err != nil {
		return err
	}

	return <-errCh
}
