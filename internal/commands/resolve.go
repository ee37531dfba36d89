package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/netutil"
)

func CreateResolveCommand() *ResolveCommand {
	gc := &ResolveCommand{
		fs: flag.NewFlagSet("resolve", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.server, "server", "127.0.0.1", "DNS server to query (host or host:port)")
	gc.fs.IntVar(&gc.timeout, "timeout", 10, "Query timeout in seconds")

	return gc
}

// ResolveCommand queries a DNS server (typically the dnsmasq instance
// serving the guest network) for a guest's IPv4 address.
type ResolveCommand struct {
	fs *flag.FlagSet

	server   string
	timeout  int
	hostname string
}

func (g *ResolveCommand) Name() string {
	return g.fs.Name()
}

func (g *ResolveCommand) Init(args []string, _ *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() != 1 {
		return fmt.Errorf("resolve requires exactly one hostname argument")
	}
	g.hostname = g.fs.Arg(0)

	return nil
}

func (g *ResolveCommand) Run() error {
	resolver, err := netutil.NewResolver(g.server)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(g.timeout)*time.Second)
	defer cancel()

	ip, err := resolver.GuestAddr(ctx, g.hostname)
	if err != nil {
		return apperrors.NewNetworkError(
			fmt.Sprintf("failed to resolve %s via %s", g.hostname, g.server), err)
	}

	fmt.Println(ip.String())
	return nil
}
