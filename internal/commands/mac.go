package commands

import (
	"flag"
	"fmt"

	"github.com/virtbuild/guestprep/internal/netutil"
)

func CreateMACCommand() *MACCommand {
	gc := &MACCommand{
		fs: flag.NewFlagSet("mac", flag.ExitOnError),
	}

	gc.fs.IntVar(&gc.count, "count", 1, "Number of addresses to generate")

	return gc
}

// MACCommand prints random guest MAC addresses in the QEMU/KVM
// locally-administered range.
type MACCommand struct {
	fs *flag.FlagSet

	count int
}

func (g *MACCommand) Name() string {
	return g.fs.Name()
}

func (g *MACCommand) Init(args []string, _ *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	return nil
}

func (g *MACCommand) Run() error {
	for i := 0; i < g.count; i++ {
		mac, err := netutil.GenerateMAC()
		if err != nil {
			return err
		}
		fmt.Println(mac)
	}
	return nil
}
