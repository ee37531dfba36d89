package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/virtbuild/guestprep/internal/netutil"
)

func CreateInterfacesCommand() *InterfacesCommand {
	gc := &InterfacesCommand{
		fs: flag.NewFlagSet("interfaces", flag.ExitOnError),
	}
	return gc
}

// InterfacesCommand lists host network interfaces with their state and
// primary IPv4 address, for picking a bridge or listen interface.
type InterfacesCommand struct {
	fs *flag.FlagSet
}

func (g *InterfacesCommand) Name() string {
	return g.fs.Name()
}

func (g *InterfacesCommand) Init(args []string, _ *AppContext) error {
	return g.fs.Parse(args)
}

func (g *InterfacesCommand) Run() error {
	interfaces, err := netutil.GetInterfaceList()
	if err != nil {
		return fmt.Errorf("failed to get interfaces: %v", err)
	}

	var sb strings.Builder
	for i := range interfaces {
		iface := &interfaces[i]

		state := "down"
		if iface.IsUp() {
			state = "up"
		}

		addr := "-"
		if ip, err := iface.IPv4(); err == nil {
			addr = ip.String()
		}

		flags := ""
		if iface.IsLoopback() {
			flags = " (loopback)"
		}

		sb.WriteString(fmt.Sprintf("%-16s %-5s %s%s\n", iface.Attrs().Name, state, addr, flags))
	}

	fmt.Print(sb.String())
	return nil
}
