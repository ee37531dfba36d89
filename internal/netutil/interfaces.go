package netutil

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// Interface wraps a netlink link for address lookups.
type Interface struct {
	netlink.Link
}

// GetInterface looks up a host interface by name.
func GetInterface(interfaceName string) (*Interface, error) {
	link, err := netlink.LinkByName(interfaceName)
	if err != nil {
		return nil, err
	}
	return &Interface{link}, nil
}

// GetInterfaceList returns all host interfaces.
func GetInterfaceList() ([]Interface, error) {
	links, err := netlink.LinkList()
	if err != nil {
		return nil, err
	}
	var interfaces []Interface
	for _, link := range links {
		interfaces = append(interfaces, Interface{link})
	}
	return interfaces, nil
}

func (iface *Interface) IsUp() bool {
	return iface.Attrs().Flags&net.FlagUp != 0
}

func (iface *Interface) IsLoopback() bool {
	return iface.Attrs().Flags&net.FlagLoopback != 0
}

// IPv4 returns the first IPv4 address assigned to the interface.
func (iface *Interface) IPv4() (net.IP, error) {
	addrs, err := netlink.AddrList(iface.Link, netlink.FAMILY_V4)
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		if ip := addr.IP.To4(); ip != nil {
			return ip, nil
		}
	}
	return nil, fmt.Errorf("interface %s has no IPv4 address", iface.Attrs().Name)
}

// InterfaceIPv4 returns the first IPv4 address of the named interface.
// This is the address guests use to reach the host during install.
func InterfaceIPv4(interfaceName string) (net.IP, error) {
	iface, err := GetInterface(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("failed to find interface %s: %w", interfaceName, err)
	}
	return iface.IPv4()
}
