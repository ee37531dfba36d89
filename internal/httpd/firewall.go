package httpd

import (
	"fmt"

	"github.com/coreos/go-iptables/iptables"
	"github.com/virtbuild/guestprep/internal/log"
)

// Firewall manages an INPUT ACCEPT rule for the asset server port.
type Firewall struct {
	port uint16
	ipt  *iptables.IPTables
}

// NewFirewall creates a firewall manager for the given TCP port.
func NewFirewall(port uint16) (*Firewall, error) {
	ipt, err := iptables.NewWithProtocol(iptables.ProtocolIPv4)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize iptables: %w", err)
	}
	return &Firewall{port: port, ipt: ipt}, nil
}

func (f *Firewall) rule() []string {
	return []string{"-p", "tcp", "--dport", fmt.Sprintf("%d", f.port), "-j", "ACCEPT"}
}

// Open inserts the ACCEPT rule unless it is already present.
func (f *Firewall) Open() error {
	log.Debugf("Opening firewall for TCP port %d", f.port)
	if err := f.ipt.AppendUnique("filter", "INPUT", f.rule()...); err != nil {
		return fmt.Errorf("failed to open firewall port %d: %w", f.port, err)
	}
	return nil
}

// Close removes the ACCEPT rule if it exists.
func (f *Firewall) Close() error {
	log.Debugf("Closing firewall for TCP port %d", f.port)
	if err := f.ipt.DeleteIfExists("filter", "INPUT", f.rule()...); err != nil {
		return fmt.Errorf("failed to close firewall port %d: %w", f.port, err)
	}
	return nil
}
