package netutil

import (
	"crypto/rand"
	"fmt"
)

// macPrefix is the QEMU/KVM locally administered OUI.
var macPrefix = [3]byte{0x52, 0x54, 0x00}

// GenerateMAC returns a random MAC address in the 52:54:00 OUI, suitable
// for assigning to a new guest NIC.
func GenerateMAC() (string, error) {
	var suffix [3]byte
	if _, err := rand.Read(suffix[:]); err != nil {
		return "", fmt.Errorf("failed to generate MAC address: %w", err)
	}

	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		macPrefix[0], macPrefix[1], macPrefix[2],
		suffix[0], suffix[1], suffix[2]), nil
}
