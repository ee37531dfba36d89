package netutil

import (
	"net"
	"strings"
	"testing"
)

func TestGenerateMAC_Format(t *testing.T) {
	mac, err := GenerateMAC()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hw, err := net.ParseMAC(mac)
	if err != nil {
		t.Fatalf("Expected a parseable MAC, got %q: %v", mac, err)
	}
	if len(hw) != 6 {
		t.Errorf("Expected a 48-bit MAC, got %d bytes", len(hw))
	}
}

func TestGenerateMAC_QemuPrefix(t *testing.T) {
	for i := 0; i < 16; i++ {
		mac, err := GenerateMAC()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if !strings.HasPrefix(mac, "52:54:00:") {
			t.Errorf("Expected 52:54:00 prefix, got %s", mac)
		}
	}
}

func TestGenerateMAC_Lowercase(t *testing.T) {
	mac, err := GenerateMAC()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if mac != strings.ToLower(mac) {
		t.Errorf("Expected lowercase MAC, got %s", mac)
	}
}
