package log

import "testing"

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("Expected verbose to be enabled")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("Expected verbose to be disabled")
	}
}

func TestDisableLogs(t *testing.T) {
	if IsDisabled() {
		t.Error("Expected logs to be enabled by default")
	}

	DisableLogs()
	defer func() { disableLogs = false }()

	if !IsDisabled() {
		t.Error("Expected logs to be disabled")
	}

	// Must not panic or write when disabled
	Infof("suppressed %s", "message")
	Errorf("suppressed %s", "message")
}
