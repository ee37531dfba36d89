package utils

import "testing"

func TestParseBoolish_True(t *testing.T) {
	for _, s := range []string{"yes", "true", "Yes", "TRUE", "yEs"} {
		value, ok := ParseBoolish(s)
		if !ok {
			t.Errorf("Expected %q to be recognized", s)
		}
		if !value {
			t.Errorf("Expected %q to parse as true", s)
		}
	}
}

func TestParseBoolish_False(t *testing.T) {
	for _, s := range []string{"no", "false", "No", "FALSE"} {
		value, ok := ParseBoolish(s)
		if !ok {
			t.Errorf("Expected %q to be recognized", s)
		}
		if value {
			t.Errorf("Expected %q to parse as false", s)
		}
	}
}

func TestParseBoolish_Unrecognized(t *testing.T) {
	for _, s := range []string{"", "maybe", "1", "0", "y", "n"} {
		if _, ok := ParseBoolish(s); ok {
			t.Errorf("Expected %q to be unrecognized", s)
		}
	}
}
