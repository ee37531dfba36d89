package utils

import "strings"

// ParseBoolish interprets the yes/no answers found in install descriptions.
// "yes" and "true" (any case) are true, "no" and "false" are false.
// The second return value reports whether the input was recognized.
func ParseBoolish(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "yes", "true":
		return true, true
	case "no", "false":
		return false, true
	}
	return false, false
}
