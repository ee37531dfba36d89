// Package utils provides small shared helpers for guestprep.
//
// It contains path resolution, safe file closing, existence checks and
// the loose boolean parsing used by unattended-install descriptions.
package utils
