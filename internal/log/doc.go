// Package log provides simple leveled logging for guestprep.
//
// It implements a lightweight logger with colored output and four levels:
// DEBUG (shown only in verbose mode), INFO, WARN and ERROR. Errors always
// go to stderr; other levels go to stdout unless SetForceStdErr is set,
// which keeps stdout clean for commands that print machine-readable
// results (digests, MAC addresses, resolved IPs).
package log
