// Package commands implements the guestprep CLI subcommands. Each
// command owns a flag.FlagSet and follows the Init/Run lifecycle driven
// by main.
package commands
