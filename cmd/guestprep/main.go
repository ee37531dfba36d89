package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/virtbuild/guestprep/internal/commands"
	"github.com/virtbuild/guestprep/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/etc/guestprep/guestprep.toml", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Guest Provisioning Toolkit\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  checksum                Look up a file's digest in a checksum manifest\n")
		fmt.Fprintf(os.Stderr, "  verify                  Verify a media file against a checksum manifest\n")
		fmt.Fprintf(os.Stderr, "  fetch                   Download install media into the media directory\n")
		fmt.Fprintf(os.Stderr, "  copy                    Sparse-copy a disk image\n")
		fmt.Fprintf(os.Stderr, "  render                  Render template variables in an install asset\n")
		fmt.Fprintf(os.Stderr, "  mac                     Generate random guest MAC addresses\n")
		fmt.Fprintf(os.Stderr, "  interfaces              List host network interfaces\n")
		fmt.Fprintf(os.Stderr, "  resolve                 Resolve a guest hostname via DNS\n")
		fmt.Fprintf(os.Stderr, "  run                     Execute a command in a guest over SSH\n")
		fmt.Fprintf(os.Stderr, "  push                    Upload a file into a guest over SCP\n")
		fmt.Fprintf(os.Stderr, "  serve                   Serve guest assets over HTTP\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateChecksumCommand(),
		commands.CreateVerifyCommand(),
		commands.CreateFetchCommand(),
		commands.CreateCopyCommand(),
		commands.CreateRenderCommand(),
		commands.CreateMACCommand(),
		commands.CreateInterfacesCommand(),
		commands.CreateResolveCommand(),
		commands.CreateRunCommand(),
		commands.CreatePushCommand(),
		commands.CreateServeCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
