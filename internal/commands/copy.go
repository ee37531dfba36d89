package commands

import (
	"flag"
	"fmt"

	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/fsutil"
	"github.com/virtbuild/guestprep/internal/log"
)

func CreateCopyCommand() *CopyCommand {
	gc := &CopyCommand{
		fs: flag.NewFlagSet("copy", flag.ExitOnError),
	}
	return gc
}

// CopyCommand copies a disk image sparsely, punching holes where the
// source contains runs of zero bytes.
type CopyCommand struct {
	fs *flag.FlagSet

	src string
	dst string
}

func (g *CopyCommand) Name() string {
	return g.fs.Name()
}

func (g *CopyCommand) Init(args []string, _ *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() != 2 {
		return fmt.Errorf("copy requires source and destination arguments")
	}
	g.src = g.fs.Arg(0)
	g.dst = g.fs.Arg(1)

	return nil
}

func (g *CopyCommand) Run() error {
	log.Infof("Copying %s to %s (sparse)", g.src, g.dst)

	if err := fsutil.CopySparse(g.src, g.dst); err != nil {
		return apperrors.NewCopyError(
			fmt.Sprintf("failed to copy %s to %s", g.src, g.dst), err)
	}

	return nil
}
