package commands

import (
	"errors"
	"flag"
	"fmt"

	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/sumfile"
)

func CreateChecksumCommand() *ChecksumCommand {
	gc := &ChecksumCommand{
		fs: flag.NewFlagSet("checksum", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.manifest, "manifest", "", "Path to the checksum manifest file")
	gc.fs.StringVar(&gc.algo, "algo", "md5", "Digest algorithm (md5, sha1, sha256)")

	return gc
}

// ChecksumCommand looks up the expected digest for a file in a
// BSD-style or GNU-style checksum manifest.
type ChecksumCommand struct {
	fs *flag.FlagSet

	manifest string
	algo     string
	filename string
}

func (g *ChecksumCommand) Name() string {
	return g.fs.Name()
}

func (g *ChecksumCommand) Init(args []string, _ *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.manifest == "" {
		return fmt.Errorf("checksum requires -manifest")
	}
	if g.fs.NArg() != 1 {
		return fmt.Errorf("checksum requires exactly one file name argument")
	}
	g.filename = g.fs.Arg(0)

	return nil
}

func (g *ChecksumCommand) Run() error {
	spec, ok := sumfile.SpecByName(g.algo)
	if !ok {
		return fmt.Errorf("unknown digest algorithm: %s", g.algo)
	}

	digest, err := sumfile.FindDigest(g.manifest, g.filename, spec)
	if err != nil {
		if errors.Is(err, sumfile.ErrNotFound) {
			return apperrors.NewSumfileError(
				fmt.Sprintf("no %s entry for %s in %s", spec.Name, g.filename, g.manifest), err)
		}
		return err
	}

	fmt.Println(digest)
	return nil
}
