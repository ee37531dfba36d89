package commands

import (
	"errors"
	"flag"
	"fmt"

	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/fetch"
	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/sumfile"
)

func CreateVerifyCommand() *VerifyCommand {
	gc := &VerifyCommand{
		fs: flag.NewFlagSet("verify", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.manifest, "manifest", "", "Path to the checksum manifest file")
	gc.fs.StringVar(&gc.algo, "algo", "md5", "Digest algorithm (md5, sha1, sha256)")

	return gc
}

// VerifyCommand hashes a local media file and compares the digest
// against the entry for it in a checksum manifest.
type VerifyCommand struct {
	fs *flag.FlagSet

	manifest string
	algo     string
	media    string
}

func (g *VerifyCommand) Name() string {
	return g.fs.Name()
}

func (g *VerifyCommand) Init(args []string, _ *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.manifest == "" {
		return fmt.Errorf("verify requires -manifest")
	}
	if g.fs.NArg() != 1 {
		return fmt.Errorf("verify requires exactly one media file argument")
	}
	g.media = g.fs.Arg(0)

	return nil
}

func (g *VerifyCommand) Run() error {
	spec, ok := sumfile.SpecByName(g.algo)
	if !ok {
		return fmt.Errorf("unknown digest algorithm: %s", g.algo)
	}

	if err := fetch.Verify(g.media, g.manifest, spec); err != nil {
		if errors.Is(err, fetch.ErrDigestMismatch) || errors.Is(err, sumfile.ErrNotFound) {
			return apperrors.NewFetchError(
				fmt.Sprintf("verification of %s failed", g.media), err)
		}
		return err
	}

	log.Infof("%s: %s digest OK", g.media, spec.Name)
	return nil
}
