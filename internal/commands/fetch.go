package commands

import (
	"flag"
	"fmt"
	"net/url"
	"strings"

	"github.com/virtbuild/guestprep/internal/config"
	apperrors "github.com/virtbuild/guestprep/internal/errors"
	"github.com/virtbuild/guestprep/internal/fetch"
	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/sumfile"
)

func CreateFetchCommand() *FetchCommand {
	gc := &FetchCommand{
		fs: flag.NewFlagSet("fetch", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.manifest, "manifest", "", "Verify the download against this checksum manifest")
	gc.fs.StringVar(&gc.algo, "algo", "sha256", "Digest algorithm for -manifest (md5, sha1, sha256)")

	return gc
}

// FetchCommand downloads install media into the configured media
// directory, hashing the stream on the way down. Relative URLs are
// resolved against fetch.mirror_url from the configuration.
type FetchCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	manifest string
	algo     string
	rawURL   string
}

func (g *FetchCommand) Name() string {
	return g.fs.Name()
}

func (g *FetchCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.fs.NArg() != 1 {
		return fmt.Errorf("fetch requires exactly one URL argument")
	}
	g.rawURL = g.fs.Arg(0)

	if cfg, err := loadConfigOrFail(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *FetchCommand) resolveURL() (string, error) {
	u, err := url.Parse(g.rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %v", g.rawURL, err)
	}
	if u.IsAbs() {
		return g.rawURL, nil
	}

	if g.cfg.Fetch.MirrorURL == "" {
		return "", fmt.Errorf("relative URL %s requires fetch.mirror_url in the configuration", g.rawURL)
	}
	return strings.TrimSuffix(g.cfg.Fetch.MirrorURL, "/") + "/" + strings.TrimPrefix(g.rawURL, "/"), nil
}

func (g *FetchCommand) Run() error {
	spec, ok := sumfile.SpecByName(g.algo)
	if !ok {
		return fmt.Errorf("unknown digest algorithm: %s", g.algo)
	}

	fetchURL, err := g.resolveURL()
	if err != nil {
		return err
	}

	log.Infof("Fetching %s", fetchURL)

	mediaPath, digest, err := fetch.Download(fetchURL, g.cfg.Fetch.MediaDir, spec)
	if err != nil {
		return apperrors.NewFetchError(fmt.Sprintf("failed to fetch %s", fetchURL), err)
	}

	log.Infof("Downloaded %s (%s %s)", mediaPath, spec.Name, digest)

	if g.manifest != "" {
		if err := fetch.Verify(mediaPath, g.manifest, spec); err != nil {
			return apperrors.NewFetchError(
				fmt.Sprintf("verification of %s failed", mediaPath), err)
		}
		log.Infof("%s: %s digest OK", mediaPath, spec.Name)
	}

	if g.cfg.Fetch.Decompress {
		finalPath, err := fetch.Decompress(mediaPath)
		if err != nil {
			return apperrors.NewFetchError(
				fmt.Sprintf("failed to decompress %s", mediaPath), err)
		}
		if finalPath != mediaPath {
			log.Infof("Decompressed to %s", finalPath)
			mediaPath = finalPath
		}
	}

	fmt.Println(mediaPath)
	return nil
}
