package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/virtbuild/guestprep/internal/fsutil"
	"github.com/virtbuild/guestprep/internal/hashing"
	"github.com/virtbuild/guestprep/internal/log"
	"github.com/virtbuild/guestprep/internal/sumfile"
	"github.com/virtbuild/guestprep/internal/utils"
)

// Download fetches rawURL into destDir, streaming the body through a
// digest proxy. Returns the local file path and the computed hex digest.
func Download(rawURL, destDir string, spec sumfile.DigestSpec) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid media URL: %w", err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", "", fmt.Errorf("media URL %s has no file name", rawURL)
	}

	if err := fsutil.EnsureDir(destDir); err != nil {
		return "", "", err
	}

	log.Infof("Downloading %s", rawURL)

	client := &http.Client{}
	resp, err := client.Get(rawURL)
	if err != nil {
		return "", "", fmt.Errorf("failed to download %s: %w", rawURL, err)
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to download %s: %s", rawURL, resp.Status)
	}

	proxy, err := hashing.NewReaderProxy(resp.Body, spec)
	if err != nil {
		return "", "", err
	}

	filePath := filepath.Join(destDir, name)
	out, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create %s: %w", filePath, err)
	}

	written, err := io.Copy(out, proxy)
	if err != nil {
		utils.CloseOrWarn(out)
		return "", "", fmt.Errorf("failed to write %s: %w", filePath, err)
	}
	if err := out.Close(); err != nil {
		return "", "", fmt.Errorf("failed to close %s: %w", filePath, err)
	}

	digest := proxy.Sum()
	log.Infof("Downloaded %s (%d bytes, %s %s)", filePath, written, spec.Name, digest)

	return filePath, digest, nil
}
