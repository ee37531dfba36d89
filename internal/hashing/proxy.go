package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/virtbuild/guestprep/internal/sumfile"
	"github.com/virtbuild/guestprep/internal/utils"
)

func newHash(spec sumfile.DigestSpec) (hash.Hash, error) {
	switch spec.Name {
	case sumfile.MD5.Name:
		return md5.New(), nil
	case sumfile.SHA1.Name:
		return sha1.New(), nil
	case sumfile.SHA256.Name:
		return sha256.New(), nil
	}
	return nil, fmt.Errorf("unsupported digest algorithm: %s", spec.Name)
}

// ReaderProxy is a proxy that hashes data as it is read.
type ReaderProxy struct {
	reader   io.Reader
	checksum hash.Hash
}

// NewReaderProxy creates a proxy computing the given digest over reader.
func NewReaderProxy(reader io.Reader, spec sumfile.DigestSpec) (*ReaderProxy, error) {
	h, err := newHash(spec)
	if err != nil {
		return nil, err
	}
	return &ReaderProxy{
		reader:   reader,
		checksum: h,
	}, nil
}

// Read reads data from the underlying reader and updates the digest.
func (p *ReaderProxy) Read(buf []byte) (int, error) {
	n, err := p.reader.Read(buf)
	if n > 0 {
		if _, checksumErr := p.checksum.Write(buf[:n]); checksumErr != nil {
			return n, checksumErr
		}
	}
	return n, err
}

// Sum returns the hex digest of everything read so far.
func (p *ReaderProxy) Sum() string {
	return hex.EncodeToString(p.checksum.Sum(nil))
}

// FileDigest computes the hex digest of the file at path.
func FileDigest(path string, spec sumfile.DigestSpec) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer utils.CloseOrWarn(f)

	proxy, err := NewReaderProxy(f, spec)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return "", err
	}

	return proxy.Sum(), nil
}
