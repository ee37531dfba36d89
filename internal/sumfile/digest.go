package sumfile

import "strings"

// DigestSpec identifies a checksum algorithm by the name that prefixes
// BSD-style manifest lines and by its digest width in bits.
type DigestSpec struct {
	Name string
	Bits int
}

var (
	MD5    = DigestSpec{Name: "MD5", Bits: 128}
	SHA1   = DigestSpec{Name: "SHA1", Bits: 160}
	SHA256 = DigestSpec{Name: "SHA256", Bits: 256}
)

// HexLen returns the number of hex digits in a digest of this width.
func (s DigestSpec) HexLen() int {
	return s.Bits / 4
}

// SpecByName resolves an algorithm name (case-insensitive) to its spec.
func SpecByName(name string) (DigestSpec, bool) {
	switch strings.ToUpper(name) {
	case MD5.Name:
		return MD5, true
	case SHA1.Name:
		return SHA1, true
	case SHA256.Name:
		return SHA256, true
	}
	return DigestSpec{}, false
}
