// Package sumfile parses checksum manifests and looks up recorded digests.
//
// A manifest is a plain-text file with one checksum per line in one of two
// dialects, detected per line:
//
//   - BSD style: `MD5 (fedora.iso) = d41d8cd98f00b204e9800998ecf8427e`
//   - GNU coreutils style: `d41d8cd98f00b204e9800998ecf8427e  fedora.iso`,
//     optionally with a leading backslash marking an escaped filename and
//     `*` instead of the second space marking binary mode.
//
// Blank lines, `#` comments and lines matching neither grammar are
// skipped. The package only extracts digest/filename pairs; it never
// validates digest values or computes checksums itself.
package sumfile
