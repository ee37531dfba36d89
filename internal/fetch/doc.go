// Package fetch downloads install media and verifies it against checksum
// manifests. Downloads are streamed through a digest proxy so the
// checksum of the payload is known without a second pass; at-rest media
// is verified by comparing its computed digest with the one recorded in
// a manifest.
package fetch
