// Package hashing computes digests of data streams.
//
// It provides reader proxies that hash everything read through them, so
// downloads can be checksummed without a second pass over the data, plus
// a whole-file digest helper for verifying media already on disk.
package hashing
