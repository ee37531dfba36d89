// Package fsutil provides filesystem helpers for preparing guest images:
// sparse-aware file copying, line-filtered copying and directory creation.
package fsutil
