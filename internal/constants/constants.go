// Package constants centralizes tunables shared across the scanner.
package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// DefaultScanTimeout bounds the primary page fetch.
	DefaultScanTimeout = 10 * time.Second
	// DefaultProbeTimeout bounds each auxiliary well-known probe.
	DefaultProbeTimeout = 3 * time.Second
	// DefaultUserAgent identifies the scanner to target sites.
	DefaultUserAgent = "Mozilla/5.0 (compatible; AltCast-Scanner/1.0; +https://altcast.io)"
)
