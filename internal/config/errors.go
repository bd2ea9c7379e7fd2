// Package config loads wfinit options from layered sources: built-in
// defaults, an optional YAML or JSON options file, WFINIT_* environment
// variables and command-line flags, in increasing priority.
package config

import "errors"

// Sentinel errors for option loading.
var (
	// ErrOptionsFileNotFound indicates the file named by --config does not exist.
	ErrOptionsFileNotFound = errors.New("config: options file not found")

	// ErrUnsupportedFormat indicates an options file extension other than .yml, .yaml or .json.
	ErrUnsupportedFormat = errors.New("config: unsupported options file format")
)
