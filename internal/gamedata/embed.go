// Package gamedata provides embedded tuning data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds all YAML tuning files from this directory at build time.
//
//go:embed *.yaml
var dataFS embed.FS
