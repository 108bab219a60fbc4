// Package config provides configuration loading and defaults for savepaths.
package config

// DefaultConfigDir is the default location for savepaths configuration.
const DefaultConfigDir = "~/.config/savepaths"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultOS is the default target OS tag; empty means unknown.
const DefaultOS = ""

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color:     true,
	JSON:      false,
	CellWidth: 80,
}

// DefaultManifest holds the default manifest processing settings.
var DefaultManifest = Manifest{
	Workers:      4,
	KeepUnusable: false,
}
