// Package project loads the lisplet.yaml project file describing one
// site: where source pages live, where compiled bundles go and which
// runtime scripts the pages load.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the project file name looked for in the working
// directory.
const DefaultFile = "lisplet.yaml"

// Config describes one lisplet site.
type Config struct {
	// Src is the directory scanned for source pages.
	Src string `yaml:"src"`

	// Out is the directory compiled bundles are written to.
	Out string `yaml:"out"`

	// JS is the URI of the compiled runtime script injected into every
	// page.
	JS string `yaml:"js"`

	// Base is the URI of the module loader's base script. When set,
	// pages boot through the loader instead of a standalone script.
	Base string `yaml:"base"`
}

// Default returns the configuration used when no project file exists.
func Default() Config {
	return Config{
		Src: ".",
		Out: "public",
		JS:  "main.js",
	}
}

// Load reads the project file at path and overlays it on the defaults.
// A missing file is not an error; the defaults come back unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read project file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg.Override(file), nil
}

// Override returns the configuration with every non-empty field of o
// replacing the current value.
func (c Config) Override(o Config) Config {
	if o.Src != "" {
		c.Src = o.Src
	}
	if o.Out != "" {
		c.Out = o.Out
	}
	if o.JS != "" {
		c.JS = o.JS
	}
	if o.Base != "" {
		c.Base = o.Base
	}

	return c
}
