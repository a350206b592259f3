package main

import (
	"os"

	"github.com/lox/gtobot/internal/fileutil"
)

type ConfigCmd struct {
	Output string `short:"o" help:"Write the configuration to a file instead of stdout" type:"path"`
}

// Run prints the effective policy configuration: defaults overlaid with the
// configuration file, in the file's own format.
func (c *ConfigCmd) Run(g *Globals) error {
	cfg, err := g.policyConfig()
	if err != nil {
		return err
	}
	data := cfg.MarshalHCL()
	if c.Output != "" {
		return fileutil.WriteFileAtomic(c.Output, data, 0o644)
	}
	_, err = os.Stdout.Write(data)
	return err
}
