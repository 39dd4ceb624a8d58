package main

import "github.com/fwojciec/gamecat/yaml"

// Run executes the config command.
func (c *ShowConfigCmd) Run(deps *Dependencies) error {
	return yaml.Encode(deps.Stdout, deps.Config)
}
