// Command dynstategen generates the Vulkan dynamic state helpers.
//
// Usage:
//
//	dynstategen <command> [options]
//
// Examples:
//
//	dynstategen generate --registry vk.xml --out layers/vulkan/generated
//	dynstategen generate dynamic_state_helper.h   # Header only
//	dynstategen list --yaml > registry/builtin.yaml
//	dynstategen describe DEPTH_BIAS CULL_MODE
//	dynstategen check --registry vk.xml --strict
//
// Defaults come from DYNSTATE_* environment variables; flags override them.
package main

import (
	"os"

	"github.com/gogpu/dynstate/internal/config"
)

const dynstateVersion = "0.1.0-dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("dynstategen: %v", err)
	}

	root := newRootCmd(cfg)
	root.SetOut(os.Stdout)
	if err := root.Execute(); err != nil {
		config.Exitf("dynstategen: %v", err)
	}
}
