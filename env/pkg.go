// Package env provides environment configuration utilities.
package env

import (
	"fmt"
	"os"

	"github.com/samber/lo"
)

const _GO_MODE_ENV_KEY = "GO_MODE"

var allowedModes = []string{"development", "production", "debug"}

// GoEnv captures the run mode of the process, read once from GO_MODE.
// An unset GO_MODE counts as production so that informational output
// appears for real users but can be silenced in tests.
type GoEnv struct {
	goEnv       string
	goEnvExists bool
}

func NewGoEnv() (GoEnv, error) {
	goEnv, ok := os.LookupEnv(_GO_MODE_ENV_KEY)

	if goEnv != "" && !lo.Contains(allowedModes, goEnv) {
		return GoEnv{}, fmt.Errorf("wrong go mode the only allowed modes are %v", allowedModes)
	}

	return GoEnv{goEnv, ok}, nil
}

// Mode returns the current mode string (e.g., "production", "development").
func (e GoEnv) Mode() string {
	return e.goEnv
}

func (e GoEnv) IsDebugMode() bool {
	return e.goEnv == "debug"
}

func (env GoEnv) IsDevelopmentMode() bool {
	return env.goEnv == "development"
}

func (env GoEnv) IsProductionMode() bool {
	return env.goEnv == "production" || !env.goEnvExists
}

func (env GoEnv) ExecuteIfModeIsProduction(cb func()) {
	if env.IsProductionMode() {
		cb()
	}
}
