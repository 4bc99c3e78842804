// Package build_info defines all the build info that this repo needs.
// All variables must be capitalised and must use the `BuildInfo` type.
// All validation of individual values is handled by the init function.
package build_info

import (
	"fmt"
	"regexp"
)

// BuildInfo is a type alias for string, ensuring consistency.
type BuildInfo string

func (value BuildInfo) String() string {
	return string(value)
}

// Populated by -ldflags on release builds; the defaults cover local development.
var (
	rawCLI_VERSION = "0.4.0"
	rawBUILD_DATE  = "unknown"
)

var CLI_VERSION BuildInfo
var BUILD_DATE BuildInfo

const semverRegex = `^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-((?:0|[1-9]\d*|[0-9]*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|[0-9]*[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`

func init() {
	if !regexp.MustCompile(semverRegex).MatchString(rawCLI_VERSION) {
		panic(fmt.Sprintf("The CLI version must be a valid semver string, got %q", rawCLI_VERSION))
	}

	CLI_VERSION = BuildInfo(rawCLI_VERSION)
	BUILD_DATE = BuildInfo(rawBUILD_DATE)
}
