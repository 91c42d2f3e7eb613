package util

import (
	"os"
	"strings"
)

var debugEnvVars = []string{"AZDO_ENVMGR_DEBUG", "AZDO_DEBUG"}

// IsDebugEnabled reports whether debug output was requested through the environment.
// The second return value is the raw setting that enabled it.
func IsDebugEnabled() (bool, string) {
	for _, name := range debugEnvVars {
		debugValue, isDebugSet := os.LookupEnv(name)
		if !isDebugSet {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(debugValue)) {
		case "false", "0", "no", "off", "":
			return false, debugValue
		default:
			return true, debugValue
		}
	}
	return false, ""
}
