package util

import (
	"strconv"

	"github.com/spf13/cobra"
)

func ExactArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return FlagErrorf("too many arguments")
		}
		if len(args) < n {
			return FlagErrorf("%s", msg)
		}
		return nil
	}
}

func RangeArgs(min, max int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > max {
			return FlagErrorf("too many arguments")
		}
		if len(args) < min {
			return FlagErrorf("%s", msg)
		}
		return nil
	}
}

// ParseID parses a positive numeric identifier given on the command line.
func ParseID(what, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, FlagErrorf("invalid %s %q: expected a positive number", what, raw)
	}
	return id, nil
}
