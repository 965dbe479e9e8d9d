package complyscan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/complyscan/complyscan/internal/registry"
	"github.com/complyscan/complyscan/internal/types"
)

var flagLevel string

func init() {
	cmd := &cobra.Command{
		Use:     "accessibility",
		Aliases: []string{"a11y"},
		Short:   "Run the WCAG 2.1 accessibility audit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.NewAccessibility()
			if err != nil {
				return err
			}
			return runAudit(cmd, reg)
		},
	}
	rootCmd.AddCommand(cmd)
	addAuditFlags(cmd)
	cmd.Flags().StringVar(&flagLevel, "level", "AA", "WCAG conformance floor: A | AA | AAA")
}

// resolveLevel applies flag > local > global precedence. The --level default
// is a real value, so file config wins unless the flag was set explicitly.
func resolveLevel(flagVal string, flagSet bool, local, global *string) (types.Level, error) {
	if !flagSet {
		if s := pickString("", local, global); s != "" {
			flagVal = s
		}
	}
	return parseLevel(flagVal)
}

func parseLevel(s string) (types.Level, error) {
	switch s {
	case "A":
		return types.LevelA, nil
	case "AA", "":
		return types.LevelAA, nil
	case "AAA":
		return types.LevelAAA, nil
	}
	return "", fmt.Errorf("unknown conformance level %q (want A, AA, or AAA)", s)
}
