package complyscan

import (
	"github.com/spf13/cobra"

	"github.com/complyscan/complyscan/internal/registry"
)

func init() {
	cmd := &cobra.Command{
		Use:   "security",
		Short: "Run the OWASP Top 10 security audit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := registry.NewSecurity(nil)
			if err != nil {
				return err
			}
			return runAudit(cmd, reg)
		},
	}
	rootCmd.AddCommand(cmd)
	addAuditFlags(cmd)
}
