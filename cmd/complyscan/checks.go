package complyscan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/complyscan/complyscan/internal/registry"
	"github.com/complyscan/complyscan/internal/types"
)

func init() {
	var taxonomy string
	cmd := &cobra.Command{
		Use:   "checks",
		Short: "List the check catalog for a taxonomy",
		RunE: func(_ *cobra.Command, _ []string) error {
			var reg *registry.Registry
			var err error
			switch taxonomy {
			case "security":
				reg, err = registry.NewSecurity(nil)
			case "accessibility":
				reg, err = registry.NewAccessibility()
			default:
				return fmt.Errorf("unknown taxonomy %q (want security or accessibility)", taxonomy)
			}
			if err != nil {
				return err
			}
			defs := reg.Checks(nil, types.LevelAAA)
			if flagJSON {
				type row struct {
					ID         string         `json:"id"`
					Category   types.Category `json:"category"`
					Name       string         `json:"name"`
					Severity   types.Severity `json:"severity"`
					Level      types.Level    `json:"level,omitempty"`
					Automated  bool           `json:"automated"`
					References []string       `json:"references,omitempty"`
				}
				rows := make([]row, 0, len(defs))
				for _, d := range defs {
					rows = append(rows, row{
						ID: d.ID, Category: d.Category, Name: d.Name,
						Severity: d.Severity, Level: d.Level,
						Automated: d.Automated, References: d.References,
					})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			for _, d := range defs {
				if d.Level != "" {
					fmt.Printf("%-14s %-8s [%s] %s\n", d.ID, d.Severity, d.Level, d.Name)
				} else {
					fmt.Printf("%-14s %-8s %s\n", d.ID, d.Severity, d.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&taxonomy, "taxonomy", "security", "catalog to list: security | accessibility")
	rootCmd.AddCommand(cmd)
}
