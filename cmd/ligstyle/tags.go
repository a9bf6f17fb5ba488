package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coelacanthushex/ligstyle"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the ligation sets of the catalogue",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := ligstyle.LoadCatalogue(getStringWithFallback("catalogue", "catalogue", ""))
		if err != nil {
			return fmt.Errorf("load catalogue: %w", err)
		}
		ligstyle.WriteCatalogue(cmd.OutOrStdout(), cat, getBoolWithFallback("color", "color", false))
		return nil
	},
}
