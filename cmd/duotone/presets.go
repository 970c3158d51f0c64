package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List available presets",
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().Bool("yaml", false, "Print the catalog as YAML (usable as --presets-file)")
	addPresetsFileFlag(presetsCmd)
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, args []string) error {
	asYAML, _ := cmd.Flags().GetBool("yaml")

	catalog, err := loadCatalog(cmd)
	if err != nil {
		return err
	}
	if asYAML {
		return catalog.Write(cmd.OutOrStdout())
	}

	for _, name := range catalog.Names() {
		p, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s → %s\n", p.Name, p.Dark, p.Light)
	}
	return nil
}
