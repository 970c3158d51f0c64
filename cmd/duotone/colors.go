package main

import (
	"github.com/nvr-ai/go-duotone/duotone"
	"github.com/nvr-ai/go-duotone/presets"
	"github.com/nvr-ai/go-duotone/session"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// addColorFlags registers the flags shared by every command that tints.
func addColorFlags(cmd *cobra.Command) {
	cmd.Flags().String("dark", "", "Dark endpoint (#rrggbb, #rgb or a color name)")
	cmd.Flags().String("light", "", "Light endpoint (#rrggbb, #rgb or a color name)")
	cmd.Flags().StringP("preset", "p", "", "Preset name; --dark/--light override its endpoints")
	addPresetsFileFlag(cmd)
}

func addPresetsFileFlag(cmd *cobra.Command) {
	cmd.Flags().String("presets-file", "", "YAML file with additional presets")
}

// loadCatalog returns the built-in presets merged with --presets-file, if given.
func loadCatalog(cmd *cobra.Command) (*presets.Catalog, error) {
	catalog := presets.Default()
	path, _ := cmd.Flags().GetString("presets-file")
	if path == "" {
		return catalog, nil
	}
	user, err := presets.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.Merge(user), nil
}

// resolveColors picks the gradient endpoints: defaults, then the preset, then explicit
// --dark/--light values.
func resolveColors(cmd *cobra.Command) (dark, light duotone.Color, err error) {
	dark, light = session.DefaultDark, session.DefaultLight

	if name, _ := cmd.Flags().GetString("preset"); name != "" {
		catalog, err := loadCatalog(cmd)
		if err != nil {
			return dark, light, err
		}
		p, err := catalog.Lookup(name)
		if err != nil {
			return dark, light, err
		}
		dark, light = p.Dark, p.Light
	}

	if s, _ := cmd.Flags().GetString("dark"); s != "" {
		if dark, err = duotone.ParseColor(s); err != nil {
			return dark, light, errors.Wrap(err, "--dark")
		}
	}
	if s, _ := cmd.Flags().GetString("light"); s != "" {
		if light, err = duotone.ParseColor(s); err != nil {
			return dark, light, errors.Wrap(err, "--light")
		}
	}
	return dark, light, nil
}
