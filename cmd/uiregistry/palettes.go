package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
	"github.com/alexisbeaulieu97/uiregistry/internal/config"
	"github.com/alexisbeaulieu97/uiregistry/internal/ui"
)

type palettesOptions struct {
	All bool
}

func newPalettesCmd(root *rootFlags) *cobra.Command {
	opts := palettesOptions{}

	cmd := &cobra.Command{
		Use:   "palettes",
		Short: "Preview the base palettes as terminal swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.LoadData(root.settings.DataFiles())
			if err != nil {
				return err
			}

			names := colors.BasePalettes
			if opts.All {
				names = scalePalettes(data.Colors)
			}

			out := cmd.OutOrStdout()
			for _, name := range names {
				value, _ := data.Colors.Get(name)
				swatches, unparsed := paletteSwatches(value)
				fmt.Fprintln(out, ui.PaletteRow(name, swatches))
				if unparsed > 0 {
					fmt.Fprintf(out, "%s %s: %d shade(s) without a usable hex or rgb value\n", ui.WarningBadge("warn"), name, unparsed)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.All, "all", false, "Show every palette with shades, not only the base palettes")

	return cmd
}

// paletteSwatches converts every shade, counting those drawn without a color.
func paletteSwatches(value colors.Value) ([]ui.Swatch, int) {
	swatches := make([]ui.Swatch, 0, len(value.Scales))
	unparsed := 0
	for _, scale := range value.Scales {
		swatch, ok := ui.SwatchFromScale(scale)
		if !ok {
			unparsed++
		}
		swatches = append(swatches, swatch)
	}
	return swatches, unparsed
}

func scalePalettes(palettes colors.Palettes) []string {
	var names []string
	for _, name := range palettes.Keys() {
		if value, _ := palettes.Get(name); len(value.Scales) > 0 {
			names = append(names, name)
		}
	}
	return names
}
