package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/quietfmt/murmur/pkg/colors"
	"github.com/quietfmt/murmur/pkg/icons"
	"github.com/spf13/cobra"
)

// newIconsCmd creates the icons command
func newIconsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "icons",
		Short: MsgIconsShort,
		Long:  MsgIconsLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"Kind", "Glyph", "Color"}}
			for _, kind := range icons.Kinds() {
				icon := icons.Lookup(kind)
				data = append(data, []string{
					string(kind),
					colors.Colorize(icon.Glyph, icon.Color),
					icon.Color,
				})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return fmt.Errorf(MsgErrListIcons, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
