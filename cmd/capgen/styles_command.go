package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"capgen/internal/caption"
)

func newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the built-in caption style presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(caption.Styles()))
			for _, style := range caption.Styles() {
				preset := caption.DefaultStyleConfig(style)
				words := "-"
				if style == caption.StyleSocial {
					words = fmt.Sprintf("%d", preset.WordsPerBlock)
				}
				rows = append(rows, []string{
					string(style),
					fmt.Sprintf("%d", preset.MaxLines),
					fmt.Sprintf("%d", preset.MaxCharsPerLine),
					fmt.Sprintf("%.1f", preset.MinDurationSec),
					fmt.Sprintf("%.1f", preset.MaxDurationSec),
					words,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Style", "Lines", "Chars/line", "Min s", "Max s", "Words/block"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}
}
