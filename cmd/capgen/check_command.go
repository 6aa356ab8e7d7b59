package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"capgen/internal/srt"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file.srt>",
		Short: "Validate an SRT file and report issues",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("provide the path to an SRT file. Example: capgen check captions.srt")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := filepath.Abs(args[0])
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read srt: %w", err)
			}

			out := cmd.OutOrStdout()
			if issues := srt.ValidateContent(data); len(issues) > 0 {
				rows := make([][]string, 0, len(issues))
				for i, issue := range issues {
					rows = append(rows, []string{fmt.Sprintf("%d", i+1), issue})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Issue"},
					rows,
					[]columnAlignment{alignRight, alignLeft},
				))
				return fmt.Errorf("%s: %d validation issue(s)", path, len(issues))
			}

			cues, err := srt.ParseCues(data)
			if err != nil {
				return err
			}
			_, last := srt.Bounds(cues)
			duration := time.Duration(last * float64(time.Second))
			fmt.Fprintf(out, "OK: %d cues, duration %s\n", len(cues), duration.Round(time.Second))
			return nil
		},
	}
	return cmd
}
