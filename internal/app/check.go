package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/savepaths"
	"github.com/woozymasta/savepaths/internal/output"
)

func newCheckCmd(e *env) *cobra.Command {
	var (
		files        []string
		strict       bool
		onlyUnusable bool
	)

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Normalize paths and report whether they are usable",
		Long: `Check normalizes each raw path and decides whether the result is specific
enough to back up. Rejected paths are listed with the reason. With --strict the
command fails when any path is unusable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raws, err := readRawPaths(args, files, cmd.InOrStdin())
			if err != nil {
				return err
			}

			checker := savepaths.NewChecker(savepaths.CheckerOptions{OS: e.os})
			results := checker.CheckAll(raws)

			unusable := 0
			shown := make([]savepaths.CheckResult, 0, len(results))
			for _, res := range results {
				if !res.Usable {
					unusable++
					e.logger.Debug("unusable path", "raw", res.Raw, "normalized", res.Normalized, "reason", res.Reason.String())
				} else if onlyUnusable {
					continue
				}
				shown = append(shown, res)
			}

			out := cmd.OutOrStdout()
			if e.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(shown); err != nil {
					return err
				}
			} else {
				tbl := output.NewTable("Raw", "Normalized", "Usable", "Reason")
				tbl.SetMaxCellWidth(e.cfg.Output.CellWidth)
				for _, res := range shown {
					tbl.AddRow(res.Raw, res.Normalized, output.Verdict(res.Usable), res.Reason.String())
				}
				if err := tbl.Fprint(out); err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s %d/%d\n", output.StyleLabel.Render("Usable paths:"), len(results)-unusable, len(results))
			}

			if strict && unusable > 0 {
				return fmt.Errorf("%w: %d of %d", errUnusable, unusable, len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "Read raw paths from file (can be repeated)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any path is unusable")
	cmd.Flags().BoolVar(&onlyUnusable, "only-unusable", false, "Only list rejected paths")

	return cmd
}
