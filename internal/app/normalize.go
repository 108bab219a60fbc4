package app

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/savepaths"
	"github.com/woozymasta/savepaths/internal/output"
)

// normalizeResult is one JSON record of the normalize command.
type normalizeResult struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
}

func newNormalizeCmd(e *env) *cobra.Command {
	var (
		files    []string
		showDiff bool
	)

	cmd := &cobra.Command{
		Use:   "normalize [path...]",
		Short: "Rewrite raw paths into canonical placeholder form",
		Long: `Normalize unifies separators, expands ~, collapses redundant slashes,
wildcards and dot segments, and substitutes Windows environment variables and
Steam account tokens with placeholders. One normalized path is printed per input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raws, err := readRawPaths(args, files, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if e.json {
				results := make([]normalizeResult, 0, len(raws))
				for _, raw := range raws {
					results = append(results, normalizeResult{Raw: raw, Normalized: savepaths.Normalize(raw, e.os)})
				}

				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			for _, raw := range raws {
				normalized := savepaths.Normalize(raw, e.os)
				if showDiff {
					fmt.Fprintln(out, output.InlineDiff(raw, normalized))
					continue
				}
				fmt.Fprintln(out, normalized)
			}

			e.logger.Debug("normalized paths", "count", len(raws))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&files, "file", "f", nil, "Read raw paths from file (can be repeated)")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show inline raw to normalized diff")

	return cmd
}
