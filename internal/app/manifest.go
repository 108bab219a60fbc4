package app

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/woozymasta/savepaths"
	"github.com/woozymasta/savepaths/internal/output"
)

func newManifestCmd(e *env) *cobra.Command {
	var (
		outPath      string
		keepUnusable bool
		tags         []string
	)

	cmd := &cobra.Command{
		Use:   "manifest FILE...",
		Short: "Normalize and clean YAML manifest files",
		Long: `Manifest loads one or more YAML manifests (later files override games from
earlier ones), normalizes every file path with the OS its conditions name,
merges paths that collapse to the same form, and drops unusable ones.

The cleaned manifest is written to --output, or to stdout when not set. The
report goes to stdout with --output and to stderr otherwise.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			m, err := savepaths.LoadManifestFiles(cmd.Context(), e.cfg.Manifest.Workers, args...)
			if err != nil {
				return err
			}
			e.logger.Debug("manifests loaded", "files", len(args), "games", len(m), "elapsed", time.Since(start))

			opts := savepaths.SanitizeOptions{
				DefaultOS:    e.os,
				KeepUnusable: keepUnusable || e.cfg.Manifest.KeepUnusable,
				Tags:         savepaths.ParseTags(e.cfg.Manifest.Tags),
			}
			if cmd.Flags().Changed("tag") {
				opts.Tags = savepaths.ParseTags(tags)
			}

			cleaned, report := m.Sanitize(opts)
			for _, d := range report.Dropped {
				e.logger.Debug("dropped path", "game", d.Game, "raw", d.Raw, "normalized", d.Normalized, "reason", d.Reason.String())
			}

			reportOut := cmd.ErrOrStderr()
			if outPath == "" {
				if err := savepaths.WriteManifest(cmd.OutOrStdout(), cleaned); err != nil {
					return err
				}
			} else {
				if err := writeManifestFile(outPath, cleaned); err != nil {
					return err
				}
				reportOut = cmd.OutOrStdout()
			}

			return e.writeReport(reportOut, report)
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Write cleaned manifest to file")
	cmd.Flags().BoolVar(&keepUnusable, "keep-unusable", false, "Keep unusable paths (still reported)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Keep only paths with one of these tags (can be repeated)")

	return cmd
}

// writeManifestFile writes manifest YAML to path.
func writeManifestFile(path string, m savepaths.Manifest) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := savepaths.WriteManifest(f, m); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	return nil
}

// writeReport renders a sanitize report as JSON or as a summary with a dropped table.
func (e *env) writeReport(w io.Writer, report savepaths.SanitizeReport) error {
	if e.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintln(w, output.Section("Manifest Summary"))
	for _, line := range []struct {
		label string
		value int
	}{
		{"Games:", report.Games},
		{"Paths:", report.Paths},
		{"Rewritten:", report.Rewritten},
		{"Merged:", report.Merged},
		{"Skipped by tag:", report.Skipped},
		{"Dropped:", len(report.Dropped)},
	} {
		fmt.Fprintf(w, " %s %d\n", output.StyleLabel.Render(line.label), line.value)
	}

	if len(report.Dropped) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tbl := output.NewTable("Game", "Raw", "Normalized", "Reason")
	tbl.SetMaxCellWidth(e.cfg.Output.CellWidth)
	for _, d := range report.Dropped {
		tbl.AddRow(d.Game, d.Raw, d.Normalized, output.StyleError.Render(d.Reason.String()))
	}

	return tbl.Fprint(w)
}
