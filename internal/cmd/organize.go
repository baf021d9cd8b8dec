package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"foldersort/internal/errors"
	"foldersort/internal/organize"
	"foldersort/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newOrganizeCmd(a *app) *cobra.Command {
	var (
		presetNames []string
		all         bool
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "organize [EXTENSION...]",
		Short: "Move files into per-extension folders",
		Long: `Organize moves every file directly inside the base directory whose name
ends with one of the given extensions into <EXT>_Files. Extensions are
matched literally and case-sensitively against the end of the file name.

With no extensions, presets or --all, the extensions from the config file
are used, or every preset when the config lists none.`,
		Example: `  foldersort organize .pdf .docx
  foldersort organize --preset word --preset excel
  foldersort organize --all --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exts, err := a.resolveExtensions(args, presetNames, all)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("dry-run") {
				a.cfg.Settings.DryRun = dryRun
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Settings.DryRun {
				fmt.Fprintln(out, TitleStyle.Render("Dry run: planning organization of "+s.Base()))
			} else {
				fmt.Fprintln(out, TitleStyle.Render("Organizing "+s.Base()))
			}

			summaries, runErr := organize.RunAll(s, exts, organize.WithDryRun(a.cfg.Settings.DryRun))
			failed := printSummaries(out, summaries)

			if runErr != nil {
				return runErr
			}
			if failed > 0 {
				return errors.Newf("%d files could not be moved", failed)
			}
			for _, summary := range summaries {
				if summary.Error != nil {
					return summary.Error
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&presetNames, "preset", "p", nil, "organize a named preset (repeatable), see 'foldersort presets'")
	cmd.Flags().BoolVar(&all, "all", false, "organize every preset")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would be moved without moving anything")

	return cmd
}

// resolveExtensions merges positional extensions, presets and --all into
// one ordered list without duplicates.
func (a *app) resolveExtensions(args, presetNames []string, all bool) ([]string, error) {
	presets := a.presets()
	var exts []string

	exts = append(exts, args...)
	for _, name := range presetNames {
		ext, ok := presets.Lookup(name)
		if !ok {
			return nil, errors.NewConfigError("unknown preset", name, errors.InvalidConfig,
				fmt.Errorf("known presets: %s", strings.Join(presets.Names(), ", ")))
		}
		exts = append(exts, ext)
	}
	if all {
		exts = append(exts, presets.Extensions()...)
	}

	if len(exts) == 0 {
		exts = append(exts, a.cfg.Organize.Extensions...)
	}
	if len(exts) == 0 {
		exts = presets.Extensions()
	}

	seen := make(map[string]bool, len(exts))
	unique := exts[:0]
	for _, ext := range exts {
		if seen[ext] {
			continue
		}
		seen[ext] = true
		unique = append(unique, ext)
	}
	return unique, nil
}

// printSummaries writes a human readable report and returns how many
// files failed to move.
func printSummaries(out io.Writer, summaries []types.OrganizeSummary) int {
	var moved, failed int
	var bytes int64

	for _, s := range summaries {
		header := FolderStyle.Render(s.Folder) + StatusStyle.Render(" ("+s.Extension+")")
		fmt.Fprintln(out, header)

		if s.Error != nil && s.Matched() == 0 {
			fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("  ✘ %v", s.Error)))
			continue
		}
		if s.Matched() == 0 {
			fmt.Fprintln(out, StatusStyle.Render("  no files found for this extension"))
			continue
		}

		for _, r := range s.Results {
			name := filepath.Base(r.SourcePath)
			switch {
			case r.Error != nil:
				fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("  ✘ %s: %v", name, r.Error)))
			case r.Moved:
				fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("  ✔ %s -> %s/", name, s.Folder)))
			default:
				fmt.Fprintln(out, StatusStyle.Render(fmt.Sprintf("  would move %s -> %s/", name, s.Folder)))
			}
		}

		moved += s.Moved()
		failed += s.Failed()
		bytes += s.MovedBytes()
	}

	fmt.Fprintln(out, StatusStyle.Render(fmt.Sprintf("Moved %d files (%s), %d failed", moved, humanize.Bytes(uint64(bytes)), failed)))
	return failed
}
