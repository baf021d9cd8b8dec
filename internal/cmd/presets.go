package cmd

import (
	"fmt"

	"foldersort/internal/organize"

	"github.com/spf13/cobra"
)

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Show the named extensions usable with organize --preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := a.presets()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, TitleStyle.Render("Presets"))
			for _, name := range presets.Names() {
				ext, _ := presets.Lookup(name)
				fmt.Fprintf(out, "%-10s %-8s -> %s\n", name, ext, FolderStyle.Render(organize.DestinationFolder(ext)))
			}
			return nil
		},
	}
}
