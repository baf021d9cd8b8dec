package cmd

import (
	"fmt"
	"sort"

	"foldersort/internal/errors"
	"foldersort/internal/log"
	"foldersort/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed [FILE...]",
		Short: "Create sample files in the base directory",
		Long: `Seed writes small sample files into the base directory so there is
something to organize. Without arguments one file per default preset is
written. Existing files are left untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			res := seed.Files(s.Base(), args, log.Default())

			out := cmd.OutOrStdout()
			for _, name := range res.Created {
				fmt.Fprintln(out, SuccessStyle.Render("✔ created "+name))
			}
			for _, name := range res.Existing {
				fmt.Fprintln(out, WarningStyle.Render("• already exists: "+name))
			}

			failed := make([]string, 0, len(res.Failed))
			for name := range res.Failed {
				failed = append(failed, name)
			}
			sort.Strings(failed)
			for _, name := range failed {
				fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("✘ %s: %v", name, res.Failed[name])))
			}

			if len(failed) > 0 {
				return errors.Newf("%d sample files could not be created", len(failed))
			}
			return nil
		},
	}
}
