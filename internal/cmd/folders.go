package cmd

import (
	"fmt"

	"foldersort/internal/errors"

	"github.com/spf13/cobra"
)

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME...",
		Short: "Create folders inside the base directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				created, err := s.Create(name)
				switch {
				case err != nil:
					failed++
					fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("✘ %s: %v", name, err)))
				case created:
					fmt.Fprintln(out, SuccessStyle.Render("✔ created ")+FolderStyle.Render(name))
				default:
					fmt.Fprintln(out, WarningStyle.Render("• already exists: ")+FolderStyle.Render(name))
				}
			}
			if failed > 0 {
				return errors.Newf("%d of %d folders could not be created", failed, len(args))
			}
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the folders inside the base directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			folders, err := s.List()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(folders) == 0 {
				fmt.Fprintln(out, StatusStyle.Render("No folders in "+s.Base()))
				return nil
			}
			fmt.Fprintln(out, TitleStyle.Render(fmt.Sprintf("Folders in %s", s.Base())))
			for _, name := range folders {
				fmt.Fprintln(out, "- "+FolderStyle.Render(name))
			}
			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME...",
		Aliases: []string{"rm"},
		Short:   "Delete folders, and everything in them, from the base directory",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, name := range args {
				deleted, err := s.Delete(name)
				switch {
				case err != nil:
					failed++
					fmt.Fprintln(out, ErrorStyle.Render(fmt.Sprintf("✘ %s: %v", name, err)))
				case deleted:
					fmt.Fprintln(out, SuccessStyle.Render("✔ deleted ")+FolderStyle.Render(name))
				default:
					fmt.Fprintln(out, WarningStyle.Render("• not found: ")+FolderStyle.Render(name))
				}
			}
			if failed > 0 {
				return errors.Newf("%d of %d folders could not be deleted", failed, len(args))
			}
			return nil
		},
	}
}
