package cmd

import (
	"fmt"
	"os"

	"foldersort/internal/config"
	"foldersort/internal/errors"

	"github.com/spf13/cobra"
)

func newSetupCmd(a *app) *cobra.Command {
	var (
		exts  []string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Write a config file for foldersort",
		Long: `Setup writes the current settings, including --base and any --ext
values, to the config file. An existing file is only replaced with --force.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return errors.Wrap(err, "cannot locate config directory")
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return errors.NewFileError("config file already exists, use --force to replace it", path, errors.FileExists, nil)
			}

			if len(exts) > 0 {
				a.cfg.Organize.Extensions = exts
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveConfig(a.cfg, path); err != nil {
				return errors.FromOS("cannot write config file", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, SuccessStyle.Render("✔ config written to "+path))
			fmt.Fprintln(out, StatusStyle.Render(fmt.Sprintf("base directory: %s", a.cfg.Directories.Base)))
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&exts, "ext", "e", nil, "extensions organize uses when none are given (repeatable)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing config file")

	return cmd
}
