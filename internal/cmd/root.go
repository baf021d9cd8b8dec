package cmd

import (
	"fmt"
	"io"

	"foldersort/internal/config"
	"foldersort/internal/log"
	"foldersort/internal/organize"
	"foldersort/internal/store"

	"github.com/spf13/cobra"
)

var version = "dev"

// app carries the flag values and loaded state shared by every command.
type app struct {
	cfgFile string
	base    string
	debug   bool
	json    bool

	cfg *config.Config
}

// NewRootCmd builds the foldersort command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "foldersort",
		Short: "Group the files of a folder into per-extension subfolders",
		Long: `foldersort moves the files sitting directly in a base folder into
subfolders named after their extension: every .pdf goes to PDF_Files,
every .docx to DOCX_Files, and so on. It can also create, list and
delete the subfolders of the base folder.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.config/foldersort/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.base, "base", "b", "", "base directory (overrides directories.base)")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&a.json, "json", false, "emit JSON log lines")

	rootCmd.AddCommand(
		newCreateCmd(a),
		newListCmd(a),
		newDeleteCmd(a),
		newOrganizeCmd(a),
		newPresetsCmd(a),
		newSeedCmd(a),
		newSetupCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// load reads the configuration, applies flag overrides and configures
// logging. A broken config file is reported and replaced by defaults.
func (a *app) load(cmd *cobra.Command, args []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.LoadConfigFile(a.cfgFile)
	} else {
		a.cfg, err = config.LoadConfig()
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), WarningStyle.Render(fmt.Sprintf("Warning: %v", err)))
		fmt.Fprintln(cmd.ErrOrStderr(), StatusStyle.Render("Using default settings. Run 'foldersort setup' to write a config."))
		a.cfg = config.New()
	}

	if a.base != "" {
		a.cfg.Directories.Base = a.base
	}
	if a.debug {
		a.cfg.Settings.LogLevel = "debug"
	}
	if a.json {
		a.cfg.Settings.LogJSON = true
	}

	a.configureLogging(cmd.ErrOrStderr())
	return nil
}

func (a *app) configureLogging(out io.Writer) {
	opts := []log.Option{
		log.WithOutput(out),
		log.WithLevel(a.cfg.Settings.LogLevel),
	}
	if a.cfg.Settings.LogJSON {
		opts = append(opts, log.WithJSON())
	}
	if a.cfg.Settings.LogFile != "" {
		opts = append(opts, log.WithFile(a.cfg.Settings.LogFile))
	}
	log.Configure(opts...)
}

// openStore binds a store to the configured base directory.
func (a *app) openStore() (*store.Store, error) {
	s := store.New(a.cfg.Directories.Base)
	if err := s.Err(); err != nil {
		return nil, err
	}
	return s, nil
}

func (a *app) presets() organize.Presets {
	return organize.NewPresets(a.cfg.Organize.Presets)
}
