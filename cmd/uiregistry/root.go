package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/uiregistry/internal/config"
	"github.com/alexisbeaulieu97/uiregistry/internal/logger"
)

type rootFlags struct {
	configFile string
	verbose    bool

	viper    *viper.Viper
	settings config.Settings
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{viper: config.NewViper()}

	cmd := &cobra.Command{
		Use:           "uiregistry",
		Short:         "uiregistry compiles a component registry into static site artifacts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(flags.viper, flags.configFile)
			if err != nil {
				return err
			}
			flags.settings = settings
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "settings file (default: ./uiregistry.yaml when present)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	pf.String("registry", "", "registry document (.yaml, .yml or .toml)")
	pf.String("source-dir", "", "directory holding one source tree per style")
	pf.String("source-ref", "", "read sources from this git revision instead of the working copy")
	pf.String("output-dir", "", "directory receiving the JSON and CSS artifacts")
	pf.String("index-module", "", "path of the generated style index module")
	pf.String("import-root", "", "prefix of the import paths written into the index module")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.Bool("no-color", false, "Disable colors in human readable logs")

	bindFlag(flags.viper, cmd, "registry", "registry")
	bindFlag(flags.viper, cmd, "source_dir", "source-dir")
	bindFlag(flags.viper, cmd, "source_ref", "source-ref")
	bindFlag(flags.viper, cmd, "output_dir", "output-dir")
	bindFlag(flags.viper, cmd, "index_module", "index-module")
	bindFlag(flags.viper, cmd, "import_root", "import-root")
	bindFlag(flags.viper, cmd, "log_level", "log-level")
	bindFlag(flags.viper, cmd, "no_color", "no-color")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newPalettesCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	_ = v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag))
}

// newLogger writes human readable logs when w is a terminal and JSON lines
// otherwise. NO_COLOR in the environment has the same effect as --no-color.
func (f *rootFlags) newLogger(w io.Writer) (*logger.Logger, error) {
	level := f.settings.LogLevel
	if f.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: isTerminal(w),
		NoColor:       f.settings.NoColor || os.Getenv("NO_COLOR") != "",
		Writer:        w,
	})
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
