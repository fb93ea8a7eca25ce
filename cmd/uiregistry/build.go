package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uiregistry/internal/app/build"
	"github.com/alexisbeaulieu97/uiregistry/internal/artifact"
	"github.com/alexisbeaulieu97/uiregistry/internal/ui"
)

type buildOptions struct {
	Strict bool
}

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Compile the registry and write every artifact",
		Long: `Build validates the registry, packages every UI component for every style,
resolves the color mapping against each base palette and writes the JSON, CSS and
index module artifacts. Nothing is written if any step fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail when a color reference cannot be resolved")

	return cmd
}

func runBuild(cmd *cobra.Command, root *rootFlags, opts buildOptions) error {
	log, err := root.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in, err := loadInputs(root.settings)
	if err != nil {
		return err
	}

	result, err := build.NewService(log).Build(cmd.Context(), build.Request{
		Registry: in.Registry,
		Data:     in.Data,
		Tree:     in.Tree,
		Sink:     artifact.NewDirSink(""),
		Layout:   in.Layout,
		Strict:   opts.Strict,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if root.verbose {
		for _, path := range result.Artifacts {
			fmt.Fprintf(out, "  wrote %s\n", path)
		}
	}
	if n := len(result.Warnings); n > 0 {
		fmt.Fprintf(out, "%s %d unresolved color reference(s)\n", ui.WarningBadge("!"), n)
	}
	fmt.Fprintf(out, "%s %d artifacts in %s\n", ui.SuccessBadge("Done!"), len(result.Artifacts), result.Duration.Round(time.Millisecond))
	return nil
}
