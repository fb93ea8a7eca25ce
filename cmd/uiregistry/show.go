package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uiregistry/internal/registry"
	"github.com/alexisbeaulieu97/uiregistry/internal/ui"
)

type showOptions struct {
	Source bool
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := showOptions{}

	cmd := &cobra.Command{
		Use:   "show <style> <name>",
		Short: "Resolve one composite component through the style index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, opts, args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&opts.Source, "source", false, "Print the component source")

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, opts showOptions, style, name string) error {
	in, err := loadInputs(root.settings)
	if err != nil {
		return err
	}

	index := registry.BuildIndex(in.Data.Styles, in.Registry.Items, registry.IndexOptions{
		ImportRoot:   in.Layout.ImportRoot,
		ComponentExt: in.Layout.ComponentExt,
	})

	var loader registry.Loader = registry.NewTreeLoader(index, in.Tree)
	component, err := loader.Load(style, name)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", ui.InfoBadge(component.Name), component.Type)
	fmt.Fprintf(out, "style:    %s\n", component.Style)
	fmt.Fprintf(out, "import:   %s\n", component.Import)
	if len(component.RegistryDependencies) > 0 {
		fmt.Fprintf(out, "requires: %s\n", strings.Join(component.RegistryDependencies, ", "))
	}
	fmt.Fprintln(out, "files:")
	for _, file := range component.Files {
		fmt.Fprintf(out, "  %s (%d bytes)\n", file.Name, len(file.Content))
	}

	if opts.Source {
		fmt.Fprintf(out, "\n// %s\n%s\n", component.Source.Name, component.Source.Content)
	}
	return nil
}
