package main

import (
	"github.com/alexisbeaulieu97/uiregistry/internal/app/build"
	"github.com/alexisbeaulieu97/uiregistry/internal/config"
	"github.com/alexisbeaulieu97/uiregistry/internal/source"
)

// inputs bundles everything a command reads before it compiles anything.
type inputs struct {
	Registry *config.Registry
	Data     *config.Data
	Tree     source.Tree
	Layout   build.Layout
}

func loadInputs(settings config.Settings) (*inputs, error) {
	reg, err := config.ParseRegistry(settings.Registry)
	if err != nil {
		return nil, err
	}

	data, err := config.LoadData(settings.DataFiles())
	if err != nil {
		return nil, err
	}

	tree, err := openTree(settings)
	if err != nil {
		return nil, err
	}

	return &inputs{
		Registry: reg,
		Data:     data,
		Tree:     tree,
		Layout:   build.LayoutFromSettings(settings),
	}, nil
}

func openTree(settings config.Settings) (source.Tree, error) {
	if settings.SourceRef != "" {
		return source.OpenGitTree(settings.SourceDir, settings.SourceRef)
	}
	return source.NewDirTree(settings.SourceDir), nil
}
