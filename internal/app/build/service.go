// Package build orchestrates a full registry compilation: validation, index
// assembly, packaging, color resolution, rendering and artifact output.
package build

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/uiregistry/internal/artifact"
	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
	"github.com/alexisbeaulieu97/uiregistry/internal/config"
	"github.com/alexisbeaulieu97/uiregistry/internal/logger"
	"github.com/alexisbeaulieu97/uiregistry/internal/registry"
	"github.com/alexisbeaulieu97/uiregistry/internal/render"
	"github.com/alexisbeaulieu97/uiregistry/internal/source"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

// Layout places artifacts. OutputDir and IndexModule are sink paths;
// ImportRoot and ComponentExt shape the generated import paths.
type Layout struct {
	OutputDir    string
	IndexModule  string
	ImportRoot   string
	ComponentExt string
	Ignore       []string
}

// LayoutFromSettings copies the layout keys out of settings.
func LayoutFromSettings(s config.Settings) Layout {
	return Layout{
		OutputDir:    s.OutputDir,
		IndexModule:  s.IndexModule,
		ImportRoot:   s.ImportRoot,
		ComponentExt: s.ComponentExt,
		Ignore:       s.Ignore,
	}
}

func (l Layout) out(rel string) string {
	return path.Join(filepath.ToSlash(l.OutputDir), rel)
}

// Request is everything one build needs.
type Request struct {
	Registry *config.Registry
	Data     *config.Data
	Tree     source.Tree
	Sink     artifact.Sink
	Layout   Layout
	// Strict fails the build when any color reference is left unresolved.
	Strict bool
}

// Result reports what a successful build produced.
type Result struct {
	BuildID   string
	Artifacts []string
	Warnings  []colors.Warning

	// DependencyCycle is the first registryDependencies cycle found, if any.
	DependencyCycle []string
	Duration        time.Duration
}

// Service runs builds.
type Service struct {
	log *logger.Logger
}

// NewService constructs a build service. A nil logger discards output.
func NewService(log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{log: log}
}

type packaged struct {
	path    string
	payload registry.Payload
}

type compiled struct {
	module   string
	packages []packaged
	uiItems  []config.Item
	index    colors.Index
	palettes []colors.Resolved
	themes   string
	warnings []colors.Warning
}

// Build compiles the registry and writes every artifact in a fixed order.
// Nothing is written unless compilation succeeds as a whole.
func (s *Service) Build(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	buildID := uuid.NewString()
	log := s.log.With("build_id", buildID)

	if err := config.ValidateRegistry(req.Registry); err != nil {
		return nil, err
	}
	if err := config.ValidateData(req.Data); err != nil {
		return nil, err
	}
	if req.Tree == nil || req.Sink == nil {
		return nil, fmt.Errorf("build: source tree and sink are required")
	}

	cycle := req.Registry.DependencyCycle()
	if len(cycle) > 0 {
		log.WithFields(map[string]any{"cycle": strings.Join(cycle, " -> ")}).Warn("registry dependency cycle")
	}

	log.WithFields(map[string]any{
		"items":  len(req.Registry.Items),
		"styles": len(req.Data.Styles),
		"themes": len(req.Data.Themes),
	}).Info("compiling registry")

	c, err := s.compile(ctx, req)
	if err != nil {
		return nil, err
	}

	for _, w := range c.warnings {
		log.WithFields(map[string]any{
			"palette":   w.Palette,
			"mode":      w.Mode,
			"role":      w.Role,
			"reference": w.Reference,
		}).Warn(w.Reason)
	}
	if req.Strict && len(c.warnings) > 0 {
		return nil, regerrors.NewValidationError("colors", fmt.Sprintf("%d unresolved color reference(s), first: %s", len(c.warnings), c.warnings[0]), nil)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	writer := artifact.NewWriter(req.Sink)
	if err := s.write(writer, req, c); err != nil {
		log.Error(err, "writing artifacts failed")
		return nil, err
	}

	result := &Result{
		BuildID:         buildID,
		Artifacts:       writer.Written(),
		Warnings:        c.warnings,
		DependencyCycle: cycle,
		Duration:        time.Since(start),
	}
	log.WithFields(map[string]any{
		"artifacts": len(result.Artifacts),
		"warnings":  len(result.Warnings),
		"duration":  result.Duration.String(),
	}).Info("registry built")

	return result, nil
}

func (s *Service) compile(ctx context.Context, req Request) (*compiled, error) {
	var c compiled
	layout := req.Layout

	index := registry.BuildIndex(req.Data.Styles, req.Registry.Items, registry.IndexOptions{
		ImportRoot:   layout.ImportRoot,
		ComponentExt: layout.ComponentExt,
	})
	module, err := render.IndexModule(index)
	if err != nil {
		return nil, err
	}
	c.module = module

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	packager := registry.NewPackager(req.Tree)
	c.uiItems = req.Registry.UIItems()
	for _, style := range req.Data.Styles {
		for _, item := range c.uiItems {
			payload, err := packager.Package(style.Name, item)
			if err != nil {
				return nil, err
			}
			c.packages = append(c.packages, packaged{
				path:    layout.out("styles/" + style.Name + "/" + item.Name + ".json"),
				payload: payload,
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	colorIndex, warnings := colors.BuildIndex(req.Data.Colors)
	c.index = colorIndex
	c.warnings = append(c.warnings, warnings...)

	palettes, warnings := colors.Resolve(colorIndex, req.Data.Mapping, colors.BasePalettes)
	c.warnings = append(c.warnings, warnings...)

	base := render.BaseStyles()
	for i := range palettes {
		vars, err := render.VariablesStyles(render.Vars{
			Light: palettes[i].Vars("light"),
			Dark:  palettes[i].Vars("dark"),
		})
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", palettes[i].Name, err)
		}
		palettes[i].InlineColorsTemplate = base
		palettes[i].CSSVarsTemplate = vars
	}
	c.palettes = palettes

	themes, err := render.ThemesCSS(req.Data.Themes)
	if err != nil {
		return nil, err
	}
	c.themes = themes

	return &c, nil
}

func (s *Service) write(w *artifact.Writer, req Request, c *compiled) error {
	layout := req.Layout

	if err := w.Clear(layout.IndexModule); err != nil {
		return err
	}
	if err := w.WriteText(layout.IndexModule, c.module); err != nil {
		return err
	}

	for _, p := range c.packages {
		if err := w.WriteJSON(p.path, p.payload); err != nil {
			return err
		}
	}

	if err := w.WriteJSON(layout.out("styles/index.json"), req.Data.Styles); err != nil {
		return err
	}

	published := make([]config.Item, 0, len(c.uiItems))
	for _, item := range c.uiItems {
		if slices.Contains(layout.Ignore, item.Name) {
			continue
		}
		published = append(published, item)
	}
	if err := w.Clear(layout.out("index.json")); err != nil {
		return err
	}
	if err := w.WriteJSON(layout.out("index.json"), published); err != nil {
		return err
	}

	if err := w.Clear(layout.out("colors")); err != nil {
		return err
	}
	if err := w.WriteJSON(layout.out("colors/index.json"), c.index); err != nil {
		return err
	}
	for _, palette := range c.palettes {
		if err := w.WriteJSON(layout.out("colors/"+palette.Name+".json"), palette); err != nil {
			return err
		}
	}

	return w.WriteText(layout.out("themes.css"), c.themes)
}
