package config

import (
	"fmt"
	"path"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	itemNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)
	colorModes      = map[string]struct{}{"light": {}, "dark": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(yamlTagName)

		_ = v.RegisterValidation("item_name", func(fl validator.FieldLevel) bool {
			return itemNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("rel_path", func(fl validator.FieldLevel) bool {
			return isCleanRelativePath(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// yamlTagName reports fields by their document key so errors point at the
// input the user wrote.
func yamlTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	}
	return name
}

// isCleanRelativePath accepts slash-separated paths that stay inside their root.
func isCleanRelativePath(p string) bool {
	if p == "" || strings.ContainsAny(p, "\x00\\") {
		return false
	}
	if strings.HasPrefix(p, "/") || path.Clean(p) != p {
		return false
	}
	return p != ".." && !strings.HasPrefix(p, "../")
}

// ValidateRegistry performs schema and cross-item validation on the registry.
func ValidateRegistry(reg *Registry) error {
	if reg == nil {
		return regerrors.NewValidationError("registry", "registry is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(reg); err != nil {
		return convertValidationError("", err)
	}

	seen := make(map[string]int, len(reg.Items))
	for i, item := range reg.Items {
		if first, exists := seen[item.Name]; exists {
			return regerrors.NewValidationError(fieldForItem(i, "name"), fmt.Sprintf("duplicate item name %q (first declared at items[%d])", item.Name, first), nil)
		}
		seen[item.Name] = i
	}

	return nil
}

// ValidateData checks the styles, palettes, mapping and themes a build
// compiles against.
func ValidateData(data *Data) error {
	if data == nil {
		return regerrors.NewValidationError("data", "data is nil", nil)
	}

	if err := validateStyles(data.Styles); err != nil {
		return err
	}
	if err := validateColors(data.Colors); err != nil {
		return err
	}
	if err := validateMapping(data.Mapping); err != nil {
		return err
	}
	return validateThemes(data.Themes)
}

func validateStyles(styles []Style) error {
	if len(styles) == 0 {
		return regerrors.NewValidationError("styles", "at least one style is required", nil)
	}

	v := validatorInstance()
	seen := make(map[string]struct{}, len(styles))
	for i, style := range styles {
		prefix := fmt.Sprintf("styles[%d]", i)
		if err := v.Struct(style); err != nil {
			return convertValidationError(prefix, err)
		}
		if _, exists := seen[style.Name]; exists {
			return regerrors.NewValidationError(prefix+".name", fmt.Sprintf("duplicate style %q", style.Name), nil)
		}
		seen[style.Name] = struct{}{}
	}
	return nil
}

func validateColors(palettes colors.Palettes) error {
	v := validatorInstance()

	for _, name := range palettes.Keys() {
		value, _ := palettes.Get(name)
		scales := value.Scales
		if value.Single != nil {
			scales = []colors.Scale{*value.Single}
		}
		for i, scale := range scales {
			if err := v.Struct(scale); err != nil {
				return convertValidationError(fmt.Sprintf("colors.%s[%d]", name, i), err)
			}
		}
	}

	for _, name := range colors.BasePalettes {
		value, ok := palettes.Get(name)
		if !ok {
			return regerrors.NewValidationError("colors."+name, "base palette is missing", nil)
		}
		if len(value.Scales) == 0 {
			return regerrors.NewValidationError("colors."+name, "base palette must be a list of scales", nil)
		}
	}
	return nil
}

func validateMapping(mapping colors.Mapping) error {
	if mapping.Len() == 0 {
		return regerrors.NewValidationError("mapping", "at least one color mode is required", nil)
	}
	for _, mode := range mapping.Keys() {
		if _, ok := colorModes[mode]; !ok {
			return regerrors.NewValidationError("mapping."+mode, fmt.Sprintf("unknown color mode %q", mode), nil)
		}
	}
	return nil
}

func validateThemes(themes []colors.Theme) error {
	v := validatorInstance()
	seen := make(map[string]struct{}, len(themes))
	for i, theme := range themes {
		prefix := fmt.Sprintf("themes[%d]", i)
		if err := v.Struct(theme); err != nil {
			return convertValidationError(prefix, err)
		}
		if _, exists := seen[theme.Name]; exists {
			return regerrors.NewValidationError(prefix+".name", fmt.Sprintf("duplicate theme %q", theme.Name), nil)
		}
		seen[theme.Name] = struct{}{}
	}
	return nil
}
