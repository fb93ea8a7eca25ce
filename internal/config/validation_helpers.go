package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

// convertValidationError normalizes validator errors into registry validation
// errors. prefix replaces the root struct name in the reported field path.
func convertValidationError(prefix string, err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(prefix, ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return regerrors.NewValidationError(field, msg, err)
	}

	return regerrors.NewValidationError(prefix, err.Error(), err)
}

// yamlishFieldName turns "Registry.items[3].files[0]" into "items[3].files[0]",
// replacing the root struct name with prefix.
func yamlishFieldName(prefix string, fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	if prefix != "" {
		parts = append([]string{prefix}, parts...)
	}
	return strings.Join(parts, ".")
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}
