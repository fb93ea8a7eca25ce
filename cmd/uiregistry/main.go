package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexisbeaulieu97/uiregistry/internal/registry"
	regerrors "github.com/alexisbeaulieu97/uiregistry/pkg/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errDrift) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps failures to process exit codes: 1 for drift found by verify,
// 2 for unusable input, 3 for everything else.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errDrift) {
		return 1
	}

	var parseErr *regerrors.ParseError
	var validationErr *regerrors.ValidationError
	if errors.As(err, &parseErr) || errors.As(err, &validationErr) || registry.IsMissingSource(err) {
		return 2
	}
	return 3
}
