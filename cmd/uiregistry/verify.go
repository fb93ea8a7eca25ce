package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/uiregistry/internal/app/build"
	"github.com/alexisbeaulieu97/uiregistry/internal/artifact"
	"github.com/alexisbeaulieu97/uiregistry/internal/ui"
)

// errDrift signals that verify found differences; the report is already printed.
var errDrift = errors.New("artifacts are out of date")

func newVerifyCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the artifacts on disk match a fresh build",
		Long: `Verify compiles the registry in memory and compares every artifact with the
file already on disk. Returns exit code 0 when everything matches and exit code 1
when any artifact is missing, changed or stale.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, root)
		},
	}

	return cmd
}

func runVerify(cmd *cobra.Command, root *rootFlags) error {
	log, err := root.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	in, err := loadInputs(root.settings)
	if err != nil {
		return err
	}

	sink := artifact.NewCheckSink("")
	result, err := build.NewService(log).Build(cmd.Context(), build.Request{
		Registry: in.Registry,
		Data:     in.Data,
		Tree:     in.Tree,
		Sink:     sink,
		Layout:   in.Layout,
	})
	if err != nil {
		return err
	}

	drift, err := sink.Drift()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(drift) == 0 {
		fmt.Fprintf(out, "%s %d artifacts up to date\n", ui.SuccessBadge("OK"), len(result.Artifacts))
		return nil
	}

	for _, d := range drift {
		fmt.Fprintf(out, "%s %s\n", driftBadge(d.Kind), d.Path)
		if root.verbose && d.Diff != "" {
			fmt.Fprintln(out, d.Diff)
		}
	}
	fmt.Fprintf(out, "%d of %d artifacts differ; run uiregistry build\n", len(drift), len(result.Artifacts))
	return errDrift
}

func driftBadge(kind artifact.DriftKind) string {
	label := fmt.Sprintf("%-8s", kind)
	switch kind {
	case artifact.DriftMissing:
		return ui.ErrorBadge(label)
	case artifact.DriftChanged:
		return ui.WarningBadge(label)
	default:
		return ui.InfoBadge(label)
	}
}
