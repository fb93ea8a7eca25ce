package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/uiregistry/internal/colors"
)

func TestSwatchFromScale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		scale colors.Scale
		want  Swatch
		ok    bool
	}{
		{
			name:  "hex wins",
			scale: colors.Scale{Scale: 50, Hex: "#F8FAFC", RGB: "rgb(0,0,0)"},
			want:  Swatch{Label: "50", Hex: "#f8fafc"},
			ok:    true,
		},
		{
			name:  "rgb fallback",
			scale: colors.Scale{Scale: 950, RGB: "rgb(2,6,23)"},
			want:  Swatch{Label: "950", Hex: "#020617"},
			ok:    true,
		},
		{
			name:  "nothing parses",
			scale: colors.Scale{Scale: 100, RGB: "rgb(a,b,c)"},
			want:  Swatch{Label: "100"},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := SwatchFromScale(tc.scale)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestContrast(t *testing.T) {
	t.Parallel()

	require.Equal(t, lipgloss.Color("#020617"), Contrast("#ffffff"))
	require.Equal(t, lipgloss.Color("#f8fafc"), Contrast("#020617"))
	require.Equal(t, lipgloss.Color("#000000"), Contrast("not-a-color"))
}

func TestPaletteRowContainsLabels(t *testing.T) {
	t.Parallel()

	row := PaletteRow("slate", []Swatch{{Label: "50", Hex: "#f8fafc"}, {Label: "950", Hex: "#020617"}, {Label: "x"}})
	require.True(t, strings.HasPrefix(row, "slate"))
	require.Contains(t, row, "50")
	require.Contains(t, row, "950")
	require.Contains(t, row, "x")
}

func TestBadgeKeepsText(t *testing.T) {
	t.Parallel()

	for _, render := range []func(string) string{SuccessBadge, WarningBadge, ErrorBadge, InfoBadge} {
		require.Contains(t, render("Done!"), "Done!")
	}
	require.Contains(t, Badge(BadgeVariant(99), "plain"), "plain")
}
