// Package ui renders terminal output for the uiregistry commands.
package ui

import "github.com/charmbracelet/lipgloss"

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantError
	BadgeVariantInfo
)

var badgeColors = map[BadgeVariant]lipgloss.AdaptiveColor{
	BadgeVariantDefault: {Light: "#334155", Dark: "#cbd5e1"},
	BadgeVariantSuccess: {Light: "#15803d", Dark: "#4ade80"},
	BadgeVariantWarning: {Light: "#a16207", Dark: "#facc15"},
	BadgeVariantError:   {Light: "#b91c1c", Dark: "#f87171"},
	BadgeVariantInfo:    {Light: "#1d4ed8", Dark: "#60a5fa"},
}

// Badge renders text in the variant's color, bold for everything but the
// default variant.
func Badge(variant BadgeVariant, text string) string {
	color, ok := badgeColors[variant]
	if !ok {
		color = badgeColors[BadgeVariantDefault]
	}
	style := lipgloss.NewStyle().Foreground(color)
	if variant != BadgeVariantDefault {
		style = style.Bold(true)
	}
	return style.Render(text)
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) string {
	return Badge(BadgeVariantSuccess, text)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) string {
	return Badge(BadgeVariantWarning, text)
}

// ErrorBadge creates an error badge.
func ErrorBadge(text string) string {
	return Badge(BadgeVariantError, text)
}

// InfoBadge creates an info badge.
func InfoBadge(text string) string {
	return Badge(BadgeVariantInfo, text)
}
