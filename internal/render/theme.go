package render

import (
	"sort"

	"github.com/ThomasCrouzet/tierview/internal/model"
)

// Theme defines colors for each tier and for the surrounding elements.
type Theme struct {
	Name   string
	Colors map[string]ThemeColor
}

// ThemeColor defines fill and stroke colors for an element type.
type ThemeColor struct {
	Fill   string
	Stroke string
	Font   string
}

var themes = map[string]*Theme{
	"default": {
		Name: "default",
		Colors: map[string]ThemeColor{
			"internet": {Fill: "#F3F4F6", Stroke: "#6B7280", Font: "#374151"},
			"public":   {Fill: "#FFEDD5", Stroke: "#EA580C", Font: "#9A3412"},
			"web":      {Fill: "#E0F2FE", Stroke: "#0284C7", Font: "#075985"},
			"app":      {Fill: "#DCFCE7", Stroke: "#16A34A", Font: "#166534"},
			"database": {Fill: "#FEE2E2", Stroke: "#DC2626", Font: "#991B1B"},
			"vpc":      {Fill: "#F9FAFB", Stroke: "#4B5563", Font: "#111827"},
			"security": {Fill: "#EDE9FE", Stroke: "#7C3AED", Font: "#5B21B6"},
		},
	},
	"dark": {
		Name: "dark",
		Colors: map[string]ThemeColor{
			"internet": {Fill: "#1F2937", Stroke: "#9CA3AF", Font: "#D1D5DB"},
			"public":   {Fill: "#431407", Stroke: "#F97316", Font: "#FDBA74"},
			"web":      {Fill: "#082F49", Stroke: "#0EA5E9", Font: "#7DD3FC"},
			"app":      {Fill: "#052E16", Stroke: "#22C55E", Font: "#86EFAC"},
			"database": {Fill: "#450A0A", Stroke: "#EF4444", Font: "#FCA5A5"},
			"vpc":      {Fill: "#111827", Stroke: "#6B7280", Font: "#E5E7EB"},
			"security": {Fill: "#2E1065", Stroke: "#A78BFA", Font: "#C4B5FD"},
		},
	},
	"monochrome": {
		Name: "monochrome",
		Colors: map[string]ThemeColor{
			"internet": {Fill: "#F9FAFB", Stroke: "#9CA3AF", Font: "#4B5563"},
			"public":   {Fill: "#E5E7EB", Stroke: "#374151", Font: "#111827"},
			"web":      {Fill: "#F3F4F6", Stroke: "#6B7280", Font: "#374151"},
			"app":      {Fill: "#E5E7EB", Stroke: "#4B5563", Font: "#1F2937"},
			"database": {Fill: "#D1D5DB", Stroke: "#374151", Font: "#111827"},
			"vpc":      {Fill: "#FFFFFF", Stroke: "#6B7280", Font: "#111827"},
			"security": {Fill: "#F3F4F6", Stroke: "#9CA3AF", Font: "#6B7280"},
		},
	},
	"ocean": {
		Name: "ocean",
		Colors: map[string]ThemeColor{
			"internet": {Fill: "#F0F9FF", Stroke: "#38BDF8", Font: "#0369A1"},
			"public":   {Fill: "#CFFAFE", Stroke: "#0891B2", Font: "#155E75"},
			"web":      {Fill: "#E0F2FE", Stroke: "#0284C7", Font: "#075985"},
			"app":      {Fill: "#DBEAFE", Stroke: "#2563EB", Font: "#1E40AF"},
			"database": {Fill: "#C7D2FE", Stroke: "#4F46E5", Font: "#3730A3"},
			"vpc":      {Fill: "#F8FAFC", Stroke: "#0EA5E9", Font: "#0C4A6E"},
			"security": {Fill: "#E0E7FF", Stroke: "#6366F1", Font: "#3730A3"},
		},
	},
}

// ThemeNames returns all available theme names, sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTheme reports whether name is a known theme.
func HasTheme(name string) bool {
	_, ok := themes[name]
	return ok
}

// GetTheme returns the named theme or the default.
func GetTheme(name string) *Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["default"]
}

// ColorForTier returns the theme color for a tier.
func (t *Theme) ColorForTier(tier model.Tier) ThemeColor {
	return t.ColorForElement(string(tier))
}

// ColorForElement returns the theme color for a named element.
func (t *Theme) ColorForElement(name string) ThemeColor {
	if c, ok := t.Colors[name]; ok {
		return c
	}
	return ThemeColor{Fill: "#F9FAFB", Stroke: "#D1D5DB", Font: "#111827"}
}
