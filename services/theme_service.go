package services

import "whisperchat_server/models"

const (
	tintColorLight = "#2F65CB"
	tintColorDark  = "#4F8EFF"
)

var palettes = map[string]models.Palette{
	models.SchemeLight: {
		Text:            "#333333",
		TextSecondary:   "#6B7280",
		Background:      "rgba(245, 247, 250, 0.85)",
		Card:            "rgba(255, 255, 255, 0.7)",
		GlassCard:       "rgba(255, 255, 255, 0.6)",
		Tint:            tintColorLight,
		Accent:          "#4361EE",
		TabIconDefault:  "#A0AEC0",
		TabIconSelected: tintColorLight,
		Border:          "rgba(200, 210, 220, 0.5)",
		Notification:    "#FF6B6B",
		Success:         "#10B981",
		Warning:         "#FBBF24",
		Error:           "#EF4444",
		Button:          "#4361EE",
		ButtonText:      "#FFFFFF",
		Shimmer:         "rgba(222, 231, 248, 0.7)",
		ModalBackground: "rgba(245, 247, 250, 0.9)",
	},
	models.SchemeDark: {
		Text:            "#F1F5F9",
		TextSecondary:   "#A0AEC0",
		Background:      "rgba(30, 35, 45, 0.85)",
		Card:            "rgba(45, 50, 65, 0.7)",
		GlassCard:       "rgba(45, 50, 65, 0.6)",
		Tint:            tintColorDark,
		Accent:          "#6366F1",
		TabIconDefault:  "#6B7280",
		TabIconSelected: tintColorDark,
		Border:          "rgba(75, 85, 95, 0.5)",
		Notification:    "#F43F5E",
		Success:         "#10B981",
		Warning:         "#F59E0B",
		Error:           "#EF4444",
		Button:          "#6366F1",
		ButtonText:      "#FFFFFF",
		Shimmer:         "rgba(55, 65, 80, 0.7)",
		ModalBackground: "rgba(30, 35, 45, 0.9)",
	},
}

// PaletteFor maps a colour scheme to its palette; unknown schemes get light
func PaletteFor(scheme string) models.Palette {
	if p, ok := palettes[scheme]; ok {
		return p
	}
	return palettes[models.SchemeLight]
}
