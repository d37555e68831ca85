package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/MihkelHunter/tasklist/internal/todo"
)

// ── Colour palette ───────────────────────────────────────────────────────────

var (
	colBackground = color.NRGBA{R: 15, G: 15, B: 20, A: 255}
	colSurface    = color.NRGBA{R: 26, G: 26, B: 36, A: 255}
	colDoneRow    = color.NRGBA{R: 20, G: 30, B: 25, A: 255}
	colAccent     = color.NRGBA{R: 99, G: 102, B: 241, A: 255}
	colHighPri    = color.NRGBA{R: 239, G: 68, B: 68, A: 255}
	colMedPri     = color.NRGBA{R: 245, G: 158, B: 11, A: 255}
	colLowPri     = color.NRGBA{R: 100, G: 116, B: 139, A: 255}
)

func priorityColor(p todo.Priority) color.Color {
	switch p {
	case todo.PriorityHigh:
		return colHighPri
	case todo.PriorityLow:
		return colLowPri
	default:
		return colMedPri
	}
}

// darkTheme is the application's Fyne theme.
type darkTheme struct{}

// NewDarkTheme returns the theme the desktop app installs at startup.
func NewDarkTheme() fyne.Theme {
	return &darkTheme{}
}

func (darkTheme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground:
		return colBackground
	case theme.ColorNameButton:
		return colSurface
	case theme.ColorNamePrimary:
		return colAccent
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 35, G: 35, B: 50, A: 255}
	case theme.ColorNameDisabled:
		return color.NRGBA{R: 80, G: 80, B: 100, A: 255}
	case theme.ColorNameSeparator:
		return color.NRGBA{R: 50, G: 50, B: 65, A: 255}
	}
	return theme.DefaultTheme().Color(n, v)
}

func (darkTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (darkTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (darkTheme) Size(n fyne.ThemeSizeName) float32 {
	switch n {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameText:
		return 14
	}
	return theme.DefaultTheme().Size(n)
}
