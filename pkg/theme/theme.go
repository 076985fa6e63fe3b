package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ChartTheme is a light theme so the black chart strokes stay readable.
type ChartTheme struct{}

var _ fyne.Theme = (*ChartTheme)(nil)

func (m ChartTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 0xFA, G: 0xFA, B: 0xFA, A: 0xFF}
	case theme.ColorNameForeground:
		return color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xFF}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF}
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

func (m ChartTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (m ChartTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (m ChartTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameSeparatorThickness:
		return 0
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 24
	case theme.SizeNameSubHeadingText:
		return 18
	}
	return theme.DefaultTheme().Size(name)
}
