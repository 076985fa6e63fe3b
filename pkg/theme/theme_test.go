package theme_test

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/roffe/columnchart/pkg/theme"
)

func TestChartTheme(t *testing.T) {
	th := theme.ChartTheme{}
	tests := []struct {
		name fyne.ThemeColorName
		want color.Color
	}{
		{fynetheme.ColorNameBackground, color.RGBA{0xFA, 0xFA, 0xFA, 0xFF}},
		{fynetheme.ColorNameForeground, color.RGBA{0x10, 0x10, 0x10, 0xFF}},
	}
	for _, tt := range tests {
		if got := th.Color(tt.name, fynetheme.VariantDark); got != tt.want {
			t.Errorf("Color(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if got := th.Size(fynetheme.SizeNameSeparatorThickness); got != 0 {
		t.Errorf("separator thickness = %v, want 0", got)
	}
	if got := th.Size(fynetheme.SizeNameInlineIcon); got != fynetheme.DefaultTheme().Size(fynetheme.SizeNameInlineIcon) {
		t.Errorf("inline icon size = %v", got)
	}
}
