package colors

import (
	"image/color"
	"testing"
)

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  color.RGBA
	}{
		{name: "low", value: 0, want: color.RGBA{255, 0, 0, 255}},
		{name: "mid", value: 50, want: color.RGBA{255, 255, 0, 255}},
		{name: "high", value: 100, want: color.RGBA{0, 200, 0, 255}},
		{name: "clamped below", value: -10, want: color.RGBA{255, 0, 0, 255}},
		{name: "clamped above", value: 150, want: color.RGBA{0, 200, 0, 255}},
		{name: "quarter", value: 25, want: color.RGBA{255, 128, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(0, 100, tt.value, SchemeNormal); got != tt.want {
				t.Errorf("Interpolate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
	if got := Interpolate(10, 10, 10, SchemeNormal); got != (color.RGBA{128, 128, 128, 255}) {
		t.Errorf("empty range = %v, want gray", got)
	}
}

func TestColumnColors(t *testing.T) {
	if got := ColumnColors([]float32{1, 2}, 450, SchemeNone); got != nil {
		t.Errorf("SchemeNone = %v, want nil", got)
	}
	got := ColumnColors([]float32{0, 450, 225}, 450, SchemeUniversal)
	want := []color.RGBA{
		{255, 165, 0, 255},
		{33, 102, 172, 255},
		{247, 247, 247, 255},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d colors, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("color %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseScheme(t *testing.T) {
	for s := SchemeNone; s <= SchemeDeuteranomaly; s++ {
		got, err := ParseScheme(s.String())
		if err != nil || got != s {
			t.Errorf("ParseScheme(%q) = %v, %v", s.String(), got, err)
		}
	}
	if got, err := ParseScheme("Protanopia"); err != nil || got != SchemeProtanopia {
		t.Errorf("ParseScheme(Protanopia) = %v, %v", got, err)
	}
	if got, _ := ParseScheme(""); got != SchemeNone {
		t.Errorf("ParseScheme(\"\") = %v", got)
	}
	if _, err := ParseScheme("rainbow"); err == nil {
		t.Error("ParseScheme(rainbow) succeeded")
	}
}
