package chart_test

import (
	"errors"
	"image/color"
	"reflect"
	"testing"

	"github.com/roffe/columnchart/pkg/chart"
)

func alterableConfig() chart.Config {
	cfg := chart.DefaultConfig()
	cfg.Alterable = true
	return cfg
}

func validDataset() *chart.Dataset {
	return &chart.Dataset{
		ColumnHeights:   []float32{45, 90, 135, 180, 225, 270},
		XAxisLabels:     []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"},
		ColumnTopLabels: []string{"10%", "20%", "30%", "40%", "50%", "60%"},
		YAxisLabels:     []string{"0%", "10%", "20%", "30%", "40%", "50%", "60%", "70%", "80%", "90%", "100%"},
	}
}

func byElement(cmds []chart.Command, e chart.Element) []chart.Command {
	var out []chart.Command
	for _, c := range cmds {
		if c.Kind() == e {
			out = append(out, c)
		}
	}
	return out
}

func TestRenderColumnTops(t *testing.T) {
	size := chart.NewSize(640, 480)
	cmds, err := chart.Render(size, alterableConfig(), validDataset())
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	cols := byElement(cmds, chart.ElementColumn)
	if len(cols) != 6 {
		t.Fatalf("got %d columns, want 6", len(cols))
	}
	wantTops := []float32{395, 350, 305, 260, 215, 170}
	var prevHeight float32
	for i, c := range cols {
		r := c.(chart.Rect)
		if r.Top != wantTops[i] {
			t.Errorf("column %d top = %v, want %v", i, r.Top, wantTops[i])
		}
		if r.Bottom != 435 {
			t.Errorf("column %d bottom = %v, want 435", i, r.Bottom)
		}
		if r.Width() != 50 {
			t.Errorf("column %d width = %v, want 50", i, r.Width())
		}
		if r.Color != chart.Magenta {
			t.Errorf("column %d color = %v, want default column color", i, r.Color)
		}
		if h := r.Height(); h <= prevHeight {
			t.Errorf("column %d height %v not above previous %v", i, h, prevHeight)
		}
		prevHeight = r.Height()
	}

	tops := byElement(cmds, chart.ElementColumnTopLabel)
	for i, c := range tops {
		txt := c.(chart.Text)
		if want := wantTops[i] - 10; txt.Position.Y != want {
			t.Errorf("column top label %d y = %v, want %v", i, txt.Position.Y, want)
		}
		if want := cols[i].(chart.Rect).Left + 25; txt.Position.X != want {
			t.Errorf("column top label %d x = %v, want %v", i, txt.Position.X, want)
		}
	}
}

func TestRenderOrderAndAxes(t *testing.T) {
	size := chart.NewSize(640, 480)
	cmds, err := chart.Render(size, alterableConfig(), validDataset())
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	wantOrder := []struct {
		e chart.Element
		n int
	}{
		{chart.ElementGridLine, 11},
		{chart.ElementYAxis, 1},
		{chart.ElementYAxisLabel, 11},
		{chart.ElementXAxisLabel, 6},
		{chart.ElementColumnTopLabel, 6},
		{chart.ElementColumn, 6},
	}
	pos := 0
	for _, w := range wantOrder {
		for i := 0; i < w.n; i++ {
			if pos >= len(cmds) {
				t.Fatalf("ran out of commands at %v", w.e)
			}
			if cmds[pos].Kind() != w.e {
				t.Fatalf("command %d is %v, want %v", pos, cmds[pos].Kind(), w.e)
			}
			pos++
		}
	}
	if pos != len(cmds) {
		t.Fatalf("got %d commands, want %d", len(cmds), pos)
	}

	first := cmds[0].(chart.Line)
	if first.From != (chart.Point{X: 70, Y: 435}) || first.To != (chart.Point{X: 640, Y: 435}) {
		t.Errorf("x-axis line = %v -> %v", first.From, first.To)
	}
	if first.Color != chart.Black || first.StrokeWidth != 5 {
		t.Errorf("x-axis line paint = %v/%v", first.Color, first.StrokeWidth)
	}
	second := cmds[1].(chart.Line)
	if second.From.Y != 395 || second.Color != chart.Gray {
		t.Errorf("grid line 1 = %v %v, want y 395 in gray", second.From, second.Color)
	}

	axis := cmds[11].(chart.Line)
	if axis.From != (chart.Point{X: 80, Y: -30}) || axis.To != (chart.Point{X: 80, Y: 445}) {
		t.Errorf("y-axis = %v -> %v", axis.From, axis.To)
	}

	y0 := cmds[12].(chart.Text)
	if y0.Position != (chart.Point{X: 32, Y: 435}) || y0.Text != "0%" || y0.Align != chart.AlignCenter {
		t.Errorf("first y-axis label = %+v", y0)
	}
	y1 := cmds[13].(chart.Text)
	if y1.Position.Y != 395 {
		t.Errorf("second y-axis label y = %v, want 395", y1.Position.Y)
	}

	x0 := cmds[23].(chart.Text)
	if x0.Position != (chart.Point{X: 147, Y: 470}) || x0.Text != "Jan" {
		t.Errorf("first x-axis label = %+v", x0)
	}
}

func TestRenderPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		ds   *chart.Dataset
	}{
		{name: "nil dataset"},
		{name: "invalid dataset", ds: &chart.Dataset{YAxisLabels: []string{"x"}}},
		{name: "valid dataset", ds: validDataset()},
	}
	size := chart.NewSize(640, 636)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := chart.Render(size, chart.DefaultConfig(), tt.ds)
			if err != nil {
				t.Fatalf("Render() failed: %v", err)
			}
			if len(cmds) != 41 {
				t.Fatalf("got %d commands, want 41", len(cmds))
			}
			for _, c := range byElement(cmds, chart.ElementYAxisLabel) {
				if c.(chart.Text).Text != "Value" {
					t.Errorf("y-axis placeholder = %q", c.(chart.Text).Text)
				}
			}
			for _, c := range byElement(cmds, chart.ElementXAxisLabel) {
				if c.(chart.Text).Text != "Text" {
					t.Errorf("x-axis placeholder = %q", c.(chart.Text).Text)
				}
			}
			for _, c := range byElement(cmds, chart.ElementColumnTopLabel) {
				txt := c.(chart.Text)
				if txt.Text != "Text" || txt.Position.Y != 141 {
					t.Errorf("column top placeholder = %q at %v", txt.Text, txt.Position.Y)
				}
			}
			for _, c := range byElement(cmds, chart.ElementColumn) {
				r := c.(chart.Rect)
				if r.Top != 146 || r.Bottom != 591 {
					t.Errorf("placeholder column = %v..%v, want 146..591", r.Top, r.Bottom)
				}
			}
		})
	}
}

func TestRenderMismatch(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*chart.Dataset)
		wantArrays []string
		missing    []chart.Element
		present    []chart.Element
	}{
		{
			name:       "y-axis labels short",
			mutate:     func(d *chart.Dataset) { d.YAxisLabels = d.YAxisLabels[:10] },
			wantArrays: []string{chart.ArrayYAxisLabels},
			missing:    []chart.Element{chart.ElementYAxisLabel},
			present:    []chart.Element{chart.ElementXAxisLabel, chart.ElementColumnTopLabel, chart.ElementColumn},
		},
		{
			name:       "x-axis labels short",
			mutate:     func(d *chart.Dataset) { d.XAxisLabels = d.XAxisLabels[:5] },
			wantArrays: []string{chart.ArrayXAxisLabels},
			missing:    []chart.Element{chart.ElementXAxisLabel},
			present:    []chart.Element{chart.ElementYAxisLabel, chart.ElementColumnTopLabel, chart.ElementColumn},
		},
		{
			name:       "column top labels short",
			mutate:     func(d *chart.Dataset) { d.ColumnTopLabels = d.ColumnTopLabels[:5] },
			wantArrays: []string{chart.ArrayColumnTopLabels},
			missing:    []chart.Element{chart.ElementColumnTopLabel},
			present:    []chart.Element{chart.ElementYAxisLabel, chart.ElementXAxisLabel, chart.ElementColumn},
		},
		{
			name:       "column heights short",
			mutate:     func(d *chart.Dataset) { d.ColumnHeights = d.ColumnHeights[:5] },
			wantArrays: []string{chart.ArrayColumnHeights},
			missing:    []chart.Element{chart.ElementColumnTopLabel, chart.ElementColumn},
			present:    []chart.Element{chart.ElementYAxisLabel, chart.ElementXAxisLabel},
		},
		{
			name: "column colors short",
			mutate: func(d *chart.Dataset) {
				d.ColumnColors = make([]color.RGBA, 5)
			},
			wantArrays: []string{chart.ArrayColumnColors},
			missing:    []chart.Element{chart.ElementColumn},
			present:    []chart.Element{chart.ElementYAxisLabel, chart.ElementXAxisLabel, chart.ElementColumnTopLabel},
		},
		{
			name:       "x-axis labels too long",
			mutate:     func(d *chart.Dataset) { d.XAxisLabels = append(d.XAxisLabels, "Jul") },
			wantArrays: []string{chart.ArrayXAxisLabels},
			missing:    []chart.Element{chart.ElementXAxisLabel},
			present:    []chart.Element{chart.ElementColumn},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := validDataset()
			tt.mutate(ds)
			cmds, err := chart.Render(chart.NewSize(640, 480), alterableConfig(), ds)
			if err == nil {
				t.Fatal("Render() succeeded unexpectedly")
			}
			if !errors.Is(err, chart.ErrConfigurationMismatch) {
				t.Fatalf("Render() error %v is not a configuration mismatch", err)
			}
			var me *chart.MismatchError
			if !errors.As(err, &me) {
				t.Fatalf("Render() error %v has no *MismatchError", err)
			}
			found := false
			for _, a := range tt.wantArrays {
				if me.Array == a {
					found = true
				}
			}
			if !found {
				t.Errorf("mismatch names %q, want one of %v", me.Array, tt.wantArrays)
			}
			for _, e := range tt.missing {
				if n := len(byElement(cmds, e)); n != 0 {
					t.Errorf("%v: got %d commands, want none", e, n)
				}
			}
			for _, e := range tt.present {
				if n := len(byElement(cmds, e)); n == 0 {
					t.Errorf("%v: got no commands", e)
				}
			}
			if n := len(byElement(cmds, chart.ElementGridLine)); n != 11 {
				t.Errorf("grid lines = %d, want 11", n)
			}
		})
	}
}

func TestRenderColumnColors(t *testing.T) {
	ds := validDataset()
	ds.ColumnColors = make([]color.RGBA, 6)
	for i := range ds.ColumnColors {
		ds.ColumnColors[i] = color.RGBA{uint8(i * 40), 0x80, 0x20, 0xFF}
	}
	cmds, err := chart.Render(chart.NewSize(640, 480), alterableConfig(), ds)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	for i, c := range byElement(cmds, chart.ElementColumn) {
		if got := c.(chart.Rect).Color; got != ds.ColumnColors[i] {
			t.Errorf("column %d color = %v, want %v", i, got, ds.ColumnColors[i])
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	for _, cfg := range []chart.Config{chart.DefaultConfig(), alterableConfig()} {
		size := chart.NewSize(700, 520)
		a, errA := chart.Render(size, cfg, validDataset())
		b, errB := chart.Render(size, cfg, validDataset())
		if errA != nil || errB != nil {
			t.Fatalf("Render() failed: %v / %v", errA, errB)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("alterable=%v: two renders differ", cfg.Alterable)
		}
	}
}

func TestRenderNegativeCounts(t *testing.T) {
	for _, alterable := range []bool{false, true} {
		cfg := chart.DefaultConfig()
		cfg.Alterable = alterable
		cfg.NumberOfColumns = -2
		cfg.NumberOfItemsYAxis = -3
		cmds, err := chart.Render(chart.NewSize(640, 636), cfg, validDataset())
		if alterable && err == nil {
			t.Error("alterable: Render() succeeded with mismatched arrays")
		}
		if !alterable && err != nil {
			t.Errorf("placeholder: Render() failed: %v", err)
		}
		for _, e := range []chart.Element{chart.ElementGridLine, chart.ElementColumn, chart.ElementColumnTopLabel} {
			if got := byElement(cmds, e); len(got) != 0 {
				t.Errorf("alterable=%v: got %d %v commands, want 0", alterable, len(got), e)
			}
		}
	}
}

func TestDatasetValidate(t *testing.T) {
	cfg := alterableConfig()
	if err := validDataset().Validate(cfg); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
	var nilDs *chart.Dataset
	if err := nilDs.Validate(cfg); !errors.Is(err, chart.ErrConfigurationMismatch) {
		t.Errorf("Validate() on nil dataset = %v, want mismatch", err)
	}
}
