package chart_test

import (
	"errors"
	"image/color"
	"sync"
	"testing"

	"github.com/roffe/columnchart/pkg/chart"
)

func TestSurfaceLifecycle(t *testing.T) {
	s := chart.NewSurface(chart.DefaultConfig())
	if _, err := s.Render(chart.NewSize(640, 480)); !errors.Is(err, chart.ErrNotAttached) {
		t.Fatalf("Render() before attach = %v, want ErrNotAttached", err)
	}
	if s.Scale() != 0 {
		t.Errorf("Scale() before attach = %v, want 0", s.Scale())
	}

	s.Attach(0)
	if !s.Attached() {
		t.Fatal("Attached() = false after Attach")
	}
	if got := s.Scale(); got != 4.5 {
		t.Errorf("Scale() = %v, want 4.5", got)
	}
	if _, err := s.Render(chart.NewSize(640, 480)); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	cfg := s.Config()
	cfg.SpaceBetweenLinesXAxis = 40
	s.SetConfig(cfg)
	if got := s.Scale(); got != 4 {
		t.Errorf("Scale() after spacing change = %v, want 4", got)
	}
	cfg.NumberOfItemsYAxis = 6
	s.SetConfig(cfg)
	if got := s.Scale(); got != 2 {
		t.Errorf("Scale() after item count change = %v, want 2", got)
	}

	s.Detach()
	if s.Attached() {
		t.Error("Attached() = true after Detach")
	}
	if _, err := s.Render(chart.NewSize(640, 480)); !errors.Is(err, chart.ErrNotAttached) {
		t.Errorf("Render() after detach = %v, want ErrNotAttached", err)
	}

	s.Attach(100)
	if got := s.Scale(); got != 1 {
		t.Errorf("Scale() after reattach = %v, want 1", got)
	}
}

func TestSurfaceSetters(t *testing.T) {
	s := chart.NewSurface(chart.DefaultConfig())
	s.Attach(0)
	s.SetAlterable(true)

	ds := validDataset()
	s.SetColumnsHeight(ds.ColumnHeights)
	s.SetTextArrayByXAxis(ds.XAxisLabels)
	s.SetTextArrayByYAxis(ds.YAxisLabels)
	s.SetValuesArrayByXAxisColumnTop(ds.ColumnTopLabels)
	colors := make([]color.RGBA, 6)
	for i := range colors {
		colors[i] = color.RGBA{0x10, 0x20, 0x30, 0xFF}
	}
	s.SetColumnColors(colors)

	// the surface holds its own copy
	ds.ColumnHeights[0] = 999
	colors[0] = color.RGBA{}

	cmds, err := s.Render(chart.NewSize(640, 480))
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	first := byElement(cmds, chart.ElementColumn)[0].(chart.Rect)
	if first.Top != 395 {
		t.Errorf("first column top = %v, want 395", first.Top)
	}
	if first.Color != (color.RGBA{0x10, 0x20, 0x30, 0xFF}) {
		t.Errorf("first column color = %v", first.Color)
	}
}

func TestSurfaceLastWriteWins(t *testing.T) {
	s := chart.NewSurface(alterableConfig())
	s.Attach(0)

	older := validDataset()
	newer := validDataset()
	for i := range newer.ColumnHeights {
		newer.ColumnHeights[i] = 10
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetDataset(older)
		}()
	}
	wg.Wait()
	s.SetDataset(newer)

	for n := 0; n < 2; n++ {
		cmds, err := s.Render(chart.NewSize(640, 480))
		if err != nil {
			t.Fatalf("Render() failed: %v", err)
		}
		for i, c := range byElement(cmds, chart.ElementColumn) {
			if top := c.(chart.Rect).Top; top != 430 {
				t.Errorf("render %d column %d top = %v, want 430", n, i, top)
			}
		}
	}
}
