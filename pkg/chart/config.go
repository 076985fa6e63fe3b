package chart

import (
	"errors"
	"fmt"
	"image/color"
)

// Config holds everything that positions and colors a column chart. All
// lengths are device-independent pixels.
type Config struct {
	NumberOfColumns    int
	NumberOfItemsYAxis int

	ColumnWidth                float32
	StrokeWidth                float32
	SpaceBetweenColumns        float32
	SpaceBetweenLinesXAxis     float32
	StartFirstColumnPosition   float32
	XAxisStartingPosition      float32
	MoveYAxisToRight           float32
	MoveTextsYAxisToRight      float32
	MarginBottomFirstLineXAxis float32
	MarginBottomTextColumnTop  float32
	ExpandYAxisBase            float32
	ExpandYAxisTop             float32

	XAxisColor              color.RGBA
	YAxisColor              color.RGBA
	BackgroundAxisXColor    color.RGBA
	ColumnColor             color.RGBA
	YAxisTextColor          color.RGBA
	XAxisTextColor          color.RGBA
	XAxisTextColorColumnTop color.RGBA

	YAxisTextSize          float32
	XAxisTextSize          float32
	XAxisTextSizeColumnTop float32

	// Alterable selects caller supplied content over the built-in placeholders.
	Alterable bool
}

var (
	Black   = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	Gray    = color.RGBA{0x88, 0x88, 0x88, 0xFF}
	Magenta = color.RGBA{0xFF, 0x00, 0xFF, 0xFF}
)

func DefaultConfig() Config {
	return Config{
		NumberOfColumns:            6,
		NumberOfItemsYAxis:         11,
		ColumnWidth:                50,
		StrokeWidth:                5,
		SpaceBetweenColumns:        40,
		SpaceBetweenLinesXAxis:     45,
		StartFirstColumnPosition:   52,
		XAxisStartingPosition:      70,
		MoveTextsYAxisToRight:      32,
		MarginBottomFirstLineXAxis: 40,
		XAxisColor:                 Black,
		YAxisColor:                 Black,
		BackgroundAxisXColor:       Gray,
		ColumnColor:                Magenta,
		YAxisTextColor:             Black,
		XAxisTextColor:             Black,
		XAxisTextColorColumnTop:    Black,
		YAxisTextSize:              24,
		XAxisTextSize:              24,
		XAxisTextSizeColumnTop:     24,
	}
}

// Validate reports configuration that no render pass can honour.
func (c Config) Validate() error {
	var errs []error
	if c.NumberOfColumns < 0 {
		errs = append(errs, fmt.Errorf("number of columns must not be negative, got %d", c.NumberOfColumns))
	}
	if c.NumberOfItemsYAxis < 1 {
		errs = append(errs, fmt.Errorf("number of items on the y-axis must be at least 1, got %d", c.NumberOfItemsYAxis))
	}
	if c.ColumnWidth < 0 {
		errs = append(errs, fmt.Errorf("column width must not be negative, got %g", c.ColumnWidth))
	}
	if c.StrokeWidth < 0 {
		errs = append(errs, fmt.Errorf("stroke width must not be negative, got %g", c.StrokeWidth))
	}
	return errors.Join(errs...)
}

// scaleInputsEqual reports whether the fields feeding the scale are unchanged.
func (c Config) scaleInputsEqual(o Config) bool {
	return c.SpaceBetweenLinesXAxis == o.SpaceBetweenLinesXAxis &&
		c.NumberOfItemsYAxis == o.NumberOfItemsYAxis
}
