package chart

import (
	"errors"
	"image/color"
)

// Dataset is the caller supplied content drawn when Config.Alterable is set.
// Heights are expected to be pre-multiplied by the surface scale.
type Dataset struct {
	ColumnHeights   []float32
	ColumnColors    []color.RGBA // optional
	XAxisLabels     []string
	ColumnTopLabels []string
	YAxisLabels     []string
}

// Clone returns a deep copy so the caller may keep mutating its slices.
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}
	return &Dataset{
		ColumnHeights:   cloneSlice(d.ColumnHeights),
		ColumnColors:    cloneSlice(d.ColumnColors),
		XAxisLabels:     cloneSlice(d.XAxisLabels),
		ColumnTopLabels: cloneSlice(d.ColumnTopLabels),
		YAxisLabels:     cloneSlice(d.YAxisLabels),
	}
}

// Validate checks every array against the cardinalities of cfg and returns
// all mismatches joined together.
func (d *Dataset) Validate(cfg Config) error {
	return errors.Join(
		d.checkYAxisLabels(cfg),
		d.checkXAxisLabels(cfg),
		d.checkColumnTop(cfg),
		d.checkColumns(cfg),
	)
}

func (d *Dataset) checkYAxisLabels(cfg Config) error {
	return checkLen(ArrayYAxisLabels, CardinalityItemsYAxis, cfg.NumberOfItemsYAxis, len(d.yAxisLabels()))
}

func (d *Dataset) checkXAxisLabels(cfg Config) error {
	return checkLen(ArrayXAxisLabels, CardinalityColumns, cfg.NumberOfColumns, len(d.xAxisLabels()))
}

func (d *Dataset) checkColumnTop(cfg Config) error {
	return errors.Join(
		checkLen(ArrayColumnTopLabels, CardinalityColumns, cfg.NumberOfColumns, len(d.columnTopLabels())),
		checkLen(ArrayColumnHeights, CardinalityColumns, cfg.NumberOfColumns, len(d.columnHeights())),
	)
}

func (d *Dataset) checkColumns(cfg Config) error {
	err := checkLen(ArrayColumnHeights, CardinalityColumns, cfg.NumberOfColumns, len(d.columnHeights()))
	if colors := d.columnColors(); colors != nil {
		err = errors.Join(err, checkLen(ArrayColumnColors, CardinalityColumns, cfg.NumberOfColumns, len(colors)))
	}
	return err
}

// The accessors below make a nil *Dataset behave like an empty one.

func (d *Dataset) columnHeights() []float32 {
	if d == nil {
		return nil
	}
	return d.ColumnHeights
}

func (d *Dataset) columnColors() []color.RGBA {
	if d == nil {
		return nil
	}
	return d.ColumnColors
}

func (d *Dataset) xAxisLabels() []string {
	if d == nil {
		return nil
	}
	return d.XAxisLabels
}

func (d *Dataset) columnTopLabels() []string {
	if d == nil {
		return nil
	}
	return d.ColumnTopLabels
}

func (d *Dataset) yAxisLabels() []string {
	if d == nil {
		return nil
	}
	return d.YAxisLabels
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
