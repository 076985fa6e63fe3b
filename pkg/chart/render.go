package chart

import (
	"errors"
	"image/color"
)

const (
	placeholderValue = "Value"
	placeholderText  = "Text"
)

// Paint is the brush state a render pass draws with. A Surface owns one
// between Attach and Detach.
type Paint struct {
	Color       color.RGBA
	StrokeWidth float32
	TextSize    float32
	Align       Align
}

func newPaint(cfg Config) *Paint {
	return &Paint{StrokeWidth: cfg.StrokeWidth}
}

// Render draws one frame with a fresh paint. ds is only read when
// cfg.Alterable is set.
//
// A dataset array of the wrong length aborts the group it feeds (y-axis
// labels, x-axis labels, column top labels or columns). The other groups are
// still drawn and the returned error joins one *MismatchError per problem.
func Render(size Size, cfg Config, ds *Dataset) ([]Command, error) {
	return render(size, cfg, ds, newPaint(cfg))
}

type frame struct {
	cfg    Config
	height float32
	width  float32
	ds     *Dataset
	paint  *Paint
	cmds   []Command
}

func render(size Size, cfg Config, ds *Dataset, p *Paint) ([]Command, error) {
	f := &frame{
		cfg:    cfg,
		width:  size.Width,
		height: size.Height,
		ds:     ds,
		paint:  p,
		cmds:   make([]Command, 0, max(0, 2+cfg.NumberOfItemsYAxis*2+cfg.NumberOfColumns*3)),
	}
	p.StrokeWidth = cfg.StrokeWidth

	f.gridLines()
	f.yAxis()

	var errs []error
	if cfg.Alterable {
		errs = append(errs,
			f.yAxisLabels(),
			f.xAxisLabels(),
			f.columnTopLabels(),
			f.columns(),
		)
	} else {
		f.yAxisPlaceholders()
		f.xAxisPlaceholders()
		f.columnTopPlaceholders()
		f.columnPlaceholders()
	}
	return f.cmds, errors.Join(errs...)
}

func (f *frame) line(e Element, x1, y1, x2, y2 float32) {
	f.cmds = append(f.cmds, Line{
		Element:     e,
		From:        Point{x1, y1},
		To:          Point{x2, y2},
		Color:       f.paint.Color,
		StrokeWidth: f.paint.StrokeWidth,
	})
}

func (f *frame) text(e Element, s string, x, y float32) {
	f.cmds = append(f.cmds, Text{
		Element:  e,
		Text:     s,
		Position: Point{x, y},
		Color:    f.paint.Color,
		Size:     f.paint.TextSize,
		Align:    f.paint.Align,
	})
}

func (f *frame) rect(left, top, right, bottom float32) {
	f.cmds = append(f.cmds, Rect{
		Element: ElementColumn,
		Left:    left,
		Top:     top,
		Right:   right,
		Bottom:  bottom,
		Color:   f.paint.Color,
	})
}

func (f *frame) gridLines() {
	for i := 0; i < f.cfg.NumberOfItemsYAxis; i++ {
		if i == 0 {
			f.paint.Color = f.cfg.XAxisColor
		} else {
			f.paint.Color = f.cfg.BackgroundAxisXColor
		}
		y := f.cfg.GridLineY(f.height, i)
		f.line(ElementGridLine, f.cfg.XAxisStartingPosition, y, f.width, y)
	}
}

func (f *frame) yAxis() {
	f.paint.Color = f.cfg.YAxisColor
	x := f.cfg.XAxisStartingPosition + 10 + f.cfg.MoveYAxisToRight
	top := f.height - (15 + f.cfg.SpaceBetweenLinesXAxis*float32(f.cfg.NumberOfItemsYAxis)) - f.cfg.ExpandYAxisTop
	bottom := f.cfg.Baseline(f.height) + 10 + f.cfg.ExpandYAxisBase
	f.line(ElementYAxis, x, top, x, bottom)
}

func (f *frame) yAxisTextPaint() {
	f.paint.Color = f.cfg.YAxisTextColor
	f.paint.TextSize = f.cfg.YAxisTextSize
	f.paint.Align = AlignCenter
}

func (f *frame) xAxisTextPaint() {
	f.paint.Color = f.cfg.XAxisTextColor
	f.paint.TextSize = f.cfg.XAxisTextSize
	f.paint.Align = AlignCenter
}

func (f *frame) columnTopTextPaint() {
	f.paint.Color = f.cfg.XAxisTextColorColumnTop
	f.paint.TextSize = f.cfg.XAxisTextSizeColumnTop
	f.paint.Align = AlignCenter
}

func (f *frame) columnTopLabelY(columnHeight float32) float32 {
	return f.cfg.ColumnTop(f.height, columnHeight) - 10 - f.cfg.MarginBottomTextColumnTop
}

func (f *frame) yAxisLabels() error {
	if err := f.ds.checkYAxisLabels(f.cfg); err != nil {
		return err
	}
	f.yAxisTextPaint()
	for i, label := range f.ds.yAxisLabels() {
		f.text(ElementYAxisLabel, label, f.cfg.MoveTextsYAxisToRight, f.cfg.yAxisLabelY(f.height, i))
	}
	return nil
}

func (f *frame) yAxisPlaceholders() {
	f.yAxisTextPaint()
	for i := 0; i < f.cfg.NumberOfItemsYAxis; i++ {
		f.text(ElementYAxisLabel, placeholderValue, f.cfg.MoveTextsYAxisToRight, f.cfg.yAxisLabelY(f.height, i))
	}
}

func (f *frame) xAxisLabels() error {
	if err := f.ds.checkXAxisLabels(f.cfg); err != nil {
		return err
	}
	f.xAxisTextPaint()
	for i, label := range f.ds.xAxisLabels() {
		f.text(ElementXAxisLabel, label, f.cfg.ColumnCenter(i), f.height-10)
	}
	return nil
}

func (f *frame) xAxisPlaceholders() {
	f.xAxisTextPaint()
	for i := 0; i < f.cfg.NumberOfColumns; i++ {
		f.text(ElementXAxisLabel, placeholderText, f.cfg.ColumnCenter(i), f.height-10)
	}
}

func (f *frame) columnTopLabels() error {
	if err := f.ds.checkColumnTop(f.cfg); err != nil {
		return err
	}
	f.columnTopTextPaint()
	heights := f.ds.columnHeights()
	for i, label := range f.ds.columnTopLabels() {
		f.text(ElementColumnTopLabel, label, f.cfg.ColumnCenter(i), f.columnTopLabelY(heights[i]))
	}
	return nil
}

// Placeholder labels have no column height to follow so they sit on a
// fixed row above the grid.
func (f *frame) columnTopPlaceholders() {
	f.columnTopTextPaint()
	y := f.cfg.gridTop(f.height)
	for i := 0; i < f.cfg.NumberOfColumns; i++ {
		f.text(ElementColumnTopLabel, placeholderText, f.cfg.ColumnCenter(i), y)
	}
}

func (f *frame) columns() error {
	if err := f.ds.checkColumns(f.cfg); err != nil {
		return err
	}
	bottom := f.cfg.Baseline(f.height)
	for i, h := range f.ds.columnHeights() {
		f.paint.Color = f.cfg.ColumnColor
		if colors := f.ds.columnColors(); colors != nil {
			f.paint.Color = colors[i]
		}
		left := f.cfg.ColumnLeft(i)
		f.rect(left, f.cfg.ColumnTop(f.height, h), left+f.cfg.ColumnWidth, bottom)
	}
	return nil
}

func (f *frame) columnPlaceholders() {
	f.paint.Color = f.cfg.ColumnColor
	top := f.cfg.gridTop(f.height) + f.cfg.StrokeWidth
	bottom := f.cfg.Baseline(f.height)
	for i := 0; i < f.cfg.NumberOfColumns; i++ {
		left := f.cfg.ColumnLeft(i)
		f.rect(left, top, left+f.cfg.ColumnWidth, bottom)
	}
}
