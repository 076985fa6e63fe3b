// Package columnchart is a fyne widget drawing a chart.Surface.
package columnchart

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/columnchart/pkg/chart"
)

type Options struct {
	WidthMode  chart.MeasureMode
	HeightMode chart.MeasureMode
	// Density converts dp into canvas units, default 1
	Density float32
	MinSize fyne.Size
}

type ColumnChart struct {
	widget.BaseWidget

	surface *chart.Surface
	opts    Options

	// OnTapped is called on the main goroutine when the chart is tapped.
	OnTapped func()
	// OnError receives render errors, the default logs them with fyne.LogError.
	OnError func(error)
}

func New(cfg chart.Config, opts *Options) *ColumnChart {
	if opts == nil {
		opts = &Options{
			WidthMode:  chart.MeasureFillAvailable,
			HeightMode: chart.MeasureFillAvailable,
		}
	}
	if opts.Density <= 0 {
		opts.Density = 1
	}
	if opts.MinSize == (fyne.Size{}) {
		opts.MinSize = fyne.NewSize(chart.DefaultWidthDp*opts.Density, chart.DefaultHeightDp*opts.Density)
	}
	c := &ColumnChart{
		surface: chart.NewSurface(cfg),
		opts:    *opts,
	}
	c.ExtendBaseWidget(c)
	return c
}

// Surface gives access to the surface backing the widget. Call Refresh after
// changing it directly.
func (c *ColumnChart) Surface() *chart.Surface {
	return c.surface
}

// Scale is the factor turning a percentage into a column height, 0 until
// the widget has been shown.
func (c *ColumnChart) Scale() float32 {
	return c.surface.Scale()
}

func (c *ColumnChart) SetDataset(ds *chart.Dataset) {
	c.surface.SetDataset(ds)
	c.Refresh()
}

func (c *ColumnChart) SetAlterable(alterable bool) {
	c.surface.SetAlterable(alterable)
	c.Refresh()
}

func (c *ColumnChart) SetColumnsHeight(heights []float32) {
	c.surface.SetColumnsHeight(heights)
	c.Refresh()
}

func (c *ColumnChart) SetTextArrayByXAxis(labels []string) {
	c.surface.SetTextArrayByXAxis(labels)
	c.Refresh()
}

func (c *ColumnChart) SetTextArrayByYAxis(labels []string) {
	c.surface.SetTextArrayByYAxis(labels)
	c.Refresh()
}

func (c *ColumnChart) SetValuesArrayByXAxisColumnTop(labels []string) {
	c.surface.SetValuesArrayByXAxisColumnTop(labels)
	c.Refresh()
}

func (c *ColumnChart) SetColumnColors(colors []color.RGBA) {
	c.surface.SetColumnColors(colors)
	c.Refresh()
}

func (c *ColumnChart) Tapped(*fyne.PointEvent) {
	if c.OnTapped != nil {
		c.OnTapped()
	}
}

// CreateRenderer attaches the surface with the height the widget has before
// its first layout.
func (c *ColumnChart) CreateRenderer() fyne.WidgetRenderer {
	c.surface.Attach(c.Size().Height)
	return &columnChartRenderer{c: c}
}

func (c *ColumnChart) reportError(err error) {
	if c.OnError != nil {
		c.OnError(err)
		return
	}
	fyne.LogError("column chart", err)
}

type columnChartRenderer struct {
	c        *ColumnChart
	lastSize fyne.Size
	objects  []fyne.CanvasObject
}

func (r *columnChartRenderer) MinSize() fyne.Size {
	return r.c.opts.MinSize
}

func (r *columnChartRenderer) Layout(space fyne.Size) {
	r.lastSize = space
	r.draw()
}

func (r *columnChartRenderer) Refresh() {
	r.draw()
	canvas.Refresh(r.c)
}

func (r *columnChartRenderer) Destroy() {
	r.c.surface.Detach()
}

func (r *columnChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *columnChartRenderer) draw() {
	size := chart.ComputeMeasuredSize(
		r.c.opts.WidthMode,
		r.c.opts.HeightMode,
		chart.NewSize(r.lastSize.Width, r.lastSize.Height),
		r.c.opts.Density,
	)
	cmds, err := r.c.surface.Render(size)
	if err != nil {
		r.c.reportError(err)
	}
	objs := make([]fyne.CanvasObject, 0, len(cmds))
	for _, cmd := range cmds {
		objs = append(objs, toCanvasObject(cmd))
	}
	r.objects = objs
}

func toCanvasObject(cmd chart.Command) fyne.CanvasObject {
	switch v := cmd.(type) {
	case chart.Line:
		l := canvas.NewLine(v.Color)
		l.StrokeWidth = v.StrokeWidth
		l.Position1 = fyne.NewPos(v.From.X, v.From.Y)
		l.Position2 = fyne.NewPos(v.To.X, v.To.Y)
		return l
	case chart.Rect:
		rect := canvas.NewRectangle(v.Color)
		rect.Move(fyne.NewPos(v.Left, v.Top))
		rect.Resize(fyne.NewSize(v.Width(), v.Height()))
		return rect
	case chart.Text:
		return newText(v)
	}
	return canvas.NewRectangle(color.Transparent)
}

// newText places t so that its baseline ends up on t.Position.Y.
func newText(t chart.Text) *canvas.Text {
	txt := canvas.NewText(t.Text, t.Color)
	txt.TextSize = t.Size
	txt.Alignment = fyne.TextAlignLeading

	size, baseline := fyne.CurrentApp().Driver().RenderedTextSize(t.Text, t.Size, txt.TextStyle, nil)
	x := t.Position.X
	switch t.Align {
	case chart.AlignCenter:
		x -= size.Width * .5
	case chart.AlignRight:
		x -= size.Width
	}
	txt.Move(fyne.NewPos(x, t.Position.Y-baseline))
	txt.Resize(size)
	return txt
}
