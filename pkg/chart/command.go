package chart

import "image/color"

// Element tells which part of the chart a command belongs to.
type Element int

const (
	ElementGridLine Element = iota
	ElementYAxis
	ElementYAxisLabel
	ElementXAxisLabel
	ElementColumnTopLabel
	ElementColumn
)

func (e Element) String() string {
	switch e {
	case ElementGridLine:
		return "grid line"
	case ElementYAxis:
		return "y-axis"
	case ElementYAxisLabel:
		return "y-axis label"
	case ElementXAxisLabel:
		return "x-axis label"
	case ElementColumnTopLabel:
		return "column top label"
	case ElementColumn:
		return "column"
	default:
		return "unknown"
	}
}

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Point is a position on the surface, origin top left.
type Point struct {
	X, Y float32
}

// Size is a surface size in pixels.
type Size struct {
	Width, Height float32
}

func NewSize(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Command is a single draw primitive. It is one of Line, Rect or Text.
type Command interface {
	Kind() Element
}

type Line struct {
	Element     Element
	From, To    Point
	Color       color.RGBA
	StrokeWidth float32
}

func (l Line) Kind() Element { return l.Element }

// Rect is a filled rectangle.
type Rect struct {
	Element                  Element
	Left, Top, Right, Bottom float32
	Color                    color.RGBA
}

func (r Rect) Kind() Element { return r.Element }

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Text is drawn with its baseline at Position.Y. Position.X is the anchor
// described by Align.
type Text struct {
	Element  Element
	Text     string
	Position Point
	Color    color.RGBA
	Size     float32
	Align    Align
}

func (t Text) Kind() Element { return t.Element }
