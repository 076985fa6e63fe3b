// Package raster paints chart commands into an RGBA image so a chart can be
// produced without a window.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"github.com/roffe/columnchart/pkg/chart"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var White = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}

type Rasterizer struct {
	Background color.RGBA
	// DPI used for text faces. Text sizes are treated as pixels at 72.
	DPI float64

	font *opentype.Font

	mu    sync.Mutex
	faces map[float32]font.Face
}

func New() (*Rasterizer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Rasterizer{
		Background: White,
		DPI:        72,
		font:       f,
		faces:      make(map[float32]font.Face),
	}, nil
}

// Rasterize returns a new image of the given size with cmds painted on it.
func (r *Rasterizer) Rasterize(size chart.Size, cmds []chart.Command) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, int(size.Width), int(size.Height)))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	if err := r.Draw(img, cmds); err != nil {
		return nil, err
	}
	return img, nil
}

// Draw paints cmds in order on img.
func (r *Rasterizer) Draw(img *image.RGBA, cmds []chart.Command) error {
	for _, c := range cmds {
		switch cmd := c.(type) {
		case chart.Line:
			ThickLine(img,
				round(cmd.From.X), round(cmd.From.Y),
				round(cmd.To.X), round(cmd.To.Y),
				round(cmd.StrokeWidth), cmd.Color,
			)
		case chart.Rect:
			rect := image.Rect(round(cmd.Left), round(cmd.Top), round(cmd.Right), round(cmd.Bottom))
			draw.Draw(img, rect, image.NewUniform(cmd.Color), image.Point{}, draw.Over)
		case chart.Text:
			if err := r.drawText(img, cmd); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown command %T", c)
		}
	}
	return nil
}

func (r *Rasterizer) drawText(img *image.RGBA, t chart.Text) error {
	face, err := r.face(t.Size)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(t.Color),
		Face: face,
	}
	x := fixed.Int26_6(t.Position.X * 64)
	switch t.Align {
	case chart.AlignCenter:
		x -= d.MeasureString(t.Text) / 2
	case chart.AlignRight:
		x -= d.MeasureString(t.Text)
	}
	d.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(t.Position.Y * 64)}
	d.DrawString(t.Text)
	return nil
}

func (r *Rasterizer) face(size float32) (font.Face, error) {
	if size <= 0 {
		size = 12
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     r.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face size %g: %w", size, err)
	}
	r.faces[size] = f
	return f, nil
}

// Close releases every cached font face.
func (r *Rasterizer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for size, f := range r.faces {
		f.Close()
		delete(r.faces, size)
	}
	return nil
}

func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}
