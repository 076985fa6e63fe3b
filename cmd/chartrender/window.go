package main

import (
	"github.com/roffe/columnchart/pkg/config"
	"github.com/spf13/cobra"
)

// windowFlags override the window section of the config when set.
type windowFlags struct {
	width, height         float32
	widthMode, heightMode string
	density               float32
}

func (w *windowFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float32Var(&w.width, "width", 0, "available width")
	f.Float32Var(&w.height, "height", 0, "available height")
	f.StringVar(&w.widthMode, "width-mode", "", "width measure mode: exact, fit or fill")
	f.StringVar(&w.heightMode, "height-mode", "", "height measure mode: exact, fit or fill")
	f.Float32Var(&w.density, "density", 0, "dp to pixel factor")
}

func (w *windowFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Window.Width = w.width
	}
	if f.Changed("height") {
		cfg.Window.Height = w.height
	}
	if f.Changed("width-mode") {
		cfg.Window.WidthMode = w.widthMode
	}
	if f.Changed("height-mode") {
		cfg.Window.HeightMode = w.heightMode
	}
	if f.Changed("density") {
		cfg.Window.Density = w.density
	}
	_, _, err := cfg.Window.MeasureModes()
	return err
}
