package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/roffe/columnchart/pkg/calendar"
	"github.com/roffe/columnchart/pkg/chart"
	"github.com/roffe/columnchart/pkg/colors"
	"github.com/roffe/columnchart/pkg/config"
	"github.com/roffe/columnchart/pkg/eventbus"
	"github.com/roffe/columnchart/pkg/performance"
	"github.com/roffe/columnchart/pkg/raster"
	"github.com/roffe/columnchart/pkg/viewmodel"
	"github.com/skratchdot/open-golang/open"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	*rootOptions
	output      string
	year        int
	semester    int
	backend     string
	placeholder bool
	open        bool
	window      windowFlags
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	clock := calendar.System()
	opts := &renderOptions{rootOptions: root}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the chart of a semester to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if opts.backend != "" {
				cfg.Data.Backend = opts.backend
			}
			if err := opts.window.apply(cmd, cfg); err != nil {
				return err
			}
			if opts.placeholder {
				cfg.Chart.Alterable = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			size, err := renderPNG(cmd.Context(), cfg, opts.year, opts.semester, opts.output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%gx%g)\n", opts.output, size.Width, size.Height)
			if opts.open {
				abs, err := filepath.Abs(opts.output)
				if err != nil {
					return err
				}
				if err := open.Run(abs); err != nil {
					log.Println("open:", err)
				}
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "chart.png", "output PNG file")
	f.IntVar(&opts.year, "year", clock.Year(), "year to chart")
	f.IntVar(&opts.semester, "semester", clock.Semester(), "semester to chart, 1 or 2")
	f.StringVar(&opts.backend, "backend", "", "data backend, mock or sqlite")
	f.BoolVar(&opts.placeholder, "placeholder", false, "draw the placeholder chart instead of data")
	f.BoolVar(&opts.open, "open", false, "open the PNG when done")
	opts.window.register(cmd)
	return cmd
}

func renderPNG(ctx context.Context, cfg *config.Config, year, semester int, output string) (chart.Size, error) {
	cc, err := cfg.ChartConfig()
	if err != nil {
		return chart.Size{}, err
	}

	surface := chart.NewSurface(cc)
	// nothing is laid out yet, same as a widget at attach time
	surface.Attach(0)
	defer surface.Detach()

	if cc.Alterable {
		dao, closeDAO, err := cfg.OpenDAO()
		if err != nil {
			return chart.Size{}, err
		}
		defer closeDAO()

		bus := eventbus.New[viewmodel.UiState](nil)
		defer bus.Close()
		vm := viewmodel.New(performance.NewRepository(dao, cfg.PerformanceConfig()), bus)

		columns := min(cc.NumberOfColumns, viewmodel.MonthsInSemester)
		state, err := vm.PerformanceByMonth(ctx, columns, semester, year, surface.Scale())
		if err != nil {
			return chart.Size{}, err
		}
		ds := viewmodel.Dataset(state, semester, cc.NumberOfItemsYAxis)
		ds.ColumnColors = colors.ColumnColors(state.HeightValues, 100*surface.Scale(), cfg.ColorScheme())
		surface.SetDataset(ds)
	}

	wm, hm, err := cfg.Window.MeasureModes()
	if err != nil {
		return chart.Size{}, err
	}
	size := chart.ComputeMeasuredSize(wm, hm, chart.NewSize(cfg.Window.Width, cfg.Window.Height), cfg.Window.Density)
	if size.Width < 1 || size.Height < 1 {
		return size, fmt.Errorf("nothing to draw at %gx%g", size.Width, size.Height)
	}

	cmds, err := surface.Render(size)
	if err != nil {
		return size, err
	}

	r, err := raster.New()
	if err != nil {
		return size, err
	}
	defer r.Close()
	img, err := r.Rasterize(size, cmds)
	if err != nil {
		return size, err
	}

	fh, err := os.Create(output)
	if err != nil {
		return size, err
	}
	if err := raster.EncodePNG(fh, img); err != nil {
		fh.Close()
		return size, err
	}
	return size, fh.Close()
}
