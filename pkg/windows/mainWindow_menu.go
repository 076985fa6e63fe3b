package windows

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/roffe/columnchart/pkg/raster"
	"github.com/roffe/columnchart/pkg/widgets"
	"github.com/skratchdot/open-golang/open"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

func (mw *MainWindow) setupMenu() {
	menu := fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Export PNG…", mw.exportPNG),
			fyne.NewMenuItem("Copy image", mw.copyImage),
		),
		fyne.NewMenu("View",
			fyne.NewMenuItem("Toggle semester", mw.toggleSemester),
			fyne.NewMenuItem("Reload", func() {
				mw.Load()
			}),
		),
	)
	mw.SetMainMenu(menu)
}

func (mw *MainWindow) exportPNG() {
	widgets.SaveFile(func(filename string) {
		b, err := mw.Snapshot()
		if err != nil {
			mw.Error(err)
			return
		}
		if err := os.WriteFile(filename, b, 0644); err != nil {
			mw.Error(fmt.Errorf("failed to write %s: %w", filepath.Base(filename), err))
			return
		}
		if err := open.Run(filename); err != nil {
			log.Println("open:", err)
		}
	}, "PNG image", "png")
}

func (mw *MainWindow) copyImage() {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		mw.Error(fmt.Errorf("clipboard unavailable: %w", clipboardErr))
		return
	}
	b, err := mw.Snapshot()
	if err != nil {
		mw.Error(err)
		return
	}
	clipboard.Write(clipboard.FmtImage, b)
}

// Snapshot renders the chart as it is shown now into a PNG.
func (mw *MainWindow) Snapshot() ([]byte, error) {
	size := mw.ChartSize()
	if size.Width < 1 || size.Height < 1 {
		return nil, fmt.Errorf("chart has no size")
	}
	cmds, err := mw.chart.Surface().Render(size)
	if err != nil {
		return nil, err
	}
	r, err := raster.New()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	img, err := r.Rasterize(size, cmds)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
