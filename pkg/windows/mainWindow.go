package windows

import (
	"context"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/roffe/columnchart/pkg/calendar"
	"github.com/roffe/columnchart/pkg/chart"
	"github.com/roffe/columnchart/pkg/colors"
	"github.com/roffe/columnchart/pkg/config"
	"github.com/roffe/columnchart/pkg/viewmodel"
	"github.com/roffe/columnchart/pkg/widgets/columnchart"
)

const fetchTimeout = 10 * time.Second

type MainWindow struct {
	fyne.Window
	app   fyne.App
	cfg   *config.Config
	clock calendar.Clock
	vm    *viewmodel.ColumnChart

	title *widget.Label
	chart *columnchart.ColumnChart

	scheme colors.Scheme

	mu       sync.Mutex
	year     int
	semester int
	cancel   context.CancelFunc

	stopObserve func()
}

func NewMainWindow(app fyne.App, cfg *config.Config, vm *viewmodel.ColumnChart, clock calendar.Clock) (*MainWindow, error) {
	cc, err := cfg.ChartConfig()
	if err != nil {
		return nil, err
	}
	wm, hm, err := cfg.Window.MeasureModes()
	if err != nil {
		return nil, err
	}

	mw := &MainWindow{
		Window:   app.NewWindow("Column chart"),
		app:      app,
		cfg:      cfg,
		clock:    clock,
		vm:       vm,
		scheme:   cfg.ColorScheme(),
		year:     clock.Year(),
		semester: clock.Semester(),
	}

	mw.title = widget.NewLabelWithStyle(calendar.Title(mw.year, mw.semester), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	mw.chart = columnchart.New(cc, &columnchart.Options{
		WidthMode:  wm,
		HeightMode: hm,
		Density:    cfg.Window.Density,
	})
	mw.chart.OnTapped = mw.toggleSemester
	mw.chart.OnError = func(err error) {
		fyne.LogError("render chart", err)
	}

	if cc.Alterable {
		mw.chart.SetTextArrayByYAxis(viewmodel.YAxisLabels(cc.NumberOfItemsYAxis))
		mw.chart.SetTextArrayByXAxis(mw.xAxisLabels(mw.semester))
		mw.stopObserve = vm.Observe(mw.showState)
	}

	mw.setupMenu()
	mw.SetContent(container.NewBorder(mw.title, nil, nil, nil, mw.chart))
	mw.SetOnClosed(mw.close)
	return mw, nil
}

// Load fetches the current semester. It must be called after the window is
// shown so the chart has its scale.
func (mw *MainWindow) Load() {
	mw.mu.Lock()
	year, semester := mw.year, mw.semester
	mw.mu.Unlock()
	mw.fetch(year, semester)
}

func (mw *MainWindow) toggleSemester() {
	mw.mu.Lock()
	mw.semester = calendar.Toggle(mw.semester)
	year, semester := mw.year, mw.semester
	mw.mu.Unlock()

	mw.title.SetText(calendar.Title(year, semester))
	if mw.chart.Surface().Config().Alterable {
		mw.chart.SetTextArrayByXAxis(mw.xAxisLabels(semester))
	}
	mw.fetch(year, semester)
}

func (mw *MainWindow) fetch(year, semester int) {
	cc := mw.chart.Surface().Config()
	if !cc.Alterable {
		return
	}
	scale := mw.chart.Scale()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	mw.mu.Lock()
	if mw.cancel != nil {
		mw.cancel()
	}
	mw.cancel = cancel
	mw.mu.Unlock()

	go func() {
		defer cancel()
		columns := min(cc.NumberOfColumns, viewmodel.MonthsInSemester)
		if _, err := mw.vm.PerformanceByMonth(ctx, columns, semester, year, scale); err != nil {
			if ctx.Err() == context.Canceled {
				return
			}
			log.Println("fetch performance:", err)
			fyne.Do(func() {
				dialog.ShowError(err, mw.Window)
			})
		}
	}()
}

// showState runs on the bus goroutine.
func (mw *MainWindow) showState(s viewmodel.UiState) {
	fyne.Do(func() {
		mw.chart.SetColumnsHeight(s.HeightValues)
		mw.chart.SetValuesArrayByXAxisColumnTop(s.ColumnTopValues)
		if mw.scheme != colors.SchemeNone {
			mw.chart.SetColumnColors(colors.ColumnColors(s.HeightValues, 100*mw.chart.Scale(), mw.scheme))
		}
	})
}

func (mw *MainWindow) xAxisLabels(semester int) []string {
	n := min(mw.chart.Surface().Config().NumberOfColumns, viewmodel.MonthsInSemester)
	return viewmodel.XAxisLabels(semester)[:n]
}

// ChartSize is the size the chart is drawn at right now.
func (mw *MainWindow) ChartSize() chart.Size {
	wm, hm, _ := mw.cfg.Window.MeasureModes()
	s := mw.chart.Size()
	return chart.ComputeMeasuredSize(wm, hm, chart.NewSize(s.Width, s.Height), mw.cfg.Window.Density)
}

func (mw *MainWindow) Error(err error) {
	log.Println(err)
	dialog.ShowError(err, mw.Window)
}

func (mw *MainWindow) close() {
	mw.mu.Lock()
	if mw.cancel != nil {
		mw.cancel()
	}
	mw.mu.Unlock()
	if mw.stopObserve != nil {
		mw.stopObserve()
	}
}
