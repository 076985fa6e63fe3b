package windows

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/roffe/columnchart/pkg/calendar"
	"github.com/roffe/columnchart/pkg/config"
	"github.com/roffe/columnchart/pkg/eventbus"
	"github.com/roffe/columnchart/pkg/performance"
	"github.com/roffe/columnchart/pkg/viewmodel"
)

func newTestWindow(t *testing.T, month time.Month) *MainWindow {
	t.Helper()
	repo := performance.NewRepository(performance.NewMockDAO(performance.MockData()...), nil)
	return newTestWindowWith(t, month, repo)
}

func newTestWindowWith(t *testing.T, month time.Month, avg viewmodel.Averager) *MainWindow {
	t.Helper()
	a := test.NewTempApp(t)
	bus := eventbus.New[viewmodel.UiState](nil)
	t.Cleanup(bus.Close)
	vm := viewmodel.New(avg, bus)

	clock := calendar.Fixed(time.Date(2023, month, 15, 12, 0, 0, 0, time.UTC))
	mw, err := NewMainWindow(a, config.Default(), vm, clock)
	if err != nil {
		t.Fatalf("NewMainWindow() failed: %v", err)
	}
	t.Cleanup(mw.Close)
	mw.Resize(fyne.NewSize(640, 680))
	return mw
}

func waitForLabel(t *testing.T, mw *MainWindow, want string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ds := mw.chart.Surface().Dataset()
		if ds != nil && len(ds.ColumnTopLabels) > 0 && ds.ColumnTopLabels[0] == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("first column label never became %q", want)
}

func TestToggleSemester(t *testing.T) {
	mw := newTestWindow(t, time.February)
	if got := mw.title.Text; got != "2023.1 - Performance" {
		t.Errorf("title = %q", got)
	}
	if got := mw.chart.Scale(); got != 4.5 {
		t.Errorf("Scale() = %v, want 4.5", got)
	}

	mw.Load()
	waitForLabel(t, mw, "75%")

	test.Tap(mw.chart)
	if got := mw.title.Text; got != "2023.2 - Performance" {
		t.Errorf("title after tap = %q", got)
	}
	if got := mw.chart.Surface().Dataset().XAxisLabels[0]; got != "Jul" {
		t.Errorf("first x label = %q, want Jul", got)
	}
	waitForLabel(t, mw, "96%")
	if got := mw.chart.Surface().Dataset().ColumnHeights[0]; got != 95.5*4.5 {
		t.Errorf("first column height = %v, want %v", got, 95.5*4.5)
	}
}

// slowMonth blocks the lookup of one month until release is closed,
// regardless of the context.
type slowMonth struct {
	values  map[string]float32
	month   string
	entered chan struct{}
	release chan struct{}
}

func (s *slowMonth) PerformanceByMonth(_ context.Context, yearMonth string) (float32, error) {
	if yearMonth == s.month {
		s.entered <- struct{}{}
		<-s.release
	}
	return s.values[yearMonth], nil
}

func TestToggleSemesterTwice(t *testing.T) {
	avg := &slowMonth{
		values:  map[string]float32{"2023-01": 11, "2023-07": 22},
		month:   "2023-07",
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	mw := newTestWindowWith(t, time.February, avg)

	test.Tap(mw.chart)
	select {
	case <-avg.entered:
	case <-time.After(2 * time.Second):
		t.Fatal("second semester fetch never started")
	}
	test.Tap(mw.chart)
	waitForLabel(t, mw, "11%")

	close(avg.release)
	time.Sleep(100 * time.Millisecond)

	if got := mw.title.Text; got != "2023.1 - Performance" {
		t.Errorf("title = %q", got)
	}
	ds := mw.chart.Surface().Dataset()
	if got := ds.XAxisLabels[0]; got != "Jan" {
		t.Errorf("first x label = %q, want Jan", got)
	}
	if got := ds.ColumnTopLabels[0]; got != "11%" {
		t.Errorf("first column label = %q, stale second semester state was shown", got)
	}
	if got := ds.ColumnHeights[0]; got != 11*4.5 {
		t.Errorf("first column height = %v, want %v", got, 11*4.5)
	}
}

func TestSnapshot(t *testing.T) {
	mw := newTestWindow(t, time.August)
	waitForLabel(t, mw, "0%")
	b, err := mw.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	size := mw.ChartSize()
	if b := img.Bounds(); float32(b.Dx()) != size.Width || float32(b.Dy()) != size.Height {
		t.Errorf("snapshot = %v, want %v", b, size)
	}
}
