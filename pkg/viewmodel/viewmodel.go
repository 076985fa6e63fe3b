// Package viewmodel turns monthly performance averages into column chart
// state for a semester.
package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/roffe/columnchart/pkg/calendar"
	"github.com/roffe/columnchart/pkg/chart"
	"github.com/roffe/columnchart/pkg/eventbus"
	"github.com/roffe/columnchart/pkg/performance"
	"golang.org/x/sync/errgroup"
)

const (
	StateTopic       = "column-chart"
	MonthsInSemester = 6
)

var (
	ErrInvalidSemester = errors.New("semester must be 1 or 2")
	ErrInvalidColumns  = errors.New("number of columns must be between 1 and 6")
)

// Averager is the part of the repository the view-model needs.
type Averager interface {
	PerformanceByMonth(ctx context.Context, yearMonth string) (float32, error)
}

// UiState is what the chart shows: pre-scaled heights and the unscaled
// averages formatted as percentages.
type UiState struct {
	HeightValues    []float32
	ColumnTopValues []string
}

func InitialState() UiState {
	s := UiState{
		HeightValues:    make([]float32, MonthsInSemester),
		ColumnTopValues: make([]string, MonthsInSemester),
	}
	for i := range s.ColumnTopValues {
		s.ColumnTopValues[i] = "0%"
	}
	return s
}

type ColumnChart struct {
	repo  Averager
	bus   *eventbus.Controller[UiState]
	limit int

	// publishMu keeps the cancellation check and Publish together.
	publishMu sync.Mutex
}

// New publishes the initial state on bus.
func New(repo Averager, bus *eventbus.Controller[UiState]) *ColumnChart {
	vm := &ColumnChart{
		repo:  repo,
		bus:   bus,
		limit: runtime.NumCPU(),
	}
	if err := bus.Publish(StateTopic, InitialState()); err != nil {
		log.Println("publish initial state:", err)
	}
	return vm
}

// PerformanceByMonth averages every month of the semester, publishes the
// result and returns it.
func (vm *ColumnChart) PerformanceByMonth(ctx context.Context, numberOfColumns, semester, year int, scale float32) (UiState, error) {
	if semester != calendar.FirstSemester && semester != calendar.SecondSemester {
		return UiState{}, fmt.Errorf("%w, got %d", ErrInvalidSemester, semester)
	}
	if numberOfColumns < 1 || numberOfColumns > MonthsInSemester {
		return UiState{}, fmt.Errorf("%w, got %d", ErrInvalidColumns, numberOfColumns)
	}

	values := make([]float32, numberOfColumns)
	first := calendar.FirstMonth(semester)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(vm.limit)
	for i := range values {
		key := performance.MonthKey(year, first+time.Month(i))
		g.Go(func() error {
			v, err := vm.repo.PerformanceByMonth(gctx, key)
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return UiState{}, err
	}

	state := UiState{
		HeightValues:    make([]float32, numberOfColumns),
		ColumnTopValues: make([]string, numberOfColumns),
	}
	for i, v := range values {
		state.HeightValues[i] = v * scale
		state.ColumnTopValues[i] = FormatPercent(v)
	}

	vm.publishMu.Lock()
	defer vm.publishMu.Unlock()
	if err := ctx.Err(); err != nil {
		return UiState{}, err
	}
	if err := vm.bus.Publish(StateTopic, state); err != nil {
		return state, fmt.Errorf("publish state: %w", err)
	}
	return state, nil
}

// State returns a channel receiving the latest state, starting with the
// current one.
func (vm *ColumnChart) State() chan UiState {
	return vm.bus.Subscribe(StateTopic)
}

// Observe calls fn with the current and every following state.
func (vm *ColumnChart) Observe(fn func(UiState)) (cancel func()) {
	return vm.bus.SubscribeFunc(StateTopic, fn)
}

func (vm *ColumnChart) Latest() (UiState, bool) {
	return vm.bus.Get(StateTopic)
}

// SelectSemester maps January to June on 1 and July to December on 2.
func SelectSemester(m time.Month) int {
	return calendar.SemesterOf(m)
}

// FormatPercent rounds half away from zero.
func FormatPercent(v float32) string {
	r := math.Round(float64(v))
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 0, 64) + "%"
}

var monthAbbrev = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

func XAxisLabels(semester int) []string {
	first := int(calendar.FirstMonth(semester)) - 1
	out := make([]string, MonthsInSemester)
	copy(out, monthAbbrev[first:first+MonthsInSemester])
	return out
}

// YAxisLabels returns "0%", "10%", ... for n grid lines.
func YAxisLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i*10) + "%"
	}
	return out
}

// Dataset builds the chart content for state.
func Dataset(state UiState, semester, numberOfItemsYAxis int) *chart.Dataset {
	return &chart.Dataset{
		ColumnHeights:   state.HeightValues,
		ColumnTopLabels: state.ColumnTopValues,
		XAxisLabels:     XAxisLabels(semester)[:len(state.HeightValues)],
		YAxisLabels:     YAxisLabels(numberOfItemsYAxis),
	}
}
