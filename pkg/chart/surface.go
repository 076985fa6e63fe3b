package chart

import (
	"image/color"
	"sync"
)

// Surface keeps a chart's configuration, the most recently delivered dataset
// and the paint used while the surface is attached to a host.
//
// Datasets may be delivered from any goroutine. Each render reflects the
// latest one.
type Surface struct {
	mu sync.Mutex

	cfg   Config
	ds    *Dataset
	paint *Paint

	attachHeight float32
	scale        float32
	scaleValid   bool
}

func NewSurface(cfg Config) *Surface {
	return &Surface{cfg: cfg}
}

// Attach acquires the paint and computes the scale from the height the host
// reports at attach time.
func (s *Surface) Attach(height float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paint = newPaint(s.cfg)
	s.attachHeight = height
	s.scale = ComputeScale(height, s.cfg.SpaceBetweenLinesXAxis, s.cfg.NumberOfItemsYAxis)
	s.scaleValid = true
}

// Detach releases the paint. The dataset is kept for the next attach.
func (s *Surface) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paint = nil
	s.scaleValid = false
}

func (s *Surface) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paint != nil
}

// Scale returns the cached scale, recomputing it if the spacing or item
// count changed since attach. It is zero while detached.
func (s *Surface) Scale() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paint == nil {
		return 0
	}
	if !s.scaleValid {
		s.scale = ComputeScale(s.attachHeight, s.cfg.SpaceBetweenLinesXAxis, s.cfg.NumberOfItemsYAxis)
		s.scaleValid = true
	}
	return s.scale
}

func (s *Surface) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Surface) SetConfig(cfg Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.cfg.scaleInputsEqual(cfg) {
		s.scaleValid = false
	}
	s.cfg = cfg
}

func (s *Surface) SetAlterable(alterable bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Alterable = alterable
}

// Dataset returns a copy of the current dataset.
func (s *Surface) Dataset() *Dataset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ds.Clone()
}

// SetDataset replaces the whole dataset.
func (s *Surface) SetDataset(ds *Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = ds.Clone()
}

func (s *Surface) update(fn func(ds *Dataset)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ds == nil {
		s.ds = &Dataset{}
	}
	fn(s.ds)
}

func (s *Surface) SetColumnsHeight(heights []float32) {
	s.update(func(ds *Dataset) { ds.ColumnHeights = cloneSlice(heights) })
}

func (s *Surface) SetTextArrayByXAxis(labels []string) {
	s.update(func(ds *Dataset) { ds.XAxisLabels = cloneSlice(labels) })
}

func (s *Surface) SetTextArrayByYAxis(labels []string) {
	s.update(func(ds *Dataset) { ds.YAxisLabels = cloneSlice(labels) })
}

func (s *Surface) SetValuesArrayByXAxisColumnTop(labels []string) {
	s.update(func(ds *Dataset) { ds.ColumnTopLabels = cloneSlice(labels) })
}

func (s *Surface) SetColumnColors(colors []color.RGBA) {
	s.update(func(ds *Dataset) { ds.ColumnColors = cloneSlice(colors) })
}

// Render draws the current configuration and dataset at the given size.
func (s *Surface) Render(size Size) ([]Command, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.paint == nil {
		return nil, ErrNotAttached
	}
	return render(size, s.cfg, s.ds, s.paint)
}
