package chart

import "fmt"

// columnStep is added to SpaceBetweenColumns for every column. Existing
// layouts depend on it.
const columnStep = 50

const (
	// Intrinsic size used when the host asks the chart to fit its content.
	DefaultWidthDp  = 252
	DefaultHeightDp = 212
)

// MeasureMode selects how one dimension of the surface is negotiated.
type MeasureMode int

const (
	MeasureExact MeasureMode = iota
	MeasureFitContent
	MeasureFillAvailable
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureExact:
		return "exact"
	case MeasureFitContent:
		return "fit"
	case MeasureFillAvailable:
		return "fill"
	default:
		return "unknown"
	}
}

// ParseMeasureMode is the inverse of MeasureMode.String.
func ParseMeasureMode(s string) (MeasureMode, error) {
	switch s {
	case "exact":
		return MeasureExact, nil
	case "fit":
		return MeasureFitContent, nil
	case "fill":
		return MeasureFillAvailable, nil
	}
	return MeasureExact, fmt.Errorf("unknown measure mode %q", s)
}

// ComputeScale returns the factor that turns a percentage into a column
// height matching the y-axis line spacing. With a surface height of zero the
// default spacing of 45 and 11 items gives the standard 1:4.5 scale.
func ComputeScale(surfaceHeight, spaceBetweenLinesXAxis float32, numberOfItemsYAxis int) float32 {
	return (surfaceHeight - spaceBetweenLinesXAxis*float32(numberOfItemsYAxis-1)) / -100
}

// ComputeMeasuredSize resolves the surface size for the given modes.
// density converts dp into device pixels; results are truncated to whole
// pixels.
func ComputeMeasuredSize(widthMode, heightMode MeasureMode, available Size, density float32) Size {
	if density <= 0 {
		density = 1
	}
	square := min(available.Width, available.Height)

	var out Size
	switch widthMode {
	case MeasureFitContent:
		out.Width = DefaultWidthDp * density
	case MeasureFillAvailable:
		out.Width = square
	default:
		out.Width = available.Width
	}
	switch heightMode {
	case MeasureFitContent:
		out.Height = DefaultHeightDp * density
	case MeasureFillAvailable:
		out.Height = square
	default:
		out.Height = available.Height
	}
	out.Width = float32(int(out.Width))
	out.Height = float32(int(out.Height))
	return out
}

// ColumnLeft is the left edge of column i.
func (c Config) ColumnLeft(i int) float32 {
	fi := float32(i)
	return c.XAxisStartingPosition + columnStep*fi + c.StartFirstColumnPosition + c.SpaceBetweenColumns*fi
}

// ColumnCenter is where the labels of column i are anchored.
func (c Config) ColumnCenter(i int) float32 {
	return c.ColumnLeft(i) + c.ColumnWidth/2
}

// Baseline is the y coordinate of the x-axis and the bottom of every column.
func (c Config) Baseline(height float32) float32 {
	return height - c.StrokeWidth - c.MarginBottomFirstLineXAxis
}

// GridLineY is the y coordinate of horizontal line index.
func (c Config) GridLineY(height float32, index int) float32 {
	if index == 0 {
		return c.Baseline(height)
	}
	return height - c.SpaceBetweenLinesXAxis*float32(index) - c.MarginBottomFirstLineXAxis
}

func (c Config) yAxisLabelY(height float32, index int) float32 {
	if index == 0 {
		return height - 5 - c.MarginBottomFirstLineXAxis
	}
	return c.GridLineY(height, index)
}

// ColumnTop is the top edge of a column of the given pre-scaled height.
func (c Config) ColumnTop(height, columnHeight float32) float32 {
	return height - c.MarginBottomFirstLineXAxis - columnHeight
}

// gridTop is the row above the last grid line used by placeholder content.
func (c Config) gridTop(height float32) float32 {
	return height - c.SpaceBetweenLinesXAxis*float32(c.NumberOfItemsYAxis)
}
