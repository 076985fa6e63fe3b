// Package config loads chart, data and window settings from a file, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/roffe/columnchart/pkg/chart"
	"github.com/roffe/columnchart/pkg/colors"
	"github.com/roffe/columnchart/pkg/performance"
	"github.com/spf13/viper"
)

const EnvPrefix = "COLUMNCHART"

const (
	BackendMock   = "mock"
	BackendSQLite = "sqlite"
)

type Config struct {
	Chart  ChartConfig  `mapstructure:"chart"`
	Data   DataConfig   `mapstructure:"data"`
	Window WindowConfig `mapstructure:"window"`
}

type ChartConfig struct {
	NumberOfColumns    int `mapstructure:"number_of_columns"`
	NumberOfItemsYAxis int `mapstructure:"number_of_items_y_axis"`

	ColumnWidth                float32 `mapstructure:"column_width"`
	StrokeWidth                float32 `mapstructure:"stroke_width"`
	SpaceBetweenColumns        float32 `mapstructure:"space_between_columns"`
	SpaceBetweenLinesXAxis     float32 `mapstructure:"space_between_lines_x_axis"`
	StartFirstColumnPosition   float32 `mapstructure:"start_first_column_position"`
	XAxisStartingPosition      float32 `mapstructure:"x_axis_starting_position"`
	MoveYAxisToRight           float32 `mapstructure:"move_y_axis_to_right"`
	MoveTextsYAxisToRight      float32 `mapstructure:"move_texts_y_axis_to_right"`
	MarginBottomFirstLineXAxis float32 `mapstructure:"margin_bottom_first_line_x_axis"`
	MarginBottomTextColumnTop  float32 `mapstructure:"margin_bottom_text_column_top"`
	ExpandYAxisBase            float32 `mapstructure:"expand_y_axis_base"`
	ExpandYAxisTop             float32 `mapstructure:"expand_y_axis_top"`

	// Colors are #RRGGBB or #RRGGBBAA
	XAxisColor              string `mapstructure:"x_axis_color"`
	YAxisColor              string `mapstructure:"y_axis_color"`
	BackgroundAxisXColor    string `mapstructure:"background_axis_x_color"`
	ColumnColor             string `mapstructure:"column_color"`
	YAxisTextColor          string `mapstructure:"y_axis_text_color"`
	XAxisTextColor          string `mapstructure:"x_axis_text_color"`
	XAxisTextColorColumnTop string `mapstructure:"x_axis_text_color_column_top"`

	YAxisTextSize          float32 `mapstructure:"y_axis_text_size"`
	XAxisTextSize          float32 `mapstructure:"x_axis_text_size"`
	XAxisTextSizeColumnTop float32 `mapstructure:"x_axis_text_size_column_top"`

	Alterable bool `mapstructure:"alterable"`
	// ColorScheme colors every column by its value, see colors.ParseScheme
	ColorScheme string `mapstructure:"color_scheme"`
}

type DataConfig struct {
	Backend       string        `mapstructure:"backend"`
	SQLitePath    string        `mapstructure:"sqlite_path"`
	CacheTTL      time.Duration `mapstructure:"cache_ttl"`
	RetryAttempts uint          `mapstructure:"retry_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
}

type WindowConfig struct {
	Width      float32 `mapstructure:"width"`
	Height     float32 `mapstructure:"height"`
	WidthMode  string  `mapstructure:"width_mode"`
	HeightMode string  `mapstructure:"height_mode"`
	Density    float32 `mapstructure:"density"`
}

func Default() *Config {
	c := chart.DefaultConfig()
	c.Alterable = true
	return &Config{
		Chart: ChartConfig{
			NumberOfColumns:            c.NumberOfColumns,
			NumberOfItemsYAxis:         c.NumberOfItemsYAxis,
			ColumnWidth:                c.ColumnWidth,
			StrokeWidth:                c.StrokeWidth,
			SpaceBetweenColumns:        c.SpaceBetweenColumns,
			SpaceBetweenLinesXAxis:     c.SpaceBetweenLinesXAxis,
			StartFirstColumnPosition:   c.StartFirstColumnPosition,
			XAxisStartingPosition:      c.XAxisStartingPosition,
			MoveYAxisToRight:           c.MoveYAxisToRight,
			MoveTextsYAxisToRight:      c.MoveTextsYAxisToRight,
			MarginBottomFirstLineXAxis: c.MarginBottomFirstLineXAxis,
			MarginBottomTextColumnTop:  c.MarginBottomTextColumnTop,
			ExpandYAxisBase:            c.ExpandYAxisBase,
			ExpandYAxisTop:             c.ExpandYAxisTop,
			XAxisColor:                 FormatColor(c.XAxisColor),
			YAxisColor:                 FormatColor(c.YAxisColor),
			BackgroundAxisXColor:       FormatColor(c.BackgroundAxisXColor),
			ColumnColor:                FormatColor(c.ColumnColor),
			YAxisTextColor:             FormatColor(c.YAxisTextColor),
			XAxisTextColor:             FormatColor(c.XAxisTextColor),
			XAxisTextColorColumnTop:    FormatColor(c.XAxisTextColorColumnTop),
			YAxisTextSize:              c.YAxisTextSize,
			XAxisTextSize:              c.XAxisTextSize,
			XAxisTextSizeColumnTop:     c.XAxisTextSizeColumnTop,
			Alterable:                  c.Alterable,
		},
		Data: DataConfig{
			Backend:       BackendMock,
			SQLitePath:    "columnchart.db",
			CacheTTL:      performance.DefaultConfig.CacheTTL,
			RetryAttempts: performance.DefaultConfig.RetryAttempts,
			RetryDelay:    performance.DefaultConfig.RetryDelay,
		},
		Window: WindowConfig{
			Width:      640,
			Height:     636,
			WidthMode:  chart.MeasureFillAvailable.String(),
			HeightMode: chart.MeasureFillAvailable.String(),
			Density:    1,
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("chart.number_of_columns", d.Chart.NumberOfColumns)
	v.SetDefault("chart.number_of_items_y_axis", d.Chart.NumberOfItemsYAxis)
	v.SetDefault("chart.column_width", d.Chart.ColumnWidth)
	v.SetDefault("chart.stroke_width", d.Chart.StrokeWidth)
	v.SetDefault("chart.space_between_columns", d.Chart.SpaceBetweenColumns)
	v.SetDefault("chart.space_between_lines_x_axis", d.Chart.SpaceBetweenLinesXAxis)
	v.SetDefault("chart.start_first_column_position", d.Chart.StartFirstColumnPosition)
	v.SetDefault("chart.x_axis_starting_position", d.Chart.XAxisStartingPosition)
	v.SetDefault("chart.move_y_axis_to_right", d.Chart.MoveYAxisToRight)
	v.SetDefault("chart.move_texts_y_axis_to_right", d.Chart.MoveTextsYAxisToRight)
	v.SetDefault("chart.margin_bottom_first_line_x_axis", d.Chart.MarginBottomFirstLineXAxis)
	v.SetDefault("chart.margin_bottom_text_column_top", d.Chart.MarginBottomTextColumnTop)
	v.SetDefault("chart.expand_y_axis_base", d.Chart.ExpandYAxisBase)
	v.SetDefault("chart.expand_y_axis_top", d.Chart.ExpandYAxisTop)
	v.SetDefault("chart.x_axis_color", d.Chart.XAxisColor)
	v.SetDefault("chart.y_axis_color", d.Chart.YAxisColor)
	v.SetDefault("chart.background_axis_x_color", d.Chart.BackgroundAxisXColor)
	v.SetDefault("chart.column_color", d.Chart.ColumnColor)
	v.SetDefault("chart.y_axis_text_color", d.Chart.YAxisTextColor)
	v.SetDefault("chart.x_axis_text_color", d.Chart.XAxisTextColor)
	v.SetDefault("chart.x_axis_text_color_column_top", d.Chart.XAxisTextColorColumnTop)
	v.SetDefault("chart.y_axis_text_size", d.Chart.YAxisTextSize)
	v.SetDefault("chart.x_axis_text_size", d.Chart.XAxisTextSize)
	v.SetDefault("chart.x_axis_text_size_column_top", d.Chart.XAxisTextSizeColumnTop)
	v.SetDefault("chart.alterable", d.Chart.Alterable)
	v.SetDefault("chart.color_scheme", d.Chart.ColorScheme)

	v.SetDefault("data.backend", d.Data.Backend)
	v.SetDefault("data.sqlite_path", d.Data.SQLitePath)
	v.SetDefault("data.cache_ttl", d.Data.CacheTTL)
	v.SetDefault("data.retry_attempts", d.Data.RetryAttempts)
	v.SetDefault("data.retry_delay", d.Data.RetryDelay)

	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.width_mode", d.Window.WidthMode)
	v.SetDefault("window.height_mode", d.Window.HeightMode)
	v.SetDefault("window.density", d.Window.Density)
}

// LoadEnv reads .env style files into the process environment. Missing
// files are ignored.
func LoadEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// Load reads the config file at path, if any, applies COLUMNCHART_
// environment overrides such as COLUMNCHART_DATA_BACKEND and validates the
// result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if _, err := c.ChartConfig(); err != nil {
		errs = append(errs, err)
	}
	if _, err := colors.ParseScheme(c.Chart.ColorScheme); err != nil {
		errs = append(errs, fmt.Errorf("chart.color_scheme: %w", err))
	}
	switch c.Data.Backend {
	case BackendMock:
	case BackendSQLite:
		if c.Data.SQLitePath == "" {
			errs = append(errs, errors.New("data.sqlite_path is required for the sqlite backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("data.backend must be %q or %q, got %q", BackendMock, BackendSQLite, c.Data.Backend))
	}
	if _, _, err := c.Window.MeasureModes(); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Density <= 0 {
		errs = append(errs, fmt.Errorf("window.density must be positive, got %g", c.Window.Density))
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		errs = append(errs, fmt.Errorf("window size must not be negative, got %gx%g", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// ChartConfig converts the chart section, parsing its colors.
func (c *Config) ChartConfig() (chart.Config, error) {
	cc := c.Chart
	out := chart.Config{
		NumberOfColumns:            cc.NumberOfColumns,
		NumberOfItemsYAxis:         cc.NumberOfItemsYAxis,
		ColumnWidth:                cc.ColumnWidth,
		StrokeWidth:                cc.StrokeWidth,
		SpaceBetweenColumns:        cc.SpaceBetweenColumns,
		SpaceBetweenLinesXAxis:     cc.SpaceBetweenLinesXAxis,
		StartFirstColumnPosition:   cc.StartFirstColumnPosition,
		XAxisStartingPosition:      cc.XAxisStartingPosition,
		MoveYAxisToRight:           cc.MoveYAxisToRight,
		MoveTextsYAxisToRight:      cc.MoveTextsYAxisToRight,
		MarginBottomFirstLineXAxis: cc.MarginBottomFirstLineXAxis,
		MarginBottomTextColumnTop:  cc.MarginBottomTextColumnTop,
		ExpandYAxisBase:            cc.ExpandYAxisBase,
		ExpandYAxisTop:             cc.ExpandYAxisTop,
		YAxisTextSize:              cc.YAxisTextSize,
		XAxisTextSize:              cc.XAxisTextSize,
		XAxisTextSizeColumnTop:     cc.XAxisTextSizeColumnTop,
		Alterable:                  cc.Alterable,
	}

	var errs []error
	colors := []struct {
		key string
		in  string
		out *color.RGBA
	}{
		{"chart.x_axis_color", cc.XAxisColor, &out.XAxisColor},
		{"chart.y_axis_color", cc.YAxisColor, &out.YAxisColor},
		{"chart.background_axis_x_color", cc.BackgroundAxisXColor, &out.BackgroundAxisXColor},
		{"chart.column_color", cc.ColumnColor, &out.ColumnColor},
		{"chart.y_axis_text_color", cc.YAxisTextColor, &out.YAxisTextColor},
		{"chart.x_axis_text_color", cc.XAxisTextColor, &out.XAxisTextColor},
		{"chart.x_axis_text_color_column_top", cc.XAxisTextColorColumnTop, &out.XAxisTextColorColumnTop},
	}
	for _, col := range colors {
		rgba, err := ParseColor(col.in)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.key, err))
			continue
		}
		*col.out = rgba
	}
	if err := out.Validate(); err != nil {
		errs = append(errs, err)
	}
	return out, errors.Join(errs...)
}

// ColorScheme is the parsed chart.color_scheme, SchemeNone if invalid.
func (c *Config) ColorScheme() colors.Scheme {
	s, _ := colors.ParseScheme(c.Chart.ColorScheme)
	return s
}

func (c *Config) PerformanceConfig() *performance.Config {
	return &performance.Config{
		CacheTTL:      c.Data.CacheTTL,
		RetryAttempts: c.Data.RetryAttempts,
		RetryDelay:    c.Data.RetryDelay,
	}
}

func (w WindowConfig) MeasureModes() (width, height chart.MeasureMode, err error) {
	width, werr := chart.ParseMeasureMode(w.WidthMode)
	if werr != nil {
		werr = fmt.Errorf("window.width_mode: %w", werr)
	}
	height, herr := chart.ParseMeasureMode(w.HeightMode)
	if herr != nil {
		herr = fmt.Errorf("window.height_mode: %w", herr)
	}
	return width, height, errors.Join(werr, herr)
}

// OpenDAO returns the data source selected by the data section. The caller
// closes the returned closer.
func (c *Config) OpenDAO() (performance.DAO, func() error, error) {
	switch c.Data.Backend {
	case BackendSQLite:
		dao, err := performance.NewSQLiteDAO(c.Data.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return dao, dao.Close, nil
	default:
		return performance.NewMockDAO(performance.MockData()...), func() error { return nil }, nil
	}
}

// ParseColor accepts #RRGGBB and #RRGGBBAA.
func ParseColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func FormatColor(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
