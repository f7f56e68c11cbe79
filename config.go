package airchart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	DefaultWidth  = 960.0
	DefaultHeight = 960.0
	DefaultLocale = "en-US"

	DefaultLevels      = 4
	DefaultRadialTicks = 10
	DefaultLabelMargin = 10.0
)

const TempBand = "TEMP"

type ContourMode int

const (
	ContourClip ContourMode = iota
	ContourSkip
)

func ParseContourMode(str string) (ContourMode, error) {
	switch strings.ToLower(str) {
	case "", "clip":
		return ContourClip, nil
	case "skip":
		return ContourSkip, nil
	default:
		return ContourClip, fmt.Errorf("%s: unrecognized contour mode", str)
	}
}

func (m ContourMode) String() string {
	if m == ContourSkip {
		return "skip"
	}
	return "clip"
}

func (m ContourMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ContourMode) UnmarshalText(b []byte) error {
	x, err := ParseContourMode(string(b))
	if err == nil {
		*m = x
	}
	return err
}

type Padding struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// BandSpec describes one discrete band. Column is the name of the
// record value it encodes and Standard, when positive, the value of
// its threshold line.
type BandSpec struct {
	Name     string    `yaml:"name"`
	Column   string    `yaml:"column"`
	Standard float64   `yaml:"standard"`
	Scale    ScaleMode `yaml:"scale"`
}

// ColumnName returns the record column encoded by the band.
func (b BandSpec) ColumnName() string {
	if b.Column != "" {
		return b.Column
	}
	return strings.ToUpper(b.Name)
}

// Config is computed once and passed to every component. Zero radii
// are derived from the drawing area.
type Config struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding Padding `yaml:"padding"`

	HoleRadius  float64 `yaml:"hole-radius"`
	BandWidth   float64 `yaml:"band-width"`
	OuterRadius float64 `yaml:"outer-radius"`

	Bands     []BandSpec `yaml:"bands"`
	TempScale ScaleMode  `yaml:"temp-scale"`

	Levels      int         `yaml:"levels"`
	Contour     ContourMode `yaml:"contour"`
	RadialTicks int         `yaml:"radial-ticks"`
	LabelMargin float64     `yaml:"label-margin"`
	Tooltips    bool        `yaml:"tooltips"`
	Locale      string      `yaml:"locale"`
}

func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Padding: Padding{
			Top:    50,
			Right:  50,
			Bottom: 50,
			Left:   50,
		},
		Bands:       DefaultBands(),
		Levels:      DefaultLevels,
		RadialTicks: DefaultRadialTicks,
		LabelMargin: DefaultLabelMargin,
		Tooltips:    true,
		Locale:      DefaultLocale,
	}
}

func DefaultBands() []BandSpec {
	return []BandSpec{
		{Name: "co", Column: "CO", Standard: 4},
		{Name: "no2", Column: "NO2", Standard: 80},
		{Name: "so2", Column: "SO2", Standard: 150},
		{Name: "pm10", Column: "PM10", Standard: 150},
		{Name: "pm2_5", Column: "PM2_5", Standard: 75},
	}
}

// DecodeConfig reads a YAML document and overlays it on the default
// configuration.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return configError("config", fmt.Sprintf("invalid dimension %gx%g", c.Width, c.Height), nil)
	}
	if c.Levels < 0 {
		return configError("config", fmt.Sprintf("invalid number of levels %d", c.Levels), nil)
	}
	seen := make(map[string]struct{})
	for _, b := range c.Bands {
		if b.Name == "" {
			return configError("config", "band without name", nil)
		}
		if _, ok := seen[b.Name]; ok {
			return configError("config", fmt.Sprintf("band %s defined twice", b.Name), nil)
		}
		seen[b.Name] = struct{}{}
	}
	return nil
}

func (c Config) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Config) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Radii returns the hole radius, the width of a discrete band and the
// outer radius of the chart.
func (c Config) Radii() (float64, float64, float64) {
	var (
		outer = c.OuterRadius
		hole  = c.HoleRadius
		width = c.BandWidth
	)
	if outer <= 0 {
		outer = math.Min(c.DrawingWidth(), c.DrawingHeight()) / 2
	}
	if hole <= 0 {
		hole = math.Floor(outer/4 + 5)
	}
	if width <= 0 && len(c.Bands) > 0 {
		stack := hole*2 + 20
		width = (stack - hole) / float64(len(c.Bands))
	}
	return hole, width, outer
}

// Center returns the position of the chart center in the drawing.
func (c Config) Center() (float64, float64) {
	_, _, outer := c.Radii()
	return c.DrawingWidth()/2 + c.Padding.Left, outer + c.Padding.Top
}
