package airchart

import (
	"errors"
	"fmt"
)

type BandLayer struct {
	Name     string
	Band     Band
	Axis     BandAxis
	Wedges   []Wedge
	Contours []Contour
}

type TempLayer struct {
	Band  Band
	Ticks []RadialTick
	Curve Curve
}

// Scene is the immutable description of one chart. It is rebuilt from
// scratch for every rendering.
type Scene struct {
	Width   float64
	Height  float64
	CenterX float64
	CenterY float64

	Hole    float64
	Outer   float64
	Contour ContourMode

	Angular  []AngularTick
	Bands    []BandLayer
	Temp     TempLayer
	Legend   Legend
	Tooltips *TooltipIndex
}

// Build computes the scene of the series. Errors of a single band are
// joined in the returned error while the other bands are still part of
// the scene.
func Build(s Series, holidays Holidays, cfg Config) (Scene, error) {
	if err := cfg.Validate(); err != nil {
		return Scene{}, err
	}
	loc, err := ParseLocale(cfg.Locale)
	if err != nil {
		return Scene{}, err
	}
	ps, err := NewPolarScale(s.Keys())
	if err != nil {
		return Scene{}, err
	}
	hole, width, outer := cfg.Radii()
	alloc, err := NewBandAllocator(hole, width, len(cfg.Bands), outer)
	if err != nil {
		return Scene{}, err
	}
	scene := Scene{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Hole:    hole,
		Outer:   outer,
		Contour: cfg.Contour,
	}
	scene.CenterX, scene.CenterY = cfg.Center()

	bands, bandErr := alloc.Allocate(s, cfg.Bands)
	temp, err := alloc.AllocateContinuous(s, cfg.TempScale, cfg.RadialTicks)
	if err != nil {
		return Scene{}, err
	}
	for _, b := range bands {
		layer := BandLayer{
			Name:   b.Name,
			Band:   b,
			Axis:   PlanBandAxis(b, standardOf(cfg.Bands, b.Name)),
			Wedges: BuildWedges(s, ps, b),
		}
		layer.Contours = BuildContours(layer.Wedges, b, cfg.Levels, cfg.Contour)
		scene.Bands = append(scene.Bands, layer)
	}
	scene.Temp = TempLayer{
		Band:  temp,
		Ticks: PlanRadial(temp, cfg.RadialTicks),
		Curve: BuildCurve(s, ps, temp),
	}
	format := func(r Record) string {
		return loc.DayMonth(r.Date)
	}
	scene.Angular = PlanAngular(s, ps, holidays, outer+cfg.LabelMargin, format)

	start, end, err := s.Extent()
	if err != nil {
		return Scene{}, err
	}
	scene.Legend = FormatLegend(start, end, loc)

	if cfg.Tooltips {
		all := append(append([]Band{}, bands...), temp)
		ix := NewTooltipIndex(s, ps, hole, outer, all...)
		scene.Tooltips = &ix
	}
	if bandErr != nil {
		return scene, fmt.Errorf("%w: %w", ErrPartial, bandErr)
	}
	return scene, nil
}

func standardOf(specs []BandSpec, name string) float64 {
	for _, s := range specs {
		if s.Name == name {
			return s.Standard
		}
	}
	return 0
}

// IsConfigError reports whether err, or one of the errors it wraps, is
// a ConfigError.
func IsConfigError(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}
