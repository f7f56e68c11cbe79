package airchart

import (
	"errors"
	"fmt"
)

// Band is a concentric annulus whose radius encodes the values of one
// variable.
type Band struct {
	Name   string
	Column string
	Inner  float64
	Outer  float64
	ValueScaler
}

func (b Band) Width() float64 {
	return b.Outer - b.Inner
}

type BandAllocator struct {
	Hole  float64
	Width float64
	Count int
	Outer float64
}

func NewBandAllocator(hole, width float64, count int, outer float64) (BandAllocator, error) {
	a := BandAllocator{
		Hole:  hole,
		Width: width,
		Count: count,
		Outer: outer,
	}
	switch {
	case hole < 0:
		return a, configError("band allocator", fmt.Sprintf("negative hole radius %g", hole), nil)
	case count < 0:
		return a, configError("band allocator", fmt.Sprintf("negative band count %d", count), nil)
	case count > 0 && width <= 0:
		return a, configError("band allocator", fmt.Sprintf("invalid band width %g", width), nil)
	case a.ContinuousInner() >= outer:
		return a, configError("band allocator", fmt.Sprintf("no room left for continuous band (%g >= %g)", a.ContinuousInner(), outer), nil)
	}
	return a, nil
}

func (a BandAllocator) Range(i int) Range {
	inner := a.Hole + float64(i)*a.Width
	return NewRange(inner, inner+a.Width)
}

func (a BandAllocator) ContinuousInner() float64 {
	return a.Hole + float64(a.Count)*a.Width
}

func (a BandAllocator) Continuous() Range {
	return NewRange(a.ContinuousInner(), a.Outer)
}

// Allocate builds the discrete bands of the series, innermost first.
// Bands whose column can not be resolved are reported in the
// returned error while the remaining bands are still allocated.
func (a BandAllocator) Allocate(s Series, specs []BandSpec) ([]Band, error) {
	if s.Len() == 0 {
		return nil, configError("band allocator", "no values to scale", ErrEmpty)
	}
	var (
		bands []Band
		errs  []error
	)
	for i, spec := range specs {
		max, err := s.MaxValue(spec.ColumnName())
		if err != nil {
			errs = append(errs, configError("band "+spec.Name, "domain", err))
			continue
		}
		rg := a.Range(i)
		b := Band{
			Name:        spec.Name,
			Column:      spec.ColumnName(),
			Inner:       rg.Min(),
			Outer:       rg.Max(),
			ValueScaler: NumberScaler(NewDomain(0, max), rg, spec.Scale),
		}
		bands = append(bands, b)
	}
	return bands, errors.Join(errs...)
}

// AllocateContinuous builds the outer band holding the temperature
// curve. Its domain is the temperature extent expanded to nice
// boundaries.
func (a BandAllocator) AllocateContinuous(s Series, mode ScaleMode, ticks int) (Band, error) {
	min, max, err := s.TempExtent()
	if err != nil {
		return Band{}, configError("band allocator", "no values to scale", err)
	}
	dom := NewDomain(min, max)
	dom.Min, dom.Max = Nice(dom.Min, dom.Max, ticks)

	rg := a.Continuous()
	b := Band{
		Name:        "temp",
		Column:      TempBand,
		Inner:       rg.Min(),
		Outer:       rg.Max(),
		ValueScaler: NumberScaler(dom, rg, mode),
	}
	return b, nil
}

// Baseline is the radius of value 0 when it belongs to the domain of
// the band, the radius of the domain minimum otherwise.
func (b Band) Baseline() float64 {
	if b.Domain.Contains(0) {
		return b.Scale(0)
	}
	return b.Scale(b.Domain.Min)
}
