package airchart

import (
	"fmt"
	"math"
	"strings"
)

const (
	fullcircle = 2 * math.Pi
	halfcircle = math.Pi
	rad2deg    = 180 / math.Pi
)

// Epsilon pads degenerate domains so that max > min always holds.
const Epsilon = 1e-6

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

func (r Range) Contains(v float64) bool {
	return v >= r.F && v <= r.T
}

type Domain struct {
	Min float64
	Max float64
}

func NewDomain(min, max float64) Domain {
	if min > max {
		min, max = max, min
	}
	if max == min {
		max = min + Epsilon
	}
	return Domain{
		Min: min,
		Max: max,
	}
}

func (d Domain) Diff(v float64) float64 {
	return v - d.Min
}

func (d Domain) Extend() float64 {
	return d.Max - d.Min
}

func (d Domain) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}

// At returns the value found at the given fraction of the domain.
func (d Domain) At(frac float64) float64 {
	return d.Min + frac*d.Extend()
}

type ScaleMode int

const (
	ScaleLinear ScaleMode = iota
	ScaleSqrt
)

func ParseScaleMode(str string) (ScaleMode, error) {
	switch strings.ToLower(str) {
	case "", "linear":
		return ScaleLinear, nil
	case "sqrt", "radial":
		return ScaleSqrt, nil
	default:
		return ScaleLinear, fmt.Errorf("%s: unrecognized scale mode", str)
	}
}

func (m ScaleMode) String() string {
	if m == ScaleSqrt {
		return "sqrt"
	}
	return "linear"
}

func (m ScaleMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ScaleMode) UnmarshalText(b []byte) error {
	x, err := ParseScaleMode(string(b))
	if err == nil {
		*m = x
	}
	return err
}

// ValueScaler maps a value of a band domain to a radius of the
// band range.
type ValueScaler struct {
	Range  Range
	Domain Domain
	Mode   ScaleMode
}

func NumberScaler(dom Domain, rg Range, mode ScaleMode) ValueScaler {
	return ValueScaler{
		Range:  rg,
		Domain: NewDomain(dom.Min, dom.Max),
		Mode:   mode,
	}
}

func (s ValueScaler) Scale(v float64) float64 {
	t := s.Domain.Diff(v) / s.Domain.Extend()
	if s.Mode == ScaleSqrt {
		t = signedSqrt(t)
	}
	return s.Range.F + t*s.Range.Len()
}

func signedSqrt(t float64) float64 {
	if t < 0 {
		return -math.Sqrt(-t)
	}
	return math.Sqrt(t)
}

// PolarScale splits the full circle in equal wedges, one per key,
// in the order of the keys. The first wedge starts at half a step
// so that the seam at angle 0 falls in the middle of a wedge.
type PolarScale struct {
	keys  []int64
	index map[int64]int
	step  float64
}

func NewPolarScale(keys []int64) (PolarScale, error) {
	if len(keys) == 0 {
		return PolarScale{}, configError("polar scale", "no angular partition for zero keys", ErrEmpty)
	}
	s := PolarScale{
		keys:  make([]int64, len(keys)),
		index: make(map[int64]int, len(keys)),
		step:  fullcircle / float64(len(keys)),
	}
	copy(s.keys, keys)
	for i, k := range keys {
		if _, ok := s.index[k]; ok {
			return PolarScale{}, configError("polar scale", fmt.Sprintf("key %d", k), ErrDuplicate)
		}
		s.index[k] = i
	}
	return s, nil
}

func (s PolarScale) Len() int {
	return len(s.keys)
}

func (s PolarScale) Keys() []int64 {
	return s.keys
}

func (s PolarScale) Bandwidth() float64 {
	return s.step
}

func (s PolarScale) Index(key int64) (int, bool) {
	i, ok := s.index[key]
	return i, ok
}

// Angle returns the start angle of the wedge owned by key.
func (s PolarScale) Angle(key int64) (float64, bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	return s.angleAt(i), true
}

func (s PolarScale) Center(key int64) (float64, bool) {
	a, ok := s.Angle(key)
	return a + s.step/2, ok
}

func (s PolarScale) Wedge(key int64) (float64, float64, bool) {
	a, ok := s.Angle(key)
	return a, a + s.step, ok
}

func (s PolarScale) angleAt(i int) float64 {
	return s.step/2 + float64(i)*s.step
}
