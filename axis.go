package airchart

import (
	"math"
	"strconv"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// tickSpec picks the step among {1,2,5}·10^k closest to the requested
// number of ticks. A negative inc means the step is 1/-inc, which
// keeps fractional steps exact.
func tickSpec(start, stop float64, count int) (int, int, float64) {
	var (
		step   = (stop - start) / math.Max(0, float64(count))
		power  = math.Floor(math.Log10(step))
		err    = step / math.Pow(10, power)
		factor = 1.0
		i1, i2 int
		inc    float64
	)
	switch {
	case err >= e10:
		factor = 10
	case err >= e5:
		factor = 5
	case err >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = int(math.Round(start * inc))
		i2 = int(math.Round(stop * inc))
		if float64(i1)/inc < start {
			i1++
		}
		if float64(i2)/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = int(math.Round(start / inc))
		i2 = int(math.Round(stop / inc))
		if float64(i1)*inc < start {
			i1++
		}
		if float64(i2)*inc > stop {
			i2--
		}
	}
	if i2 < i1 && count >= 1 && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

func validTicks(min, max float64, count int) bool {
	return count > 0 && !math.IsNaN(min) && !math.IsNaN(max) && !math.IsInf(max-min, 0)
}

// TickStep returns the distance between two consecutive nice ticks.
func TickStep(min, max float64, count int) float64 {
	if !validTicks(min, max, count) || min == max {
		return 0
	}
	if min > max {
		min, max = max, min
	}
	_, _, inc := tickSpec(min, max, count)
	if inc < 0 {
		return 1 / -inc
	}
	return inc
}

// Ticks returns the multiples of the nice step found in [min, max].
func Ticks(min, max float64, count int) []float64 {
	if !validTicks(min, max, count) {
		return nil
	}
	if min == max {
		return []float64{min}
	}
	reverse := min > max
	if reverse {
		min, max = max, min
	}
	i1, i2, inc := tickSpec(min, max, count)
	if i2 < i1 {
		return nil
	}
	list := make([]float64, 0, i2-i1+1)
	for i := i1; i <= i2; i++ {
		if inc < 0 {
			list = append(list, float64(i)/-inc)
		} else {
			list = append(list, float64(i)*inc)
		}
	}
	if reverse {
		for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
			list[i], list[j] = list[j], list[i]
		}
	}
	return list
}

func tickIncrement(start, stop float64, count int) float64 {
	var (
		step  = (stop - start) / math.Max(0, float64(count))
		power = math.Floor(math.Log10(step))
		err   = step / math.Pow(10, power)
		inc   = 1.0
	)
	switch {
	case err >= e10:
		inc = 10
	case err >= e5:
		inc = 5
	case err >= e2:
		inc = 2
	}
	if power >= 0 {
		return inc * math.Pow(10, power)
	}
	return -math.Pow(10, -power) / inc
}

// Nice expands [min, max] outward to the closest boundaries of the
// nice step.
func Nice(min, max float64, count int) (float64, float64) {
	if !validTicks(min, max, count) || min >= max {
		return min, max
	}
	var prev float64
	for i := 0; i < 10; i++ {
		step := tickIncrement(min, max, count)
		if step == prev {
			break
		}
		switch {
		case step > 0:
			min = math.Floor(min/step) * step
			max = math.Ceil(max/step) * step
		case step < 0:
			min = math.Ceil(min*step) / step
			max = math.Floor(max*step) / step
		default:
			return min, max
		}
		prev = step
	}
	return min, max
}

type AngularTick struct {
	Key     int64
	Index   int
	Angle   float64
	Radius  float64
	Rotate  float64
	Flip    bool
	Anchor  Anchor
	Label   string
	Holiday bool
}

// PlanAngular places one label per record in the middle of its wedge.
// Labels of the first half of the records read on the right side of
// the circle, the others are flipped to read on the left side.
func PlanAngular(s Series, ps PolarScale, holidays Holidays, radius float64, format func(Record) string) []AngularTick {
	var (
		list = make([]AngularTick, 0, s.Len())
		half = float64(s.Len()) / 2
	)
	for i, r := range s.Records() {
		center, ok := ps.Center(r.Key)
		if !ok {
			continue
		}
		tick := AngularTick{
			Key:     r.Key,
			Index:   i,
			Angle:   center,
			Radius:  radius,
			Rotate:  textRotation(center),
			Anchor:  AnchorStart,
			Holiday: holidays.Has(r.Key),
		}
		if float64(i) >= half {
			tick.Anchor = AnchorEnd
			tick.Flip = true
		}
		if format != nil {
			tick.Label = format(r)
		}
		list = append(list, tick)
	}
	return list
}

// textRotation converts a clockwise angle from 12 o'clock to the
// rotation, in degrees, of a text drawn along the radius.
func textRotation(angle float64) float64 {
	return (angle - halfcircle/2) * rad2deg
}

type RadialTick struct {
	Value  float64
	Radius float64
	Inner  bool
	Outer  bool
	Center bool
	Label  string
}

// PlanRadial computes the magnitude ticks of a band over its whole
// domain. Boundary ticks are flagged and left without label.
func PlanRadial(b Band, count int) []RadialTick {
	var (
		values = Ticks(b.Domain.Min, b.Domain.Max, count)
		list   = make([]RadialTick, 0, len(values))
	)
	for i, v := range values {
		tick := RadialTick{
			Value:  v,
			Radius: b.Scale(v),
			Inner:  i == 0,
			Outer:  i == len(values)-1,
			Center: v == 0,
		}
		if !tick.Inner && !tick.Outer {
			tick.Label = formatNumber(v)
		}
		list = append(list, tick)
	}
	return list
}

type Threshold struct {
	Value  float64
	Radius float64
	Label  string
}

type BandAxis struct {
	Inner     float64
	Threshold *Threshold
}

func PlanBandAxis(b Band, standard float64) BandAxis {
	axis := BandAxis{
		Inner: b.Inner,
	}
	if standard > 0 {
		axis.Threshold = &Threshold{
			Value:  standard,
			Radius: b.Scale(standard),
			Label:  formatNumber(standard),
		}
	}
	return axis
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
