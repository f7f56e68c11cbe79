package airchart

import (
	"math"

	"github.com/midbel/slices"
)

// Wedge is the angular slice of a record in a band, from Start to End
// (radians) and from Inner to Outer (radius).
type Wedge struct {
	Key   int64
	Start float64
	End   float64
	Inner float64
	Outer float64
	Value float64
}

type ContourSegment struct {
	Key        int64
	Start      float64
	End        float64
	Radius     float64
	Suppressed bool
}

// Contour is a reference arc drawn at a fixed fraction of the domain of
// a band.
type Contour struct {
	Fraction float64
	Value    float64
	Radius   float64
	Segments []ContourSegment
}

// Visible returns the runs of consecutive segments to draw. In clip mode
// the contour is one closed run, in skip mode suppressed segments break
// the contour.
func (c Contour) Visible(mode ContourMode) [][]ContourSegment {
	if mode == ContourClip {
		if len(c.Segments) == 0 {
			return nil
		}
		return [][]ContourSegment{c.Segments}
	}
	var (
		runs [][]ContourSegment
		curr []ContourSegment
	)
	for _, s := range c.Segments {
		if s.Suppressed {
			if len(curr) > 0 {
				runs = append(runs, curr)
			}
			curr = nil
			continue
		}
		curr = append(curr, s)
	}
	if len(curr) > 0 {
		runs = append(runs, curr)
	}
	return runs
}

// BuildWedges returns the value wedge of every record of the series in
// the band.
func BuildWedges(s Series, ps PolarScale, b Band) []Wedge {
	list := make([]Wedge, 0, s.Len())
	for _, r := range s.Records() {
		start, end, ok := ps.Wedge(r.Key)
		if !ok {
			continue
		}
		v, _ := r.Value(b.Column)
		list = append(list, Wedge{
			Key:   r.Key,
			Start: start,
			End:   end,
			Inner: b.Inner,
			Outer: b.Scale(v),
			Value: v,
		})
	}
	return list
}

// BuildContours returns the level contours of a band, one per fraction
// 1/(n+1) ... n/(n+1) of its domain. A contour is suppressed at a
// record when the value of the record already reaches it.
func BuildContours(wedges []Wedge, b Band, levels int, mode ContourMode) []Contour {
	list := make([]Contour, 0, levels)
	for i := 1; i <= levels; i++ {
		var (
			frac  = float64(i) / float64(levels+1)
			value = b.Domain.At(frac)
			c     = Contour{
				Fraction: frac,
				Value:    value,
				Radius:   b.Scale(value),
				Segments: make([]ContourSegment, 0, len(wedges)),
			}
		)
		for _, w := range wedges {
			seg := ContourSegment{
				Key:        w.Key,
				Start:      w.Start,
				End:        w.End,
				Radius:     c.Radius,
				Suppressed: c.Radius <= w.Outer,
			}
			if seg.Suppressed && mode == ContourClip {
				seg.Radius = math.Max(c.Radius, w.Outer)
			}
			c.Segments = append(c.Segments, seg)
		}
		list = append(list, c)
	}
	return list
}

// Bezier is one segment of a cubic curve from the end of the previous
// segment to To.
type Bezier struct {
	Ctrl1 Point
	Ctrl2 Point
	To    Point
}

type Curve struct {
	Baseline float64
	Points   []Point
	Segments []Bezier
}

func (c Curve) Start() Point {
	if len(c.Points) == 0 {
		return Point{}
	}
	return slices.Fst(c.Points)
}

// BuildCurve interpolates the temperature of every record with a closed
// Catmull-Rom spline. The spline passes through every point.
func BuildCurve(s Series, ps PolarScale, b Band) Curve {
	c := Curve{
		Baseline: b.Baseline(),
		Points:   make([]Point, 0, s.Len()),
	}
	for _, r := range s.Records() {
		angle, ok := ps.Center(r.Key)
		if !ok {
			continue
		}
		c.Points = append(c.Points, PolarPoint(angle, b.Scale(r.Temp)))
	}
	c.Segments = catmullRom(c.Points)
	return c
}

func catmullRom(points []Point) []Bezier {
	n := len(points)
	if n < 2 {
		return nil
	}
	at := func(i int) Point {
		return points[((i%n)+n)%n]
	}
	list := make([]Bezier, 0, n)
	for i := 0; i < n; i++ {
		var (
			p0 = at(i - 1)
			p1 = at(i)
			p2 = at(i + 1)
			p3 = at(i + 2)
		)
		list = append(list, Bezier{
			Ctrl1: p1.Add(p2.Sub(p0).Mul(1.0 / 6)),
			Ctrl2: p2.Sub(p3.Sub(p1).Mul(1.0 / 6)),
			To:    p2,
		})
	}
	return list
}
