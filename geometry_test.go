package airchart

import (
	"math"
	"testing"
)

func testBand(values []float64) (Series, PolarScale, Band) {
	var list []Record
	for i, v := range values {
		list = append(list, NewRecord(day0.AddDate(0, 0, i), v, map[string]int{"NO2": int(v)}))
	}
	s, _ := NewSeries(list)
	ps, _ := NewPolarScale(s.Keys())
	b := Band{
		Name:        "no2",
		Column:      "NO2",
		Inner:       100,
		Outer:       200,
		ValueScaler: NumberScaler(NewDomain(0, 100), NewRange(100, 200), ScaleLinear),
	}
	return s, ps, b
}

func TestBuildWedges(t *testing.T) {
	s, ps, b := testBand([]float64{0, 25, 50, 100})
	wedges := BuildWedges(s, ps, b)
	if len(wedges) != 4 {
		t.Fatalf("one wedge per record expected, got %d", len(wedges))
	}
	want := []float64{100, 125, 150, 200}
	for i, w := range wedges {
		if w.Inner != b.Inner {
			t.Errorf("wedge %d: should start at band inner radius, got %f", i, w.Inner)
		}
		if !almostEqual(w.Outer, want[i]) {
			t.Errorf("wedge %d: outer radius mismatched! want %f, got %f", i, want[i], w.Outer)
		}
	}
}

func TestBuildContours(t *testing.T) {
	s, ps, b := testBand([]float64{10, 30, 90, 20})
	var (
		wedges = BuildWedges(s, ps, b)
		levels = 3
	)
	for _, mode := range []ContourMode{ContourClip, ContourSkip} {
		contours := BuildContours(wedges, b, levels, mode)
		if len(contours) != levels {
			t.Fatalf("%s: number of contours mismatched! want %d, got %d", mode, levels, len(contours))
		}
		for i, c := range contours {
			frac := float64(i+1) / float64(levels+1)
			if !almostEqual(c.Fraction, frac) || !almostEqual(c.Value, frac*100) {
				t.Errorf("%s: contour %d at wrong level: %f (%f)", mode, i, c.Fraction, c.Value)
			}
			for j, seg := range c.Segments {
				reached := c.Radius <= wedges[j].Outer
				if seg.Suppressed != reached {
					t.Errorf("%s: contour %d segment %d: suppressed mismatched! want %t", mode, i, j, reached)
				}
				switch {
				case mode == ContourClip && reached:
					if seg.Radius != math.Max(c.Radius, wedges[j].Outer) {
						t.Errorf("%s: clipped segment should follow the value, got %f", mode, seg.Radius)
					}
				default:
					if seg.Radius != c.Radius {
						t.Errorf("%s: segment should stay at contour radius, got %f", mode, seg.Radius)
					}
				}
			}
		}
	}
}

func TestContourVisible(t *testing.T) {
	c := Contour{
		Segments: []ContourSegment{
			{Key: 1},
			{Key: 2, Suppressed: true},
			{Key: 3},
			{Key: 4},
			{Key: 5, Suppressed: true},
		},
	}
	if runs := c.Visible(ContourClip); len(runs) != 1 || len(runs[0]) != 5 {
		t.Errorf("clip mode should draw one closed run, got %v", runs)
	}
	runs := c.Visible(ContourSkip)
	if len(runs) != 2 {
		t.Fatalf("skip mode should break the contour in 2 runs, got %d", len(runs))
	}
	if len(runs[0]) != 1 || len(runs[1]) != 2 || runs[1][0].Key != 3 {
		t.Errorf("runs mismatched: %v", runs)
	}
}

func TestBuildCurve(t *testing.T) {
	s, ps, b := testBand([]float64{10, 30, 90, 20, 55})
	c := BuildCurve(s, ps, b)
	if len(c.Points) != s.Len() || len(c.Segments) != s.Len() {
		t.Fatalf("closed curve expected: %d points, %d segments", len(c.Points), len(c.Segments))
	}
	for i, r := range s.Records() {
		var (
			p      = c.Points[i]
			radius = math.Hypot(p.X, p.Y)
		)
		if !almostEqual(radius, b.Scale(r.Temp)) {
			t.Errorf("point %d: radius mismatched! want %f, got %f", i, b.Scale(r.Temp), radius)
		}
		next := c.Points[(i+1)%len(c.Points)]
		if to := c.Segments[i].To; !almostEqual(to.X, next.X) || !almostEqual(to.Y, next.Y) {
			t.Errorf("segment %d should end on point %d", i, (i+1)%len(c.Points))
		}
	}
	if c.Start() != c.Points[0] {
		t.Errorf("curve should start on the first point")
	}
	if !almostEqual(c.Baseline, 100) {
		t.Errorf("baseline mismatched! want 100, got %f", c.Baseline)
	}
}

func TestPolarPoint(t *testing.T) {
	p := PolarPoint(0, 10)
	if !almostEqual(p.X, 0) || !almostEqual(p.Y, -10) {
		t.Errorf("angle 0 should point up, got %+v", p)
	}
	p = PolarPoint(math.Pi/2, 10)
	if !almostEqual(p.X, 10) || !almostEqual(p.Y, 0) {
		t.Errorf("quarter turn should point right, got %+v", p)
	}
}
