package airchart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		Min   float64
		Max   float64
		Count int
		Want  []float64
	}{
		{
			Min:   -13,
			Max:   27,
			Count: 10,
			Want:  []float64{-10, -5, 0, 5, 10, 15, 20, 25},
		},
		{
			Min:   0,
			Max:   1,
			Count: 5,
			Want:  []float64{0, 0.2, 0.4, 0.6, 0.8, 1},
		},
		{
			Min:   0,
			Max:   100,
			Count: 4,
			Want:  []float64{0, 20, 40, 60, 80, 100},
		},
		{
			Min:   27,
			Max:   -13,
			Count: 10,
			Want:  []float64{25, 20, 15, 10, 5, 0, -5, -10},
		},
		{
			Min:   3,
			Max:   3,
			Count: 10,
			Want:  []float64{3},
		},
	}
	for _, tt := range tests {
		got := Ticks(tt.Min, tt.Max, tt.Count)
		if diff := cmp.Diff(tt.Want, got); diff != "" {
			t.Errorf("ticks [%f, %f] mismatched (-want +got):\n%s", tt.Min, tt.Max, diff)
		}
	}
	if got := Ticks(0, 10, 0); got != nil {
		t.Errorf("no ticks expected for zero count, got %v", got)
	}
}

func TestTickStep(t *testing.T) {
	if got := TickStep(-13, 27, 10); got != 5 {
		t.Errorf("step mismatched! want 5, got %f", got)
	}
	if got := TickStep(0, 1, 10); !almostEqual(got, 0.1) {
		t.Errorf("step mismatched! want 0.1, got %f", got)
	}
}

func TestNice(t *testing.T) {
	tests := []struct {
		Min  float64
		Max  float64
		Want [2]float64
	}{
		{Min: -13, Max: 27, Want: [2]float64{-15, 30}},
		{Min: 0.12, Max: 0.87, Want: [2]float64{0.1, 0.9}},
		{Min: 0, Max: 100, Want: [2]float64{0, 100}},
	}
	for _, tt := range tests {
		min, max := Nice(tt.Min, tt.Max, 10)
		if !almostEqual(min, tt.Want[0]) || !almostEqual(max, tt.Want[1]) {
			t.Errorf("nice [%f, %f] mismatched! want %v, got [%f, %f]", tt.Min, tt.Max, tt.Want, min, max)
		}
	}
}

func TestPlanAngular(t *testing.T) {
	var (
		s      = sampleSeries(t, 7)
		ps, _  = NewPolarScale(s.Keys())
		holi   = NewHolidays(day0.AddDate(0, 0, 2))
		format = func(r Record) string {
			return r.Date.Format("2 Jan")
		}
	)
	ticks := PlanAngular(s, ps, holi, 250, format)
	if len(ticks) != s.Len() {
		t.Fatalf("one tick per record expected! want %d, got %d", s.Len(), len(ticks))
	}
	for i, tk := range ticks {
		if flip := i >= 4; tk.Flip != flip {
			t.Errorf("tick %d: flip mismatched! want %t, got %t", i, flip, tk.Flip)
		}
		if tk.Flip && tk.Anchor != AnchorEnd {
			t.Errorf("tick %d: flipped label should be anchored at end, got %s", i, tk.Anchor)
		}
		if tk.Holiday != (i == 2) {
			t.Errorf("tick %d: holiday mismatched! got %t", i, tk.Holiday)
		}
		center, _ := ps.Center(tk.Key)
		if !almostEqual(tk.Angle, center) {
			t.Errorf("tick %d: label should be centered on its wedge", i)
		}
	}
	if ticks[0].Label != "1 Jan" {
		t.Errorf("label mismatched! want 1 Jan, got %s", ticks[0].Label)
	}
}

func TestPlanRadial(t *testing.T) {
	b := Band{
		Inner:       150,
		Outer:       300,
		ValueScaler: NumberScaler(NewDomain(-15, 30), NewRange(150, 300), ScaleLinear),
	}
	ticks := PlanRadial(b, 10)
	if len(ticks) != 10 {
		t.Fatalf("number of ticks mismatched! want 10, got %d", len(ticks))
	}
	fst, lst := ticks[0], ticks[len(ticks)-1]
	if !fst.Inner || fst.Label != "" || fst.Value != -15 {
		t.Errorf("first tick should be an unlabeled inner boundary: %+v", fst)
	}
	if !lst.Outer || lst.Label != "" || lst.Value != 30 {
		t.Errorf("last tick should be an unlabeled outer boundary: %+v", lst)
	}
	var center int
	for _, tk := range ticks[1 : len(ticks)-1] {
		if tk.Label == "" {
			t.Errorf("tick %f should be labeled", tk.Value)
		}
		if tk.Center {
			center++
		}
	}
	if center != 1 {
		t.Errorf("one center tick expected, got %d", center)
	}
}

func TestPlanBandAxis(t *testing.T) {
	b := Band{
		Inner:       100,
		Outer:       120,
		ValueScaler: NumberScaler(NewDomain(0, 200), NewRange(100, 120), ScaleLinear),
	}
	axis := PlanBandAxis(b, 150)
	if axis.Threshold == nil {
		t.Fatal("threshold expected")
	}
	if !almostEqual(axis.Threshold.Radius, 115) || axis.Threshold.Label != "150" {
		t.Errorf("threshold mismatched: %+v", *axis.Threshold)
	}
	if axis := PlanBandAxis(b, 0); axis.Threshold != nil {
		t.Errorf("no threshold expected without standard")
	}
}
