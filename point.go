package airchart

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

// PolarPoint converts an angle, clockwise from 12 o'clock, and a
// radius to the position relative to the chart center. The y axis
// points down as in SVG.
func PolarPoint(angle, radius float64) Point {
	return Point{
		X: radius * math.Sin(angle),
		Y: -radius * math.Cos(angle),
	}
}

func (p Point) Add(o Point) Point {
	return NewPoint(p.X+o.X, p.Y+o.Y)
}

func (p Point) Sub(o Point) Point {
	return NewPoint(p.X-o.X, p.Y-o.Y)
}

func (p Point) Mul(f float64) Point {
	return NewPoint(p.X*f, p.Y*f)
}
