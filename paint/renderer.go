package paint

import (
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"

	"github.com/midbel/airchart"
)

func getPosFromAngle(angle, radius float64) svg.Pos {
	pt := airchart.PolarPoint(angle, radius)
	return svg.NewPos(pt.X, pt.Y)
}

func toPos(pt airchart.Point) svg.Pos {
	return svg.NewPos(pt.X, pt.Y)
}

// wedgePath draws the annular sector of a wedge, clockwise on the
// outer arc and back on the inner arc.
func wedgePath(start, end, inner, outer float64, fill string) svg.Path {
	pat := getBasePath(false)
	pat.Stroke = svg.NewStroke("none", 0)
	pat.Fill = svg.NewFill(fill)
	pat.AbsMoveTo(getPosFromAngle(start, outer))
	arcTo(&pat, start, end, outer)
	if inner > 0 {
		pat.AbsLineTo(getPosFromAngle(end, inner))
		arcTo(&pat, end, start, inner)
	} else {
		pat.AbsLineTo(svg.NewPos(0, 0))
	}
	pat.ClosePath()
	return pat
}

// arcTo follows the circle of radius from angle from to angle to,
// clockwise when to > from, in pieces of at most half a circle.
func arcTo(pat *svg.Path, from, to, radius float64) {
	sweep := to > from
	for _, a := range arcAngles(from, to) {
		pat.AbsArcTo(getPosFromAngle(a, radius), radius, radius, 0, false, sweep)
	}
}

// arcAngles returns the end angle of every piece of the arc from from to
// to.
func arcAngles(from, to float64) []float64 {
	var (
		span  = to - from
		count = int(math.Ceil(math.Abs(span)/halfcircle - 1e-9))
	)
	if count == 0 {
		return nil
	}
	list := make([]float64, 0, count)
	for i := 1; i < count; i++ {
		list = append(list, from+span*float64(i)/float64(count))
	}
	return append(list, to)
}

func renderWedges(wedges []airchart.Wedge, fill string) svg.Element {
	grp := getBaseGroup("", "values")
	for _, w := range wedges {
		pat := wedgePath(w.Start, w.End, w.Inner, w.Outer, fill)
		grp.Append(pat.AsElement())
	}
	return grp.AsElement()
}

// contourPath follows the segments of a run; a step is drawn between
// two segments drawn at different radii.
func contourPath(run []airchart.ContourSegment, stroke svg.Stroke) svg.Path {
	var (
		pat = getBasePath(false)
		fst = slices.Fst(run)
		pos = getPosFromAngle(fst.Start, fst.Radius)
	)
	pat.Stroke = stroke
	pat.AbsMoveTo(pos)
	for i, seg := range run {
		if i > 0 && seg.Radius != run[i-1].Radius {
			pat.AbsLineTo(getPosFromAngle(seg.Start, seg.Radius))
		}
		arcTo(&pat, seg.Start, seg.End, seg.Radius)
	}
	return pat
}

func renderContours(contours []airchart.Contour, mode airchart.ContourMode, style Style) svg.Element {
	grp := getBaseGroup("", "levels")
	stroke := svg.NewStroke(style.Level.Color, 1)
	stroke.Opacity = style.Level.Opacity
	for _, c := range contours {
		for _, run := range c.Visible(mode) {
			pat := contourPath(run, stroke)
			grp.Append(pat.AsElement())
		}
	}
	return grp.AsElement()
}

// renderCurve fills the area between the baseline circle and the
// curve. The baseline is drawn counterclockwise so that, with the
// nonzero fill rule, the disc under the baseline is left empty.
func renderCurve(curve airchart.Curve, color string) svg.Element {
	var (
		grp = getBaseGroup(color, "graph")
		pat = getBasePath(true)
	)
	pat.Stroke = svg.NewStroke(color, 1)
	pat.Fill = svg.NewFill(color)
	pat.Fill.Opacity = 0.3
	if len(curve.Points) > 0 {
		pat.AbsMoveTo(toPos(curve.Start()))
		for _, seg := range curve.Segments {
			pat.AbsCubicCurve(toPos(seg.To), toPos(seg.Ctrl1), toPos(seg.Ctrl2))
		}
		pat.ClosePath()
		if curve.Baseline > 0 {
			pat.AbsMoveTo(getPosFromAngle(fullcircle, curve.Baseline))
			arcTo(&pat, fullcircle, 0, curve.Baseline)
			pat.ClosePath()
		}
	}
	base := getCircle(curve.Baseline, color, 0.5)
	grp.Append(base.AsElement())
	grp.Append(pat.AsElement())
	return grp.AsElement()
}

func getCircle(radius float64, color string, opacity float64) svg.Circle {
	el := svg.NewCircle()
	el.Pos = svg.NewPos(0, 0)
	el.Radius = radius
	el.Fill = svg.NewFill("none")
	el.Stroke = svg.NewStroke(color, 1)
	el.Stroke.Opacity = opacity
	return el
}

func getBasePath(fill bool) svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColour, 1)
	if fill {
		pat.Fill = svg.NewFill(currentColour)
		pat.Fill.Opacity = 0.5
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
