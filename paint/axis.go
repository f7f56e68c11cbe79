package paint

import (
	"fmt"
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"

	"github.com/midbel/airchart"
)

const (
	halfcircle = math.Pi
	fullcircle = 2 * math.Pi
	labelShift = 0.35
)

// renderAngular draws the hit-region and the date label of every record.
// Hit-regions are painted in the order given by the hover state.
func renderAngular(sc airchart.Scene, state airchart.Hover, style Style) svg.Element {
	var (
		grp   = svg.NewGroup(svg.WithID("x-axis"))
		font  = svg.NewFont(style.FontSize)
		ticks = make(map[int64]airchart.AngularTick)
		order []airchart.HitRegion
	)
	for _, t := range sc.Angular {
		ticks[t.Key] = t
	}
	if sc.Tooltips != nil {
		order = sc.Tooltips.Order(state)
	}
	for _, r := range order {
		day := getBaseGroup("", "day")
		pat := wedgePath(r.Start, r.End, r.Inner, r.Outer, "transparent")
		pat.Fill.Opacity = style.Hitbox.Opacity
		day.Append(pat.AsElement())
		if t, ok := ticks[r.Key]; ok {
			day.Append(tickLabel(t, font, style))
		}
		grp.Append(day.AsElement())
	}
	if sc.Tooltips == nil {
		for _, t := range sc.Angular {
			day := getBaseGroup("", "day")
			day.Append(tickLabel(t, font, style))
			grp.Append(day.AsElement())
		}
	}
	return grp.AsElement()
}

// tickLabel writes the label in a group moved to its position and
// rotated along the radius.
func tickLabel(t airchart.AngularTick, font svg.Font, style Style) svg.Element {
	var (
		grp  = getBaseGroup("")
		pos  = getPosFromAngle(t.Angle, t.Radius)
		text = svg.NewText(t.Label)
	)
	if t.Holiday {
		grp = getBaseGroup(style.Holiday, "holiday")
	}
	grp.Transform.TX = pos.X
	grp.Transform.TY = pos.Y
	grp.Transform.RA = t.Rotate
	if t.Flip {
		grp.Transform.RA += 180
	}
	text.Pos = svg.NewPos(0, 0)
	text.Font = font
	text.Anchor = string(t.Anchor)
	text.Baseline = "middle"
	grp.Append(text.AsElement())
	return grp.AsElement()
}

// renderRadial draws one circle per magnitude tick of the temperature
// band with its value written above the center.
func renderRadial(ticks []airchart.RadialTick, style Style) svg.Element {
	var (
		grp  = svg.NewGroup(svg.WithID("y-axis"))
		font = svg.NewFont(style.FontSize)
	)
	for _, t := range ticks {
		var (
			tick = getBaseGroup("", tickClass(t)...)
			ci   = getCircle(t.Radius, style.Axis, 0.5)
		)
		if t.Center {
			ci.Stroke.Opacity = 1
		}
		tick.Append(ci.AsElement())
		if t.Label != "" {
			tick.Append(radialText(t.Label, t.Radius, font, style.FontSize))
		}
		grp.Append(tick.AsElement())
	}
	return grp.AsElement()
}

func tickClass(t airchart.RadialTick) []string {
	class := []string{"ytick"}
	if t.Inner {
		class = append(class, "ytick-inner")
	}
	if t.Outer {
		class = append(class, "ytick-outer")
	}
	if t.Center {
		class = append(class, "ytick-center")
	}
	return class
}

func radialText(str string, radius float64, font svg.Font, size float64) svg.Element {
	text := svg.NewText(str)
	text.Pos = svg.NewPos(0, -radius+size*labelShift)
	text.Font = font
	text.Anchor = "middle"
	return text.AsElement()
}

func renderBandAxis(name string, axis airchart.BandAxis, style Style) svg.Element {
	var (
		grp  = getBaseGroup("", "y-axis")
		font = svg.NewFont(style.FontSize)
		ci   = getCircle(axis.Inner, style.Axis, 1)
	)
	grp.Append(ci.AsElement())
	if axis.Threshold != nil {
		std := getCircle(axis.Threshold.Radius, style.Standard, 1)
		std.Stroke.DashArray(4)
		grp.Append(std.AsElement())

		label := getBaseGroup("", "pollutant-standard", name)
		label.Append(radialText(axis.Threshold.Label, axis.Threshold.Radius, font, style.FontSize))
		grp.Append(label.AsElement())
	}
	return grp.AsElement()
}

func renderLegend(lg airchart.Legend, style Style) svg.Element {
	var (
		grp   = svg.NewGroup(svg.WithID("legend"))
		size  = style.FontSize * 1.4
		font  = svg.NewFont(size)
		month = svg.NewText(lg.Month)
		year  = svg.NewText(lg.Year)
	)
	month.Font = font
	month.Anchor = "middle"
	month.Pos = svg.NewPos(0, 0)
	year.Font = font
	year.Anchor = "middle"
	year.Pos = svg.NewPos(0, size*1.2)

	grp.Append(month.AsElement())
	grp.Append(year.AsElement())
	return grp.AsElement()
}

// renderTooltips writes the label entries visible in the given hover
// state. Entries of the other records are not part of the document.
func renderTooltips(ix *airchart.TooltipIndex, state airchart.Hover, style Style) svg.Element {
	grp := svg.NewGroup(svg.WithID("tooltips"))
	if ix == nil {
		return grp.AsElement()
	}
	list := ix.Visible(state)
	if len(list) == 0 {
		return grp.AsElement()
	}
	var (
		font = svg.NewFont(style.FontSize)
		key  = slices.Fst(list).Key
		tip  = getBaseGroup("", "tooltip", fmt.Sprintf("tooltip-%d", key))
	)
	for _, e := range list {
		text := svg.NewText(e.Text)
		text.Pos = toPos(e.Pos())
		text.Font = font
		text.Anchor = string(airchart.AnchorMiddle)
		text.Baseline = "middle"
		tip.Append(text.AsElement())
	}
	grp.Append(tip.AsElement())
	return grp.AsElement()
}
