package paint

import (
	"bufio"
	"io"

	"github.com/midbel/svg"

	"github.com/midbel/airchart"
)

// Painter writes a scene as a SVG document. Visibility of the tooltips
// and painting order of the records derive from the hover state only.
type Painter struct {
	Style
}

func NewPainter() Painter {
	return Painter{
		Style: DefaultStyle(),
	}
}

func (p Painter) Render(w io.Writer, sc airchart.Scene, state airchart.Hover) error {
	el := svg.NewSVG(svg.WithDimension(sc.Width, sc.Height))
	el.OmitProlog = true
	el.Append(p.Element(sc, state))

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// Element returns the root group of the chart, centered in the
// drawing.
func (p Painter) Element(sc airchart.Scene, state airchart.Hover) svg.Element {
	root := svg.NewGroup(svg.WithID("chart"), svg.WithTranslate(sc.CenterX, sc.CenterY))
	root.Append(renderAngular(sc, state, p.Style))
	root.Append(renderRadial(sc.Temp.Ticks, p.Style))
	root.Append(p.drawGraphs(sc))
	root.Append(renderTooltips(sc.Tooltips, state, p.Style))
	root.Append(renderLegend(sc.Legend, p.Style))
	return root.AsElement()
}

func (p Painter) drawGraphs(sc airchart.Scene) svg.Element {
	grp := svg.NewGroup(svg.WithID("graphs"))
	for i, b := range sc.Bands {
		var (
			color = p.Bands.At(i)
			band  = getBaseGroup("", b.Name+"-graph")
			graph = getBaseGroup("", "graph")
		)
		graph.Append(renderWedges(b.Wedges, color))
		graph.Append(renderContours(b.Contours, sc.Contour, p.Style))
		band.Append(graph.AsElement())
		band.Append(renderBandAxis(b.Name, b.Axis, p.Style))
		grp.Append(band.AsElement())
	}
	temp := getBaseGroup("", sc.Temp.Band.Name+"-graph")
	temp.Append(renderCurve(sc.Temp.Curve, p.Temp))
	grp.Append(temp.AsElement())
	return grp.AsElement()
}
