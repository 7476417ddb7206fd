package chart

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

const font = `font-family="Arial, sans-serif"`

// WriteSVG writes the chart as a standalone SVG document.
func (l *Layout) WriteSVG(w io.Writer) error {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(l.Width, l.Height)
	canvas.Title(l.Title())

	canvas.Text(l.Width/2, 30, l.Title(),
		`text-anchor="middle"`, font, `font-size="18"`, `font-weight="bold"`)

	canvas.Rect(l.Margin, l.Margin, l.PlotWidth(), l.PlotHeight(),
		fmt.Sprintf(`fill="%s"`, PlotColor), fmt.Sprintf(`stroke="%s"`, GridColor), `stroke-width="1"`)

	canvas.Group(`id="altitudes"`)
	for _, g := range l.AltitudeGrid {
		gridLine(canvas, g, `text-anchor="end"`)
	}
	canvas.Gend()

	canvas.Group(`id="distances"`)
	for _, g := range l.DistanceGrid {
		gridLine(canvas, g, `text-anchor="middle"`)
	}
	canvas.Gend()

	xs, ys := split(l.Line)
	canvas.Polyline(xs, ys, `fill="none"`, fmt.Sprintf(`stroke="%s"`, LineColor), `stroke-width="3"`)
	xs, ys = split(l.Area)
	canvas.Polygon(xs, ys, fmt.Sprintf(`fill="%s"`, AreaColor), `stroke="none"`)

	canvas.Group(`id="hitos"`)
	for _, m := range l.Markers {
		canvas.Circle(m.X, m.Y, 4, fmt.Sprintf(`fill="%s"`, m.Color), `stroke="white"`, `stroke-width="2"`)
		canvas.Text(m.X, m.Y-10, m.Label,
			`text-anchor="middle"`, font, `font-size="9"`, `font-weight="bold"`)
	}
	canvas.Gend()

	canvas.Text(l.Width/2, l.Height-10, "Distancia (metros)", `text-anchor="middle"`, font, `font-size="12"`)
	canvas.Text(20, l.Height/2, "Altitud (metros)", `text-anchor="middle"`, font, `font-size="12"`,
		fmt.Sprintf(`transform="rotate(-90, 20, %v)"`, l.Height/2))

	canvas.Text(l.Margin, l.Height-30, l.Stats.String(), font, `font-size="10"`)
	canvas.End()

	_, err := buf.WriteTo(w)
	return err
}

func gridLine(canvas *svg.SVG, g GridLine, anchor string) {
	canvas.Line(g.From.X, g.From.Y, g.To.X, g.To.Y, fmt.Sprintf(`stroke="%s"`, GridColor), `stroke-width="0.5"`)
	canvas.Text(g.LabelAt.X, g.LabelAt.Y, g.Label, anchor, font, `font-size="10"`)
}
