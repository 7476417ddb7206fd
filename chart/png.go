package chart

import (
	"io"

	"github.com/fogleman/gg"
)

// WritePNG rasterizes the chart with the same layout as WriteSVG.
func (l *Layout) WritePNG(w io.Writer) error {
	dc := gg.NewContext(int(l.Width), int(l.Height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	dc.DrawRectangle(l.Margin, l.Margin, l.PlotWidth(), l.PlotHeight())
	dc.SetHexColor(PlotColor)
	dc.FillPreserve()
	dc.SetHexColor(GridColor)
	dc.SetLineWidth(1)
	dc.Stroke()

	for _, g := range l.AltitudeGrid {
		drawGridLine(dc, g, 1)
	}
	for _, g := range l.DistanceGrid {
		drawGridLine(dc, g, 0.5)
	}

	// area first so the profile line stays on top
	for i, p := range l.Area {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
	dc.SetRGBA(0, 123.0/255, 1, 0.3)
	dc.Fill()

	for i, p := range l.Line {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.SetHexColor(LineColor)
	dc.SetLineWidth(3)
	dc.Stroke()

	for _, m := range l.Markers {
		dc.DrawCircle(m.X, m.Y, 4)
		dc.SetHexColor(m.Color)
		dc.FillPreserve()
		dc.SetRGB(1, 1, 1)
		dc.SetLineWidth(2)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(m.Label, m.X, m.Y-10, 0.5, 0)
	}

	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(l.Title(), l.Width/2, 30, 0.5, 0)
	dc.DrawStringAnchored("Distancia (metros)", l.Width/2, l.Height-10, 0.5, 0)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 20, l.Height/2)
	dc.DrawStringAnchored("Altitud (metros)", 20, l.Height/2, 0.5, 0)
	dc.Pop()
	dc.DrawString(l.Stats.String(), l.Margin, l.Height-30)

	return dc.EncodePNG(w)
}

func drawGridLine(dc *gg.Context, g GridLine, ax float64) {
	dc.SetHexColor(GridColor)
	dc.SetLineWidth(0.5)
	dc.DrawLine(g.From.X, g.From.Y, g.To.X, g.To.Y)
	dc.Stroke()
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(g.Label, g.LabelAt.X, g.LabelAt.Y, ax, 0)
}
