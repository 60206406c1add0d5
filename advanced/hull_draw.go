package advanced

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/osuushi/geom/dbg"
)

// Padding around the shape so that points on the bounding box stay visible
const drawPadding = 20

// Render a point set and its hull. The context is flipped so that the origin
// is at the bottom left. With labels set, every hull vertex is tagged with a
// readable debug name.
func DrawHull(points, hull []Point, scale float64, labels bool) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X())
		minY = math.Min(minY, p.Y())
		maxX = math.Max(maxX, p.X())
		maxY = math.Max(maxY, p.Y())
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	if len(hull) > 0 {
		c.MoveTo(hull[0].X(), hull[0].Y())
		for _, p := range hull[1:] {
			c.LineTo(p.X(), p.Y())
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2)
		c.Stroke()
	}

	radius := 3 / scale
	for _, p := range points {
		c.DrawCircle(p.X(), p.Y(), radius)
	}
	c.SetRGB(1, 1, 0)
	c.Fill()
	for _, p := range hull {
		c.DrawCircle(p.X(), p.Y(), radius*1.5)
	}
	c.SetRGB(1, 0, 0)
	c.Fill()

	if labels {
		c.SetRGB(1, 1, 1)
		for _, p := range hull {
			// Text has to be drawn at identity, or it comes out upside down
			x, y := c.TransformPoint(p.X(), p.Y())
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(p), x, y-8, 0.5, 0)
			c.Pop()
		}
	}
	return c
}
