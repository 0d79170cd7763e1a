package advanced

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the drawing, in pixels
const dbgDrawPadding = 20

func (m *Mesh) dbgDraw(scale float64) {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range m.nodes {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, t := range m.triangles {
		a, b, cc := m.nodes[t.A], m.nodes[t.B], m.nodes[t.C]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(cc.X, cc.Y)
		c.ClosePath()
		c.SetRGB(0, 0.5, 0)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	// Boundary on top, thicker
	c.SetLineWidth(3)
	c.SetRGB(0, 1, 1)
	for _, b := range m.markers {
		p, q := m.nodes[b.Edge.From], m.nodes[b.Edge.To]
		c.DrawLine(p.X, p.Y, q.X, q.Y)
		c.Stroke()
	}

	path := filepath.Join(os.TempDir(), "meshgen_mesh.png")
	c.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
}
