package render

import (
	"fractal-tree/internal/core"

	"golang.org/x/image/colornames"
)

// Palette used by the tree.
var (
	TrunkColor = colornames.Saddlebrown
	TipColor   = colornames.Darkgreen
	LeafColor  = colornames.Lightgreen
)

// LeafSize is the edge length of a leaf mark in pixels.
const LeafSize = 5

// DrawSegment strokes a line from the local origin to (endX, endY).
func DrawSegment(s core.Surface, endX, endY float64) {
	s.StrokeLine(0, 0, endX, endY)
}

// DrawLeaf fills a LeafSize square at the local point (x, y).
func DrawLeaf(s core.Surface, x, y float64) {
	s.SetFillColor(LeafColor)
	s.FillRect(x, y, LeafSize, LeafSize)
}
