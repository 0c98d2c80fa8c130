package board

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/kresna/patzer/position"
)

const svgCellSize = 64

// WriteSVG writes the position as an SVG image, rank 8 at the top.
func (b *Board) WriteSVG(w io.Writer) {
	size := int(Width) * svgCellSize
	canvas := svg.New(w)
	canvas.Start(size, size)
	for y := position.Pos(0); y < Height; y++ {
		for x := position.Pos(0); x < Width; x++ {
			fill := "fill:#b58863"
			if (x+y)%2 == 1 {
				fill = "fill:#f0d9b5"
			}
			cx, cy := int(x)*svgCellSize, int(Height-1-y)*svgCellSize
			canvas.Rect(cx, cy, svgCellSize, svgCellSize, fill)

			pc := b.cells[position.New(x, y)]
			if pc.IsEmpty() {
				continue
			}
			canvas.Text(
				cx+svgCellSize/2,
				cy+svgCellSize*3/4,
				pc.Type.SymbolUnicode(pc.Side),
				"text-anchor:middle;font-size:48px",
			)
		}
	}
	canvas.End()
}
