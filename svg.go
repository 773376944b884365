package chesscore

import (
	"io"

	svg "github.com/ajstarks/svgo"
)

// SVG rendering sizes, in user units.
const (
	svgSquareSize = 45
	svgBoardSize  = 8 * svgSquareSize
)

// Square fill colors matching the common lichess palette.
const (
	svgLightFill  = "fill:#f0d9b5"
	svgDarkFill   = "fill:#b58863"
	svgMarkerFill = "fill:#d85000;fill-opacity:0.85"
)

// WriteSVG writes an SVG diagram of the bitboard to w: an 8x8 checkerboard
// drawn rank 8 first with a marker on every occupied square. Like Draw, it
// is a debugging aid; the exact markup is not a stability contract.
func WriteSVG(w io.Writer, b Bitboard) {
	canvas := svg.New(w)
	canvas.Start(svgBoardSize, svgBoardSize)
	for r := Rank8; ; r-- {
		y := int(Rank8-r) * svgSquareSize
		for f := FileA; f <= FileH; f++ {
			x := int(f) * svgSquareSize
			fill := svgLightFill
			if (int(f)+int(r))%2 == 0 {
				fill = svgDarkFill
			}
			canvas.Rect(x, y, svgSquareSize, svgSquareSize, fill)
			if b.Occupied(NewSquare(f, r)) {
				canvas.Circle(x+svgSquareSize/2, y+svgSquareSize/2, svgSquareSize/3, svgMarkerFill)
			}
		}
		if r == Rank1 {
			break
		}
	}
	canvas.End()
}
