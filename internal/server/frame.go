package server

import (
	"strings"

	"volcano/internal/render"
	"volcano/internal/terrain"
)

// Frame draws a top-down, hill-shaded view of g into a cols×rows terminal.
// Each cell packs two vertically stacked samples with a half block; the last
// row carries the status line.
func Frame(g *terrain.Generator, cols, rows int) string {
	size := g.Size()
	if cols < 1 || rows < 2 || size.W == 0 {
		return ""
	}
	colors := render.ShadedColors(g.Cells(), g.Shade(), g.Palette())

	pw, ph := cols, (rows-1)*2
	sample := func(x, y int) int {
		col := x * size.W / pw
		row := y * size.H / ph
		return row*size.W + col
	}

	var sb strings.Builder
	sb.Grow(cols * rows * 40)
	for ty := 0; ty < rows-1; ty++ {
		sb.WriteString(moveTo(ty+1, 1))
		for x := 0; x < pw; x++ {
			writeHalfBlock(&sb, colors[sample(x, ty*2)], colors[sample(x, ty*2+1)])
		}
	}
	sb.WriteString(reset)
	sb.WriteString(moveTo(rows, 1))
	status := g.Status()
	if len(status) > cols {
		status = status[:cols]
	}
	sb.WriteString(status)
	sb.WriteString(clearLine())
	return sb.String()
}
