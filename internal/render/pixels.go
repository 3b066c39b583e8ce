package render

import "image/color"

// PaletteProvider is implemented by sims whose Cells are palette indices.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// ShadeProvider is implemented by sims that expose a per-cell light factor.
type ShadeProvider interface {
	Shade() []float32
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	FillShadedRGBA(buf, cells, nil, palette)
}

// FillShadedRGBA is FillPaletteRGBA with each colour scaled by the matching
// shade factor in [0, 1]. A nil shade slice leaves colours untouched.
func FillShadedRGBA(buf []byte, cells []uint8, shade []float32, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		if i < len(shade) {
			col = scale(col, shade[i])
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// ShadedColors resolves cells to colours, the same way FillShadedRGBA does,
// for consumers that don't want a flat byte buffer.
func ShadedColors(cells []uint8, shade []float32, palette []color.RGBA) []color.RGBA {
	buf := make([]byte, len(cells)*4)
	FillShadedRGBA(buf, cells, shade, palette)
	out := make([]color.RGBA, len(cells))
	for i := range out {
		out[i] = color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
	}
	return out
}

func scale(c color.RGBA, f float32) color.RGBA {
	if f >= 1 {
		return c
	}
	if f < 0 {
		f = 0
	}
	return color.RGBA{
		R: uint8(float32(c.R)*f + 0.5),
		G: uint8(float32(c.G)*f + 0.5),
		B: uint8(float32(c.B)*f + 0.5),
		A: c.A,
	}
}
