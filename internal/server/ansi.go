package server

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	esc   = "\x1b"
	csi   = esc + "["
	reset = csi + "0m"

	upperHalf = "▀"
)

func moveTo(row, col int) string { return fmt.Sprintf("%s%d;%dH", csi, row, col) }

func clearScreen() string      { return csi + "2J" }
func clearLine() string        { return csi + "K" }
func hideCursor() string       { return csi + "?25l" }
func showCursor() string       { return csi + "?25h" }
func enableAltScreen() string  { return csi + "?1049h" }
func disableAltScreen() string { return csi + "?1049l" }

// writeHalfBlock writes one terminal cell showing top over bottom, with a
// full SGR so no colour state leaks into the next cell.
func writeHalfBlock(sb *strings.Builder, top, bottom color.RGBA) {
	sb.WriteString("\x1b[0;38;2;")
	writeRGB(sb, top)
	sb.WriteString(";48;2;")
	writeRGB(sb, bottom)
	sb.WriteByte('m')
	sb.WriteString(upperHalf)
}

func writeRGB(sb *strings.Builder, c color.RGBA) {
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
}
