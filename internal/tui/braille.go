package tui

// brailleBuf is a cell grid where each cell holds a 2x4 braille dot mask.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dot bits indexed by [column][row] inside a cell
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
}

func (b *brailleBuf) microW() int { return b.w * 2 }

// hline draws a horizontal run of dots on micro row my.
func (b *brailleBuf) hline(x0, x1, my int) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		b.setPixel(x, my)
	}
}

// disc fills every micro-pixel within r of (cx, cy).
func (b *brailleBuf) disc(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				b.setPixel(cx+dx, cy+dy)
			}
		}
	}
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}
