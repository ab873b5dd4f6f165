package canvas

// Grid is a single-channel intensity raster at canvas resolution.
//
// Values follow luma convention: 0 is black, 255 is white. The planner
// reads intensities while scoring and brightens cells in place after each
// chosen thread ("erasure"), so a Grid accumulates mutations across
// planning calls until the next Process replaces it wholesale.
type Grid struct {
	Width  int     // columns
	Height int     // rows
	Pix    []uint8 // row-major, len = Width*Height
}

// NewGrid allocates an all-black grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// In reports whether (x, y) is a valid cell.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the intensity at (x, y). The cell must be in bounds.
func (g *Grid) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set stores an intensity at (x, y). The cell must be in bounds.
func (g *Grid) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// Brighten increases the intensity at (x, y) by amount, saturating at 255.
// The cell must be in bounds and amount must be non-negative.
func (g *Grid) Brighten(x, y, amount int) {
	i := y*g.Width + x
	v := int(g.Pix[i]) + amount
	if v > 255 {
		v = 255
	}
	g.Pix[i] = uint8(v)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Width:  g.Width,
		Height: g.Height,
		Pix:    make([]uint8, len(g.Pix)),
	}
	copy(out.Pix, g.Pix)
	return out
}
