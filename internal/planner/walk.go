package planner

// walkGrid enumerates every cell of the 4-connected walk from (x0, y0) to
// (x1, y1), calling visit for each. Each step moves exactly one unit along
// X or Y, choosing the axis whose next cell-center crossing comes first
// along the ideal segment, so the walk covers every cell the segment
// passes through. A walk over |dx| = nx, |dy| = ny visits exactly
// nx + ny + 1 cells, endpoints included, with no duplicates.
//
// Axis-aligned segments fall out of the comparison naturally: a zero
// extent makes its crossing ratio +Inf, so the other axis always wins.
func walkGrid(x0, y0, x1, y1 int, visit func(x, y int)) {
	dx := x1 - x0
	dy := y1 - y0

	sx, sy := 1, 1
	if dx < 0 {
		sx = -1
		dx = -dx
	}
	if dy < 0 {
		sy = -1
		dy = -dy
	}

	nx := float64(dx)
	ny := float64(dy)

	x, y := x0, y0
	var ix, iy float64
	for {
		visit(x, y)
		if ix >= nx && iy >= ny {
			return
		}
		if (0.5+ix)/nx < (0.5+iy)/ny {
			x += sx
			ix++
		} else {
			y += sy
			iy++
		}
	}
}
