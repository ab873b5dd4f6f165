// Package planner selects the ordered thread path that approximates an
// intensity grid with straight lines between pins.
//
// The algorithm is a deterministic greedy search. From the current pin it
// scores every other pin by summing darkness (255 - intensity) over the
// cells the connecting segment crosses, picks the darkest segment, then
// brightens those cells so the same edge cannot dominate every following
// iteration. The grid mutations persist: planning twice on the same grid
// yields two different paths, by design of the original tool.
package planner

import (
	"math"

	"github.com/strandworks/stringart/internal/arterr"
	"github.com/strandworks/stringart/internal/canvas"
	"github.com/strandworks/stringart/internal/pins"
)

// eraseAmount is how much each cell under a chosen thread is brightened.
// The value is empirically tuned; changing it changes every output plan.
const eraseAmount = 150

// Plan computes a thread path of lineCount pin indices over the given
// intensity grid, mutating the grid in place as threads are chosen.
//
// The path implicitly starts at pin 0; element i is the destination pin of
// thread i+1 and the origin of thread i+2. No element ever equals the pin
// the thread departs from. A lineCount of zero returns an empty path and
// leaves the grid untouched.
func Plan(g *canvas.Grid, pp []pins.Pin, lineCount int) ([]int, error) {
	if g == nil || len(g.Pix) == 0 {
		return nil, arterr.New(arterr.PreconditionError, "no intensity grid: process an image first")
	}
	if len(pp) == 0 {
		return nil, arterr.New(arterr.PreconditionError, "pin set is empty")
	}
	if lineCount < 0 {
		return nil, arterr.New(arterr.InvalidArgument, "line count must be non-negative, got %d", lineCount)
	}
	if lineCount > 0 && len(pp) < 2 {
		return nil, arterr.New(arterr.PreconditionError, "need at least 2 pins to route threads, got %d", len(pp))
	}

	path := make([]int, 0, lineCount)
	current := 0

	for n := 0; n < lineCount; n++ {
		cx, cy := pinCell(pp[current])

		best := -1
		bestScore := -1
		for j := range pp {
			if j == current {
				continue
			}
			jx, jy := pinCell(pp[j])

			score := 0
			walkGrid(cx, cy, jx, jy, func(x, y int) {
				if g.In(x, y) {
					score += 255 - int(g.At(x, y))
				}
			})

			// Strictly greater keeps the lowest index on ties.
			if score > bestScore {
				bestScore = score
				best = j
			}
		}

		bx, by := pinCell(pp[best])
		walkGrid(cx, cy, bx, by, func(x, y int) {
			if g.In(x, y) {
				g.Brighten(x, y, eraseAmount)
			}
		})

		path = append(path, best)
		current = best
	}

	return path, nil
}

// pinCell maps a pin's float coordinates to the grid cell used for
// walking, rounding half away from zero.
func pinCell(p pins.Pin) (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}
