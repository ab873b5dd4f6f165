// Package pins generates anchor-point layouts along a frame boundary.
//
// A layout is an ordered sequence of points on a closed curve (a circle
// inscribed in the canvas, or the canvas rectangle itself) with even
// spacing measured along the curve. Ordering matters: planning always
// starts from pin index 0, and the returned index sequence refers back to
// this ordering.
//
// All coordinates use the canvas coordinate system: (0,0) at the top-left,
// X increasing rightward, Y increasing downward. Generated pins always lie
// within [0,width] x [0,height].
package pins

import (
	"math"

	"github.com/strandworks/stringart/internal/arterr"
)

// Pin is a fixed anchor point on the frame boundary.
type Pin struct {
	X float64 `json:"x"` // horizontal canvas coordinate
	Y float64 `json:"y"` // vertical canvas coordinate
}

// Shape selects the boundary curve pins are placed on.
type Shape string

const (
	// Circle places pins on the largest circle centered in the canvas.
	Circle Shape = "circle"

	// Square places pins on the canvas rectangle's perimeter.
	Square Shape = "square"
)

// ParseShape converts a wire/CLI string into a Shape.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case Circle, Square:
		return Shape(s), nil
	default:
		return "", arterr.New(arterr.InvalidArgument, "unknown shape %q (want circle or square)", s)
	}
}

// Generate produces count pins evenly spaced along the given boundary
// shape for a width x height canvas. The result is freshly allocated on
// every call and pin 0 is the planner's implicit starting anchor.
//
// Circle pin i sits at angle 2*pi*i/count from the positive X axis on the
// circle of radius min(width,height)/2 centered in the canvas. Square pin
// i sits at perimeter arc length perimeter*i/count, walking clockwise from
// the top-left corner (top edge, then right, bottom, left).
func Generate(shape Shape, count int, width, height float64) ([]Pin, error) {
	if count < 1 {
		return nil, arterr.New(arterr.InvalidArgument, "pin count must be at least 1, got %d", count)
	}
	if width <= 0 || height <= 0 {
		return nil, arterr.New(arterr.InvalidArgument, "canvas must be positive, got %gx%g", width, height)
	}

	switch shape {
	case Circle:
		return circleLayout(count, width, height), nil
	case Square:
		return squareLayout(count, width, height), nil
	default:
		return nil, arterr.New(arterr.InvalidArgument, "unknown shape %q (want circle or square)", string(shape))
	}
}

func circleLayout(count int, width, height float64) []Pin {
	cx := width / 2
	cy := height / 2
	r := math.Min(width, height) / 2

	out := make([]Pin, count)
	for i := range out {
		theta := 2 * math.Pi * float64(i) / float64(count)
		out[i] = Pin{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		}
	}
	return out
}

func squareLayout(count int, width, height float64) []Pin {
	perimeter := 2 * (width + height)

	out := make([]Pin, count)
	for i := range out {
		d := perimeter * float64(i) / float64(count)
		out[i] = perimeterPoint(d, width, height)
	}
	return out
}

// perimeterPoint maps a clockwise arc length from the top-left corner to a
// point on the rectangle boundary.
func perimeterPoint(d, width, height float64) Pin {
	switch {
	case d < width: // top edge, left to right
		return Pin{X: d, Y: 0}
	case d < width+height: // right edge, top to bottom
		return Pin{X: width, Y: d - width}
	case d < 2*width+height: // bottom edge, right to left
		return Pin{X: width - (d - width - height), Y: height}
	default: // left edge, bottom to top
		return Pin{X: 0, Y: height - (d - 2*width - height)}
	}
}
