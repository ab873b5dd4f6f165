package pins

import (
	"math"
	"testing"

	"github.com/strandworks/stringart/internal/arterr"
)

const epsilon = 1e-9

func TestGenerate_CircleRadiusAndSpacing(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		width, height float64
	}{
		{"single pin", 1, 100, 100},
		{"four pins square canvas", 4, 200, 200},
		{"many pins", 120, 640, 480},
		{"tall canvas", 7, 100, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(Circle, tt.count, tt.width, tt.height)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if len(got) != tt.count {
				t.Fatalf("pin count: got %d, want %d", len(got), tt.count)
			}

			cx := tt.width / 2
			cy := tt.height / 2
			r := math.Min(tt.width, tt.height) / 2

			for i, p := range got {
				dist := math.Hypot(p.X-cx, p.Y-cy)
				if math.Abs(dist-r) > 1e-6 {
					t.Errorf("pin %d: distance from center got %g, want %g", i, dist, r)
				}

				wantTheta := 2 * math.Pi * float64(i) / float64(tt.count)
				gotTheta := math.Atan2(p.Y-cy, p.X-cx)
				if gotTheta < 0 {
					gotTheta += 2 * math.Pi
				}
				// Angle wraps at 2*pi; compare modulo a full turn.
				diff := math.Mod(math.Abs(gotTheta-wantTheta), 2*math.Pi)
				if diff > 1e-6 && math.Abs(diff-2*math.Pi) > 1e-6 {
					t.Errorf("pin %d: angle got %g, want %g", i, gotTheta, wantTheta)
				}
			}
		})
	}
}

func TestGenerate_CircleFirstPin(t *testing.T) {
	got, err := Generate(Circle, 8, 100, 100)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Pin 0 is at angle zero: rightmost point of the circle.
	if math.Abs(got[0].X-100) > epsilon || math.Abs(got[0].Y-50) > epsilon {
		t.Errorf("pin 0: got (%g,%g), want (100,50)", got[0].X, got[0].Y)
	}
}

func TestGenerate_SquareCornersClockwise(t *testing.T) {
	// 4 pins on a 100x50 canvas: perimeter 300, spacing 75.
	got, err := Generate(Square, 4, 100, 50)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	want := []Pin{
		{X: 0, Y: 0},    // top-left corner, arc length 0
		{X: 75, Y: 0},   // top edge
		{X: 100, Y: 50}, // arc 150 = width+height: bottom-right corner
		{X: 25, Y: 50},  // bottom edge, walking right to left
	}

	for i := range want {
		if math.Abs(got[i].X-want[i].X) > epsilon || math.Abs(got[i].Y-want[i].Y) > epsilon {
			t.Errorf("pin %d: got (%g,%g), want (%g,%g)", i, got[i].X, got[i].Y, want[i].X, want[i].Y)
		}
	}
}

func TestGenerate_SquarePerimeterSpacing(t *testing.T) {
	const count = 12
	width, height := 80.0, 40.0
	perimeter := 2 * (width + height)

	got, err := Generate(Square, count, width, height)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for i, p := range got {
		if p.X < -epsilon || p.X > width+epsilon || p.Y < -epsilon || p.Y > height+epsilon {
			t.Errorf("pin %d: (%g,%g) outside canvas bounds", i, p.X, p.Y)
		}

		// Recover the arc length of each pin and check even spacing.
		d := arcLength(p, width, height)
		want := perimeter * float64(i) / float64(count)
		if math.Abs(d-want) > 1e-6 {
			t.Errorf("pin %d: arc length got %g, want %g", i, d, want)
		}
	}
}

// arcLength inverts perimeterPoint for boundary points.
func arcLength(p Pin, width, height float64) float64 {
	switch {
	case p.Y == 0:
		return p.X
	case p.X == width:
		return width + p.Y
	case p.Y == height:
		return width + height + (width - p.X)
	default:
		return 2*width + height + (height - p.Y)
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	for _, shape := range []Shape{Circle, Square} {
		_, err := Generate(shape, 0, 100, 100)
		if err == nil {
			t.Fatalf("Generate(%s, 0) should fail", shape)
		}
		if !arterr.Is(err, arterr.InvalidArgument) {
			t.Errorf("Generate(%s, 0): kind got %v, want InvalidArgument", shape, arterr.KindOf(err))
		}
	}
}

func TestGenerate_NegativeCount(t *testing.T) {
	_, err := Generate(Circle, -3, 100, 100)
	if !arterr.Is(err, arterr.InvalidArgument) {
		t.Errorf("negative count: kind got %v, want InvalidArgument", arterr.KindOf(err))
	}
}

func TestGenerate_DegenerateCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"zero width", 0, 100},
		{"zero height", 100, 0},
		{"negative width", -10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(Circle, 4, tt.width, tt.height)
			if !arterr.Is(err, arterr.InvalidArgument) {
				t.Errorf("kind: got %v, want InvalidArgument", arterr.KindOf(err))
			}
		})
	}
}

func TestGenerate_UnknownShape(t *testing.T) {
	_, err := Generate(Shape("hexagon"), 4, 100, 100)
	if !arterr.Is(err, arterr.InvalidArgument) {
		t.Errorf("unknown shape: kind got %v, want InvalidArgument", arterr.KindOf(err))
	}
}

func TestGenerate_FreshSlices(t *testing.T) {
	a, err := Generate(Circle, 4, 100, 100)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := Generate(Circle, 4, 100, 100)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	a[0].X = -999
	if b[0].X == -999 {
		t.Error("layouts share backing storage; each call must allocate fresh")
	}
}

func TestParseShape(t *testing.T) {
	tests := []struct {
		in      string
		want    Shape
		wantErr bool
	}{
		{"circle", Circle, false},
		{"square", Square, false},
		{"Circle", "", true},
		{"", "", true},
		{"triangle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShape(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseShape(%q) should fail", tt.in)
				}
				if !arterr.Is(err, arterr.InvalidArgument) {
					t.Errorf("kind: got %v, want InvalidArgument", arterr.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShape(%q) failed: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseShape(%q): got %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
