package canvas

import (
	"bytes"
	"image"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/strandworks/stringart/internal/arterr"
)

// Session holds the mutable image state of one open source image: the
// memoized decoded raster and the intensity grid most recently produced
// from it.
//
// A Session is not safe for concurrent use; callers that share one across
// goroutines must serialize access. Independent Sessions never interfere.
type Session struct {
	source image.Image // decoded once, reused by every Process call
	grid   *Grid       // nil until the first successful Process
}

// NewSession creates an empty session with no cached source and no grid.
func NewSession() *Session {
	return &Session{}
}

// Grid returns the current intensity grid, or nil if no Process call has
// succeeded yet. The planner mutates the returned grid in place.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Source returns the memoized decoded image, or nil before the first
// successful decode.
func (s *Session) Source() image.Image {
	return s.source
}

// Reset drops both the cached source image and the grid. The next Process
// call decodes its byte payload from scratch. This is the only way to
// switch a session to a different image.
func (s *Session) Reset() {
	s.source = nil
	s.grid = nil
}

// Options are tone adjustments applied to the resampled crop before luma
// conversion. The zero value applies nothing and reproduces the plain
// crop/resize/luma pipeline exactly.
type Options struct {
	// Brightness shifts lightness; -1 is solid black, +1 solid white, 0 off.
	Brightness float64 `json:"brightness,omitempty"`

	// Contrast adjusts contrast; -1 flattens to gray, 0 off.
	Contrast float64 `json:"contrast,omitempty"`

	// Blur is a Gaussian blur radius in pixels; 0 disables it.
	Blur float64 `json:"blur,omitempty"`

	// Invert negates every channel, for threading light-on-dark subjects.
	Invert bool `json:"invert,omitempty"`
}

// Process replaces the session grid with a canvasWidth x canvasHeight
// intensity raster sampled from the source image.
//
// On the first call the raw bytes are decoded and memoized; later calls
// ignore raw entirely and reuse the cached source (call Reset to switch
// images). The crop window is derived from the zoom factor and pan
// offsets, clamped to the source bounds, resampled with a triangle filter,
// adjusted per opts, and converted to BT.601 luma.
//
// Failures are atomic: on any error the previous grid, if one exists, is
// left untouched.
func (s *Session) Process(raw []byte, canvasWidth, canvasHeight int, zoom, offsetX, offsetY float64, opts Options) error {
	if canvasWidth < 1 || canvasHeight < 1 {
		return arterr.New(arterr.InvalidArgument, "canvas must be at least 1x1, got %dx%d", canvasWidth, canvasHeight)
	}
	if zoom <= 0 || math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return arterr.New(arterr.InvalidArgument, "zoom must be a positive finite number, got %g", zoom)
	}
	if opts.Blur < 0 {
		return arterr.New(arterr.InvalidArgument, "blur radius must be non-negative, got %g", opts.Blur)
	}

	src := s.source
	if src == nil {
		img, err := imaging.Decode(bytes.NewReader(raw))
		if err != nil {
			return arterr.Wrap(arterr.DecodeError, err, "decode image bytes")
		}
		src = img
	}

	rect, err := cropWindow(src.Bounds(), canvasWidth, canvasHeight, zoom, offsetX, offsetY)
	if err != nil {
		return err
	}

	cropped := imaging.Crop(src, rect)
	resized := imaging.Resize(cropped, canvasWidth, canvasHeight, imaging.Linear)
	adjusted := applyAdjustments(resized, opts)

	grid := NewGrid(canvasWidth, canvasHeight)
	toLuma(adjusted, grid)

	// Commit only after the whole pipeline succeeded.
	s.source = src
	s.grid = grid
	return nil
}

// cropWindow computes the source-space crop rectangle for a pan/zoom view.
//
// The window origin is the source point under canvas (0,0), clamped into
// the source; its extent is the canvas size in source pixels, floored to
// at least one pixel, with the origin re-clamped so the rectangle stays
// inside the source bounds.
func cropWindow(bounds image.Rectangle, canvasWidth, canvasHeight int, zoom, offsetX, offsetY float64) (image.Rectangle, error) {
	srcW := float64(bounds.Dx())
	srcH := float64(bounds.Dy())

	cropX := clampFloat(-offsetX/zoom, 0, srcW)
	cropY := clampFloat(-offsetY/zoom, 0, srcH)

	cropW := math.Min(float64(canvasWidth)/zoom, srcW-cropX)
	cropH := math.Min(float64(canvasHeight)/zoom, srcH-cropY)
	if cropW < 1 {
		cropW = 1
	}
	if cropH < 1 {
		cropH = 1
	}

	// Keep the (possibly widened) window inside the source.
	cropX = clampFloat(cropX, 0, srcW-cropW)
	cropY = clampFloat(cropY, 0, srcH-cropH)

	x0 := int(cropX)
	y0 := int(cropY)
	w := int(cropW)
	h := int(cropH)

	if x0+w > bounds.Dx() {
		w = bounds.Dx() - x0
	}
	if y0+h > bounds.Dy() {
		h = bounds.Dy() - y0
	}
	if w < 1 || h < 1 {
		return image.Rectangle{}, arterr.New(arterr.GeometryError,
			"crop window degenerated to %dx%d for %dx%d source (zoom %g, offset %g,%g)",
			w, h, bounds.Dx(), bounds.Dy(), zoom, offsetX, offsetY)
	}

	return image.Rect(bounds.Min.X+x0, bounds.Min.Y+y0, bounds.Min.X+x0+w, bounds.Min.Y+y0+h), nil
}

// applyAdjustments runs the requested bild filters, skipping zero-valued
// knobs so the default path stays byte-exact.
func applyAdjustments(img image.Image, opts Options) image.Image {
	out := img
	if opts.Brightness != 0 {
		out = adjust.Brightness(out, opts.Brightness)
	}
	if opts.Contrast != 0 {
		out = adjust.Contrast(out, opts.Contrast)
	}
	if opts.Blur > 0 {
		out = blur.Gaussian(out, opts.Blur)
	}
	if opts.Invert {
		out = effect.Invert(out)
	}
	return out
}

// toLuma fills grid with BT.601 luma (0.299 R + 0.587 G + 0.114 B).
func toLuma(img image.Image, grid *Grid) {
	bounds := img.Bounds()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			rf := float64(r >> 8)
			gf := float64(g >> 8)
			bf := float64(b >> 8)
			grid.Set(x, y, uint8(math.Round(0.299*rf+0.587*gf+0.114*bf)))
		}
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
