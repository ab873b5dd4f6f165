// Package render draws a planned thread path into a PNG preview.
//
// The preview approximates how the physical piece reads: each thread is a
// thin translucent stroke, so crossings darken just as overlapping strings
// do. This is an offline artifact for inspection and sharing; live canvas
// rendering stays on the host side.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"

	"github.com/strandworks/stringart/internal/arterr"
	"github.com/strandworks/stringart/internal/pins"
)

// Options control preview appearance. Zero-valued fields take defaults.
type Options struct {
	// Background is the canvas fill as a hex color. Default "#FFFFFF".
	Background string `json:"background,omitempty"`

	// Thread is the stroke color as a hex color. Default "#000000".
	Thread string `json:"thread,omitempty"`

	// Opacity is per-thread stroke alpha in (0, 1]. Default 0.25.
	Opacity float64 `json:"opacity,omitempty"`

	// Scale multiplies the output resolution. Default 1.
	Scale float64 `json:"scale,omitempty"`
}

// PreviewResult contains the rendered preview image.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview renders the thread path over a width x height canvas and returns
// it as a base64 PNG. The path starts implicitly at pin 0; every element
// is the destination of the next thread.
func Preview(pp []pins.Pin, path []int, width, height int, opts Options) (*PreviewResult, error) {
	if width < 1 || height < 1 {
		return nil, arterr.New(arterr.InvalidArgument, "canvas must be at least 1x1, got %dx%d", width, height)
	}
	if len(pp) == 0 {
		return nil, arterr.New(arterr.InvalidArgument, "pin set is empty")
	}
	for i, j := range path {
		if j < 0 || j >= len(pp) {
			return nil, arterr.New(arterr.InvalidArgument, "path element %d: pin index %d out of range [0,%d)", i, j, len(pp))
		}
	}

	if opts.Background == "" {
		opts.Background = "#FFFFFF"
	}
	if opts.Thread == "" {
		opts.Thread = "#000000"
	}
	if opts.Opacity == 0 {
		opts.Opacity = 0.25
	}
	if opts.Scale == 0 {
		opts.Scale = 1
	}
	if opts.Opacity < 0 || opts.Opacity > 1 {
		return nil, arterr.New(arterr.InvalidArgument, "opacity must be in (0,1], got %g", opts.Opacity)
	}
	if opts.Scale < 0 || math.IsInf(opts.Scale, 0) || math.IsNaN(opts.Scale) {
		return nil, arterr.New(arterr.InvalidArgument, "scale must be a positive finite number, got %g", opts.Scale)
	}

	bg, err := colorful.Hex(opts.Background)
	if err != nil {
		return nil, arterr.Wrap(arterr.InvalidArgument, err, "parse background color %q", opts.Background)
	}
	thread, err := colorful.Hex(opts.Thread)
	if err != nil {
		return nil, arterr.Wrap(arterr.InvalidArgument, err, "parse thread color %q", opts.Thread)
	}

	outW := int(math.Round(float64(width) * opts.Scale))
	outH := int(math.Round(float64(height) * opts.Scale))
	if outW < 1 || outH < 1 {
		return nil, arterr.New(arterr.InvalidArgument, "scale %g collapses the %dx%d canvas", opts.Scale, width, height)
	}

	dst := image.NewRGBA(image.Rect(0, 0, outW, outH))
	br, bgg, bb := bg.RGB255()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.NRGBA{br, bgg, bb, 255}), image.Point{}, draw.Src)

	tr, tg, tb := thread.RGB255()
	src := image.NewUniform(color.NRGBA{tr, tg, tb, uint8(math.Round(opts.Opacity * 255))})

	r := vector.NewRasterizer(outW, outH)
	current := 0
	for _, next := range path {
		strokeSegment(r, dst, src,
			pp[current].X*opts.Scale, pp[current].Y*opts.Scale,
			pp[next].X*opts.Scale, pp[next].Y*opts.Scale,
			opts.Scale)
		current = next
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode preview: %w", err)
	}

	return &PreviewResult{
		Width:       outW,
		Height:      outH,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// strokeSegment rasterizes one thread as an antialiased quad of one canvas
// pixel thickness. Zero-length segments draw nothing.
func strokeSegment(r *vector.Rasterizer, dst *image.RGBA, src image.Image, x0, y0, x1, y1, scale float64) {
	dx := x1 - x0
	dy := y1 - y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Perpendicular half-thickness offset.
	half := scale / 2
	ox := -dy / length * half
	oy := dx / length * half

	r.Reset(r.Size().X, r.Size().Y)
	r.DrawOp = draw.Over
	r.MoveTo(float32(x0+ox), float32(y0+oy))
	r.LineTo(float32(x1+ox), float32(y1+oy))
	r.LineTo(float32(x1-ox), float32(y1-oy))
	r.LineTo(float32(x0-ox), float32(y0-oy))
	r.ClosePath()
	r.Draw(dst, dst.Bounds(), src, image.Point{})
}
