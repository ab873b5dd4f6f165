// Package canvas turns raw image bytes into the intensity grid the
// string-art planner consumes.
//
// A Session owns the state of one open image: the decoded source raster
// (memoized after the first successful decode) and the current intensity
// grid (replaced wholesale on every successful Process call). Sessions are
// independent of one another; a host that wants to work on several images
// concurrently opens one Session per image and serializes calls within
// each. There is no package-level shared state.
//
// # Processing pipeline
//
// Process crops a pan/zoom-selected window out of the source, resamples it
// to canvas resolution with a triangle filter, applies optional tone
// adjustments, and converts the result to 8-bit BT.601 luma. Failures are
// atomic: a Session whose Process call fails still holds whatever grid the
// previous successful call produced.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with the origin at the top-left corner,
// X increasing rightward and Y increasing downward. Zoom scales canvas
// pixels per source pixel; offsets translate the source under the canvas
// in canvas pixels, so the source point rendered at canvas (0,0) is
// (-offsetX/zoom, -offsetY/zoom).
package canvas
