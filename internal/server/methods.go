package server

// Method describes one RPC method for the describe response.
type Method struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Params      map[string]string `json:"params,omitempty"`
}

// MethodDescriptors returns the service's method catalog. Hosts use it to
// validate their bindings at startup.
func MethodDescriptors() []Method {
	return []Method{
		{
			Name:        "session/open",
			Description: "Open an image session. Each session owns one source image and its intensity grid.",
		},
		{
			Name:        "session/close",
			Description: "Close a session and release its image state.",
			Params: map[string]string{
				"session_id": "Session identifier from session/open",
			},
		},
		{
			Name:        "session/reset",
			Description: "Drop a session's cached source image and grid. The next image/process call decodes fresh bytes.",
			Params: map[string]string{
				"session_id": "Session identifier from session/open",
			},
		},
		{
			Name:        "pins/generate",
			Description: "Generate evenly spaced anchor pins along a boundary shape. Stateless.",
			Params: map[string]string{
				"shape":     "Boundary shape: circle or square",
				"pin_count": "Number of pins, at least 1",
				"width":     "Canvas width in pixels",
				"height":    "Canvas height in pixels",
			},
		},
		{
			Name:        "image/process",
			Description: "Decode (first call only), crop the pan/zoom window, resample to canvas resolution, and store the luma grid.",
			Params: map[string]string{
				"session_id":    "Session identifier from session/open",
				"image_base64":  "Base64 image bytes; ignored once the session has a cached source",
				"canvas_width":  "Grid width in pixels",
				"canvas_height": "Grid height in pixels",
				"zoom":          "Canvas pixels per source pixel, default 1.0",
				"offset_x":      "Horizontal pan in canvas pixels",
				"offset_y":      "Vertical pan in canvas pixels",
				"brightness":    "Optional brightness adjustment, -1 to 1",
				"contrast":      "Optional contrast adjustment, -1 to 1",
				"blur":          "Optional Gaussian blur radius in pixels",
				"invert":        "Optional channel inversion",
			},
		},
		{
			Name:        "art/plan",
			Description: "Run the greedy thread planner against the session grid. Mutates the grid (erasure).",
			Params: map[string]string{
				"session_id": "Session identifier from session/open",
				"pins":       "Pin layout from pins/generate",
				"line_count": "Number of threads to plan",
			},
		},
		{
			Name:        "art/preview",
			Description: "Render a planned path as a base64 PNG with translucent thread strokes.",
			Params: map[string]string{
				"pins":       "Pin layout the path indexes into",
				"path":       "Thread path from art/plan",
				"width":      "Canvas width in pixels",
				"height":     "Canvas height in pixels",
				"background": "Optional background hex color, default #FFFFFF",
				"thread":     "Optional thread hex color, default #000000",
				"opacity":    "Optional per-thread alpha in (0,1], default 0.25",
				"scale":      "Optional resolution multiplier, default 1",
			},
		},
	}
}
