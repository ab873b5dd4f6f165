package server

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/strandworks/stringart/internal/arterr"
	"github.com/strandworks/stringart/internal/canvas"
	"github.com/strandworks/stringart/internal/pins"
	"github.com/strandworks/stringart/internal/planner"
	"github.com/strandworks/stringart/internal/render"
)

// === Session Handlers ===

// SessionResult identifies a session in session/* responses.
type SessionResult struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleSessionOpen(json.RawMessage) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("s%d", s.nextID)
	s.sessions[id] = canvas.NewSession()
	return &SessionResult{SessionID: id}, nil
}

type sessionArgs struct {
	SessionID string `json:"session_id"`
}

func (s *Server) handleSessionClose(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams(err)
	}

	if _, err := s.session(a.SessionID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.sessions, a.SessionID)
	s.mu.Unlock()

	return map[string]interface{}{"closed": true}, nil
}

func (s *Server) handleSessionReset(args json.RawMessage) (interface{}, error) {
	var a sessionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams(err)
	}

	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}
	sess.Reset()

	return map[string]interface{}{"reset": true}, nil
}

// === Pin Layout Handler ===

type pinsGenerateArgs struct {
	Shape    string  `json:"shape"`
	PinCount int     `json:"pin_count"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

// PinsResult contains a generated pin layout.
type PinsResult struct {
	Pins  []pins.Pin `json:"pins"`
	Count int        `json:"count"`
}

func (s *Server) handlePinsGenerate(args json.RawMessage) (interface{}, error) {
	var a pinsGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams(err)
	}

	shape, err := pins.ParseShape(a.Shape)
	if err != nil {
		return nil, err
	}

	pp, err := pins.Generate(shape, a.PinCount, a.Width, a.Height)
	if err != nil {
		return nil, err
	}

	return &PinsResult{Pins: pp, Count: len(pp)}, nil
}

// === Image Processing Handler ===

type imageProcessArgs struct {
	SessionID    string  `json:"session_id"`
	ImageBase64  string  `json:"image_base64"`
	CanvasWidth  int     `json:"canvas_width"`
	CanvasHeight int     `json:"canvas_height"`
	Zoom         float64 `json:"zoom"`
	OffsetX      float64 `json:"offset_x"`
	OffsetY      float64 `json:"offset_y"`
	Brightness   float64 `json:"brightness"`
	Contrast     float64 `json:"contrast"`
	Blur         float64 `json:"blur"`
	Invert       bool    `json:"invert"`
}

// ProcessResult reports the dimensions of the freshly produced grid.
type ProcessResult struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageProcess(args json.RawMessage) (interface{}, error) {
	var a imageProcessArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams(err)
	}
	if a.Zoom == 0 {
		a.Zoom = 1.0
	}

	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}

	// The payload is optional once the session has a cached source.
	var raw []byte
	if a.ImageBase64 != "" {
		raw, err = base64.StdEncoding.DecodeString(a.ImageBase64)
		if err != nil {
			return nil, arterr.Wrap(arterr.InvalidArgument, err, "image_base64 is not valid base64")
		}
	}

	opts := canvas.Options{
		Brightness: a.Brightness,
		Contrast:   a.Contrast,
		Blur:       a.Blur,
		Invert:     a.Invert,
	}
	if err := sess.Process(raw, a.CanvasWidth, a.CanvasHeight, a.Zoom, a.OffsetX, a.OffsetY, opts); err != nil {
		return nil, err
	}

	g := sess.Grid()
	return &ProcessResult{Width: g.Width, Height: g.Height}, nil
}

// === Planning Handlers ===

type artPlanArgs struct {
	SessionID string     `json:"session_id"`
	Pins      []pins.Pin `json:"pins"`
	LineCount int        `json:"line_count"`
}

// PlanResult contains the ordered thread path.
type PlanResult struct {
	Path      []int `json:"path"`
	LineCount int   `json:"line_count"`
}

func (s *Server) handleArtPlan(args json.RawMessage) (interface{}, error) {
	var a artPlanArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams(err)
	}

	sess, err := s.session(a.SessionID)
	if err != nil {
		return nil, err
	}

	path, err := planner.Plan(sess.Grid(), a.Pins, a.LineCount)
	if err != nil {
		return nil, err
	}

	return &PlanResult{Path: path, LineCount: len(path)}, nil
}

type artPreviewArgs struct {
	Pins       []pins.Pin `json:"pins"`
	Path       []int      `json:"path"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Background string     `json:"background"`
	Thread     string     `json:"thread"`
	Opacity    float64    `json:"opacity"`
	Scale      float64    `json:"scale"`
}

func (s *Server) handleArtPreview(args json.RawMessage) (interface{}, error) {
	var a artPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, invalidParams(err)
	}

	return render.Preview(a.Pins, a.Path, a.Width, a.Height, render.Options{
		Background: a.Background,
		Thread:     a.Thread,
		Opacity:    a.Opacity,
		Scale:      a.Scale,
	})
}

// invalidParams tags a JSON decoding failure so it reaches the host with
// the same kind field as other argument errors.
func invalidParams(err error) error {
	return arterr.Wrap(arterr.InvalidArgument, err, "invalid params")
}
