package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/strandworks/stringart/internal/arterr"
	"github.com/strandworks/stringart/internal/canvas"
)

// Server handles JSON-RPC communication and owns the open sessions.
type Server struct {
	mu       sync.Mutex
	sessions map[string]*canvas.Session
	nextID   int
}

// Request represents an incoming JSON-RPC request
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Response represents an outgoing JSON-RPC response
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC error
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// New creates a server with no open sessions.
func New() *Server {
	return &Server{
		sessions: make(map[string]*canvas.Session),
	}
}

// Run starts the server, reading requests from stdin and writing responses
// to stdout until stdin closes.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(os.Stdin)
	// Large buffer: image/process carries whole images as base64
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	encoder := json.NewEncoder(os.Stdout)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes a request to the matching method handler.
func (s *Server) handleRequest(req *Request) *Response {
	switch req.Method {
	case "initialize":
		return s.result(req.ID, map[string]interface{}{
			"name":    "stringart",
			"version": "1.0",
		})
	case "ping":
		return s.result(req.ID, map[string]interface{}{})
	case "describe":
		return s.result(req.ID, MethodDescriptors())
	}

	result, err := s.executeMethod(req.Method, req.Params)
	if err != nil {
		return s.domainError(req.ID, err)
	}
	return s.result(req.ID, result)
}

// executeMethod dispatches to the handler for a session or pipeline method.
func (s *Server) executeMethod(method string, params json.RawMessage) (interface{}, error) {
	switch method {
	case "session/open":
		return s.handleSessionOpen(params)
	case "session/close":
		return s.handleSessionClose(params)
	case "session/reset":
		return s.handleSessionReset(params)
	case "pins/generate":
		return s.handlePinsGenerate(params)
	case "image/process":
		return s.handleImageProcess(params)
	case "art/plan":
		return s.handleArtPlan(params)
	case "art/preview":
		return s.handleArtPreview(params)
	default:
		return nil, errMethodNotFound
	}
}

// errMethodNotFound is a sentinel mapped to JSON-RPC code -32601.
var errMethodNotFound = fmt.Errorf("method not found")

func (s *Server) result(id, result interface{}) *Response {
	return &Response{JSONRPC: "2.0", ID: id, Result: result}
}

// domainError maps pipeline failures onto JSON-RPC errors, surfacing the
// arterr kind in the data field.
func (s *Server) domainError(id interface{}, err error) *Response {
	if err == errMethodNotFound {
		return &Response{
			JSONRPC: "2.0",
			ID:      id,
			Error:   &RPCError{Code: -32601, Message: "Method not found"},
		}
	}

	rpcErr := &RPCError{
		Code:    -32000,
		Message: err.Error(),
	}
	if kind := arterr.KindOf(err); kind != 0 {
		rpcErr.Data = kind.String()
	}
	return &Response{JSONRPC: "2.0", ID: id, Error: rpcErr}
}

// session looks up an open session by id.
func (s *Server) session(id string) (*canvas.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, arterr.New(arterr.PreconditionError, "unknown session %q: call session/open first", id)
	}
	return sess, nil
}
