package server

import (
	"encoding/json"
	"testing"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
	if s.sessions == nil {
		t.Fatal("New() did not initialize the session map")
	}
}

func TestRequest_Unmarshal(t *testing.T) {
	tests := []struct {
		name       string
		json       string
		wantID     interface{}
		wantMethod string
	}{
		{
			"string id",
			`{"jsonrpc":"2.0","id":"test-1","method":"pins/generate"}`,
			"test-1",
			"pins/generate",
		},
		{
			"number id",
			`{"jsonrpc":"2.0","id":42,"method":"ping"}`,
			float64(42), // JSON numbers decode as float64
			"ping",
		},
		{
			"null id",
			`{"jsonrpc":"2.0","id":null,"method":"initialize"}`,
			nil,
			"initialize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req Request
			if err := json.Unmarshal([]byte(tt.json), &req); err != nil {
				t.Fatalf("Failed to unmarshal: %v", err)
			}

			if req.ID != tt.wantID {
				t.Errorf("ID: got %v (%T), want %v (%T)", req.ID, req.ID, tt.wantID, tt.wantID)
			}
			if req.Method != tt.wantMethod {
				t.Errorf("Method: got %s, want %s", req.Method, tt.wantMethod)
			}
		})
	}
}

func TestHandleRequest_Ping(t *testing.T) {
	s := New()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "ping"})
	if resp.Error != nil {
		t.Fatalf("ping failed: %v", resp.Error)
	}
}

func TestHandleRequest_Initialize(t *testing.T) {
	s := New()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "initialize"})
	if resp.Error != nil {
		t.Fatalf("initialize failed: %v", resp.Error)
	}

	info, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("initialize result type: %T", resp.Result)
	}
	if info["name"] != "stringart" {
		t.Errorf("server name: got %v, want stringart", info["name"])
	}
}

func TestHandleRequest_MethodNotFound(t *testing.T) {
	s := New()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "no/such"})
	if resp.Error == nil {
		t.Fatal("unknown method should fail")
	}
	if resp.Error.Code != -32601 {
		t.Errorf("error code: got %d, want -32601", resp.Error.Code)
	}
}

func TestHandleRequest_Describe(t *testing.T) {
	s := New()

	resp := s.handleRequest(&Request{JSONRPC: "2.0", ID: 1, Method: "describe"})
	if resp.Error != nil {
		t.Fatalf("describe failed: %v", resp.Error)
	}

	methods, ok := resp.Result.([]Method)
	if !ok {
		t.Fatalf("describe result type: %T", resp.Result)
	}

	want := map[string]bool{
		"session/open": false, "session/close": false, "session/reset": false,
		"pins/generate": false, "image/process": false,
		"art/plan": false, "art/preview": false,
	}
	for _, m := range methods {
		if _, ok := want[m.Name]; !ok {
			t.Errorf("describe lists unknown method %s", m.Name)
		}
		want[m.Name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("describe missing method %s", name)
		}
	}
}

func TestResponse_Marshal(t *testing.T) {
	resp := Response{
		JSONRPC: "2.0",
		ID:      1,
		Result:  map[string]interface{}{"status": "ok"},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal roundtrip: %v", err)
	}
	if decoded["jsonrpc"] != "2.0" {
		t.Errorf("jsonrpc: got %v, want 2.0", decoded["jsonrpc"])
	}
	if _, hasError := decoded["error"]; hasError {
		t.Error("success response should omit the error field")
	}
}
