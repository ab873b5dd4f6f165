// Package server exposes the string-art pipeline to a host application as
// a JSON-RPC 2.0 service over stdin/stdout.
//
// The host (typically the process embedding the planner UI) writes one
// request per line on stdin and reads one response per line from stdout;
// diagnostics go to stderr so the protocol stream stays clean.
//
// # Sessions
//
// Image state is explicit. A host opens a session per source image with
// session/open, feeds it bytes with image/process, and plans against it
// with art/plan. Sessions never share state, so several images can be open
// at once without any global locking. session/reset drops a session's
// cached source so the next image/process call decodes fresh bytes.
//
// # Methods
//
//   - initialize: handshake, returns server name and version
//   - ping: health check
//   - describe: list available methods
//   - session/open, session/close, session/reset
//   - pins/generate: boundary pin layout (stateless)
//   - image/process: decode/crop/resample/luma into the session grid
//   - art/plan: greedy thread path over the session grid
//   - art/preview: render a path to a base64 PNG
//
// # Errors
//
// Unknown methods return code -32601. Domain failures, including
// malformed parameters, return code -32000 with the error kind
// ("invalid_argument", "decode_error", "geometry_error",
// "precondition_error") in the data field so hosts can branch without
// parsing messages.
package server
