/*
Package server implements msgpack IPC for trie lookup services.

The server provides a minimal interface for prefix completion, spelling
correction and wildcard search using msgpack serialization over
stdin/stdout.

The protocol uses binary msgpack encoding. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send
structured messages via stdin and receive responses through stdout.
Each message carries an ID field, an op selector and a query string.

Completion requests use mainly this structure:

	{"id": "req_001", "p": "ame", "l": 24}

The server responds with suggestions ranked by freq:

	{"id": "req_001", "s": [{"w": "amenity", "r": 1, "f": 412}, {"w": "america", "r": 2, "f": 96}], "c": 2, "t": 145}

The op field selects the other operations:

	{"id": "req_002", "op": "correct", "p": "amre"}
	{"id": "req_003", "op": "filter", "p": "a*e"}
	{"id": "req_004", "op": "phrase", "p": "thank you"}
	{"id": "req_005", "op": "stats"}

Corrected entries carry a corrected flag so clients can render them
differently from plain completions.

Config messages adjust the server bounds without a restart and persist
them back to the TOML file:

	{"id": "cfg_001", "op": "config", "max_limit": 32}

Response structures include status information and error details when
an op fails.

# Message Types

Request is the envelope for every client message. Only the fields
relevant to the selected op need to be set.

Response carries suggestion arrays with word strings, position ranks
and frequency data, plus timing in microseconds.

StatsResponse and ConfigResponse cover the management ops.

msgpack encoding has ~30 to 50% smaller message sizes compared to JSON.
binary format enables faster parsing and generation, fewer errors and
reducing latency by ~40 to 70% in most cases.
*/
package server

// Request is the envelope for every client message.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op,omitempty"`
	Query string `msgpack:"p"`
	Limit int    `msgpack:"l,omitempty"`

	// config op only; nil fields stay unchanged
	MaxLimit     *int  `msgpack:"max_limit,omitempty"`
	MinPrefix    *int  `msgpack:"min_prefix,omitempty"`
	MaxPrefix    *int  `msgpack:"max_prefix,omitempty"`
	EnableFilter *bool `msgpack:"enable_filter,omitempty"`
}

// Suggestion - single ranked result entry
type Suggestion struct {
	Word      string `msgpack:"w"`
	Rank      uint16 `msgpack:"r"`
	Frequency int    `msgpack:"f,omitempty"`
	Corrected bool   `msgpack:"corrected,omitempty"`
}

// Response - lookup response for complete, correct, filter and phrase ops
type Response struct {
	ID          string       `msgpack:"id"`
	Suggestions []Suggestion `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// StatsResponse - index and cache counters
type StatsResponse struct {
	ID     string         `msgpack:"id"`
	Status string         `msgpack:"status"`
	Stats  map[string]int `msgpack:"stats"`
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Error  string `msgpack:"error,omitempty"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
