package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/lexitrie/internal/utils"
	"github.com/bastiangx/lexitrie/pkg/config"
	"github.com/bastiangx/lexitrie/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for trie lookups over a msgpack stream.
type Server struct {
	completer    *suggest.Completer
	cfg          *config.Config
	configPath   string
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	requestCount int
}

// NewServer creates a lookup server using stdin/stdout for IPC.
func NewServer(completer *suggest.Completer, cfg *config.Config, configPath string) *Server {
	return NewServerIO(completer, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerIO creates a lookup server over arbitrary streams.
func NewServerIO(completer *suggest.Completer, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		completer:  completer,
		cfg:        cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(r),
		encoder:    msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil when the
// client closes its end of the stream.
func (s *Server) Start() error {
	log.Debug("Starting msgpack IPC server")

	for {
		var request Request
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("failed to decode request: %w", err)
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a single decoded request by op.
func (s *Server) handleRequest(request Request) {
	s.requestCount++
	if s.requestCount%100 == 0 {
		log.Debugf("Processed %d requests", s.requestCount)
	}

	switch request.Op {
	case "", "complete":
		s.handleComplete(request)
	case "correct":
		s.handleCorrect(request)
	case "filter":
		s.handleFilter(request)
	case "phrase":
		s.handlePhrase(request)
	case "stats":
		s.handleStats(request)
	case "config":
		s.handleConfig(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// sendResponse encodes the given response onto the output stream.
func (s *Server) sendResponse(response interface{}) {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}

// clampLimit applies the configured default and upper bound to a
// client-supplied limit.
func (s *Server) clampLimit(limit int) int {
	if limit < 1 {
		limit = s.cfg.Search.DefaultLimit
	}
	if limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}
	return limit
}

// checkPrefix validates a prefix query against the configured bounds.
// A false return means a response was already sent.
func (s *Server) checkPrefix(request Request) bool {
	prefix := request.Query
	if prefix == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		log.Debug("Prefix is empty in request")
		return false
	}
	if len(prefix) < s.cfg.Server.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", s.cfg.Server.MinPrefix), 400)
		return false
	}
	if len(prefix) > s.cfg.Server.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.Server.MaxPrefix), 400)
		return false
	}
	if s.cfg.Server.EnableFilter && !utils.IsValidInput(prefix) {
		// Noise input gets an empty result, not an error.
		log.Debugf("Filtered out noisy prefix: %q", prefix)
		s.sendResponse(Response{ID: request.ID, Suggestions: []Suggestion{}, Count: 0})
		return false
	}
	return true
}

// handleComplete processes a prefix completion request.
func (s *Server) handleComplete(request Request) {
	if !s.checkPrefix(request) {
		return
	}
	limit := s.clampLimit(request.Limit)

	start := time.Now()
	suggestions := s.completer.Complete(request.Query, limit)
	elapsed := time.Since(start)

	s.sendResponse(buildResponse(request.ID, suggestions, elapsed))
}

// handleCorrect processes a spelling correction request.
func (s *Server) handleCorrect(request Request) {
	if !s.checkPrefix(request) {
		return
	}
	if len(request.Query) > s.cfg.Search.MaxEditLen {
		s.sendError(request.ID, fmt.Sprintf("Word exceeds maximum correction length of %d", s.cfg.Search.MaxEditLen), 400)
		return
	}
	limit := s.clampLimit(request.Limit)

	start := time.Now()
	suggestions := s.completer.Correct(request.Query, limit)
	elapsed := time.Since(start)

	s.sendResponse(buildResponse(request.ID, suggestions, elapsed))
}

// handleFilter processes a wildcard pattern request. Patterns carry *
// and ? so they skip the input noise filter.
func (s *Server) handleFilter(request Request) {
	pattern := request.Query
	if pattern == "" {
		s.sendError(request.ID, "Missing 'p' parameter", 400)
		return
	}
	if len(pattern) > s.cfg.Search.MaxPattern {
		s.sendError(request.ID, fmt.Sprintf("Pattern exceeds maximum length of %d", s.cfg.Search.MaxPattern), 400)
		return
	}

	start := time.Now()
	matches := s.completer.Filter(pattern)
	elapsed := time.Since(start)

	if request.Limit > 0 && len(matches) > request.Limit {
		matches = matches[:request.Limit]
	}

	suggestions := make([]suggest.Suggestion, len(matches))
	for i, m := range matches {
		suggestions[i] = suggest.Suggestion{Word: m.Key.String(), Frequency: m.Frequency}
	}
	s.sendResponse(buildResponse(request.ID, suggestions, elapsed))
}

// handlePhrase completes leading tokens against the phrase index. The
// query holds space separated tokens.
func (s *Server) handlePhrase(request Request) {
	limit := s.clampLimit(request.Limit)
	tokens := strings.Fields(request.Query)

	start := time.Now()
	suggestions := s.completer.CompletePhrase(tokens, limit)
	elapsed := time.Since(start)

	s.sendResponse(buildResponse(request.ID, suggestions, elapsed))
}

// handleStats reports index and cache counters.
func (s *Server) handleStats(request Request) {
	s.sendResponse(StatsResponse{
		ID:     request.ID,
		Status: "ok",
		Stats:  s.completer.Stats(),
	})
}

// handleConfig applies the provided server bounds and persists them.
func (s *Server) handleConfig(request Request) {
	if request.MaxLimit == nil && request.MinPrefix == nil && request.MaxPrefix == nil && request.EnableFilter == nil {
		s.sendError(request.ID, "Config request with no fields to update", 400)
		return
	}
	err := s.cfg.Update(s.configPath, request.MaxLimit, request.MinPrefix, request.MaxPrefix, request.EnableFilter)
	if err != nil {
		log.Errorf("Updating config: %v", err)
		s.sendResponse(ConfigResponse{ID: request.ID, Status: "error", Error: err.Error()})
		return
	}
	log.Debugf("Config updated via IPC, saved to %s", s.configPath)
	s.sendResponse(ConfigResponse{ID: request.ID, Status: "updated"})
}

// buildResponse ranks the suggestions by list position and attaches
// timing in microseconds.
func buildResponse(id string, suggestions []suggest.Suggestion, elapsed time.Duration) Response {
	ranks := utils.CreateRankList(len(suggestions))
	entries := make([]Suggestion, len(suggestions))
	for i, sg := range suggestions {
		entries[i] = Suggestion{
			Word:      sg.Word,
			Rank:      ranks[i],
			Frequency: sg.Frequency,
			Corrected: sg.Corrected,
		}
	}
	return Response{
		ID:          id,
		Suggestions: entries,
		Count:       len(entries),
		TimeTaken:   elapsed.Microseconds(),
	}
}
