package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/kruskal"
	"github.com/katalvlaran/mstrace/parser"
)

// ErrTraceTooLarge indicates a request whose worst-case trace exceeds
// MaxTraceCells.
var ErrTraceTooLarge = errors.New("server: trace exceeds size limit")

// TraceRequest is the body of POST /v1/traces. An empty Engine and any
// option field left out fall back to the configured defaults.
type TraceRequest struct {
	Graph   core.Graph       `json:"graph"`
	Engine  string           `json:"engine,omitempty"`
	Options *kruskal.Options `json:"options,omitempty"`
}

// TraceResponse is the body returned by POST /v1/traces.
type TraceResponse struct {
	RunID     string      `json:"runId"`
	Engine    string      `json:"engine"`
	Mode      string      `json:"mode"`
	Cached    bool        `json:"cached"`
	MSTWeight float64     `json:"mstWeight"`
	Steps     []core.Step `json:"steps"`
}

// PseudocodeResponse is the body of GET /v1/pseudocode/{engine}.
type PseudocodeResponse struct {
	Engine string   `json:"engine"`
	Lines  []string `json:"lines"`
}

type errorResponse struct {
	Error string `json:"error"`
	RunID string `json:"runId"`
}

// memoEntry is what the trace memo stores.
type memoEntry struct {
	Steps     []core.Step `json:"steps"`
	MSTWeight float64     `json:"mstWeight"`
}

func (s *Server) handleTrace(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	// Options decode over a copy of the defaults, so partial objects work.
	defaults := s.defaults
	req := TraceRequest{Options: &defaults}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	engine := s.engine
	if req.Engine != "" {
		var err error
		if engine, err = kruskal.ParseEngine(req.Engine); err != nil {
			s.fail(w, r, http.StatusBadRequest, "invalid engine", err)
			return
		}
	}
	opts := s.defaults
	if req.Options != nil {
		opts = *req.Options
	}
	if req.Graph.Edges == nil {
		req.Graph.Edges = []core.Edge{}
	}
	if err := opts.Validate(); err != nil {
		s.fail(w, r, http.StatusBadRequest, "invalid options", err)
		return
	}
	if err := s.admit(req.Graph, engine, opts); err != nil {
		status := http.StatusRequestEntityTooLarge
		if !errors.Is(err, parser.ErrTooLarge) && !errors.Is(err, ErrTraceTooLarge) {
			status = http.StatusBadRequest
		}
		s.fail(w, r, status, "trace rejected", err)
		return
	}

	// Key over the resolved request so defaults and explicit values share entries.
	key, err := memoKey(TraceRequest{Graph: req.Graph, Engine: string(engine), Options: &opts})
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, "hash request", err)
		return
	}

	resp := TraceResponse{RunID: runIDFrom(r.Context()), Engine: string(engine), Mode: opts.Mode()}
	var entry memoEntry
	hit, err := s.memo.get(key, &entry)
	if err != nil {
		s.log.Warn("trace memo read failed, rebuilding", "run_id", resp.RunID, "error", err)
	}
	if hit {
		s.metrics.CacheHitsTotal.Inc()
		resp.Cached = true
	} else {
		steps, err := kruskal.Trace(req.Graph, engine, kruskal.WithOptions(opts))
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, "trace rejected", err)
			return
		}
		entry = memoEntry{Steps: steps, MSTWeight: kruskal.FinalWeight(steps)}
		s.metrics.observeTrace(string(engine), opts.Mode(), steps)
		if err = s.memo.set(key, entry); err != nil {
			s.log.Warn("trace memo write failed", "run_id", resp.RunID, "error", err)
		}
	}
	resp.Steps, resp.MSTWeight = entry.Steps, entry.MSTWeight

	s.log.Debug("trace served",
		"run_id", resp.RunID, "engine", engine, "mode", resp.Mode,
		"n", req.Graph.N, "m", len(req.Graph.Edges), "steps", len(resp.Steps), "cached", resp.Cached)
	s.writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	format := parser.Format(r.URL.Query().Get("format"))
	var (
		g   core.Graph
		err error
	)
	switch format {
	case "", parser.FormatText:
		g, err = parser.ParseText(bytes.NewReader(body), parser.WithLimits(s.limits()))
	default:
		g, err = parser.ParseDocument(body, format, parser.WithLimits(s.limits()))
	}
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, parser.ErrTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		s.fail(w, r, status, "parse failed", err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, g)
}

func (s *Server) handlePseudocode(w http.ResponseWriter, r *http.Request) {
	engine, err := kruskal.ParseEngine(chi.URLParam(r, "engine"))
	if err != nil {
		s.fail(w, r, http.StatusNotFound, "unknown engine", err)
		return
	}

	s.writeJSON(w, r, http.StatusOK, PseudocodeResponse{
		Engine: string(engine),
		Lines:  kruskal.Pseudocode(engine),
	})
}

func (s *Server) limits() parser.Limits {
	return parser.Limits{MaxNodes: s.cfg.MaxNodes, MaxEdges: s.cfg.MaxEdges}
}

// admit runs before any tracing: the node and edge caps, the graph contract,
// then the worst-case trace size. A step holds the edge statuses plus at
// most two arrays of n+1 entries.
func (s *Server) admit(g core.Graph, engine kruskal.Engine, opts kruskal.Options) error {
	n, m := g.N, len(g.Edges)
	if err := s.limits().Check(n, m); err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}
	perStep := m + 2*(n+1)
	if bound := kruskal.StepBound(n, m, engine, opts); bound > s.cfg.MaxTraceCells/perStep {
		return fmt.Errorf("up to %d steps of %d cells > max %d cells: %w",
			bound, perStep, s.cfg.MaxTraceCells, ErrTraceTooLarge)
	}

	return nil
}

// readBody enforces MaxBodyBytes; it writes the error response itself.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.fail(w, r, http.StatusRequestEntityTooLarge, "request body too large", err)
		} else {
			s.fail(w, r, http.StatusBadRequest, "read request body", err)
		}
		return nil, false
	}

	return body, true
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("response encode failed", "run_id", runIDFrom(r.Context()), "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	id := runIDFrom(r.Context())
	if status >= http.StatusInternalServerError {
		s.log.Error(msg, "run_id", id, "path", r.URL.Path, "error", err)
	} else {
		s.log.Warn(msg, "run_id", id, "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, r, status, errorResponse{Error: msg + ": " + err.Error(), RunID: id})
}
