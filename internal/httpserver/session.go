// internal/httpserver/session.go
//
// Session endpoints. Each handler forwards one UI event to the caller's
// solver.Session and answers with the resulting state:
//   - POST /session/new       → create a session, issue a token
//   - GET  /session           → current grid + candidates
//   - POST /session/key       → key press ("⟵", "Enter", or one character)
//   - POST /session/classify  → classification toggle
//   - POST /session/row       → move the input cursor
//   - POST /session/judge     → classify a row against a known answer
//   - POST /session/clear     → clear everything
//   - POST /session/sample    → unfiltered sample
//   - GET  /session/history   → latest logged queries (empty when disabled)

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-helper/internal/history"
	"github.com/robalobadob/wordle/apps/go-helper/internal/solver"
	"github.com/robalobadob/wordle/apps/go-helper/internal/store"
)

// mountSession registers all /session routes.
func (s *Server) mountSession() {
	s.r.Route("/session", func(r chi.Router) {
		r.Post("/new", s.handleNewSession)
		r.Group(func(r chi.Router) {
			r.Use(s.requireSession)
			r.Get("/", s.handleState)
			r.Post("/key", s.handleKey)
			r.Post("/classify", s.handleClassify)
			r.Post("/row", s.handleRow)
			r.Post("/judge", s.handleJudge)
			r.Post("/clear", s.event(func(ss *solver.Session) { ss.ClearAll() }))
			r.Post("/sample", s.event(func(ss *solver.Session) { ss.SampleRequest() }))
			r.Get("/history", s.handleHistory)
		})
	})
}

// stateRes is returned by every session endpoint.
type stateRes struct {
	solver.Snapshot
	Candidates []string `json:"candidates"`
}

// newSessionRes is returned by /session/new.
type newSessionRes struct {
	Token string `json:"token"`
	Rows  int    `json:"rows"`
	Cols  int    `json:"cols"`
}

// historyRecorder logs a session's queries to the history store.
type historyRecorder struct {
	id   string
	hist *history.Store
}

func (h historyRecorder) Searched(q solver.Search) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	err := h.hist.Record(ctx, history.Entry{
		SessionID:   h.id,
		Kind:        q.Kind,
		Constraints: q.Constraints,
		Matches:     q.Matches,
	})
	if err != nil {
		log.Warn().Err(err).Str("session", h.id).Msg("record search")
	}
}

// handleNewSession creates a session and issues its token.
func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	id := genID()
	opts := solver.Options{Rows: s.opts.Rows, Cols: s.opts.Cols}
	if s.hist != nil {
		opts.Recorder = historyRecorder{id: id, hist: s.hist}
	}
	sess := solver.New(s.dict, opts)
	if err := s.store.Save(r.Context(), store.NewEntry(id, sess)); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.signToken(id)
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	setSessionCookie(w, tok, exp)
	snap := sess.Snapshot()
	_ = json.NewEncoder(w).Encode(newSessionRes{Token: tok, Rows: len(snap.Rows), Cols: len(snap.Rows[0])})
}

// handleState returns the grid and candidates without changing anything.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, func(*solver.Session) {})
}

// keyReq is the payload for /session/key.
type keyReq struct {
	Key string `json:"key"`
}

func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.respond(w, r, func(ss *solver.Session) { ss.KeyPressed(req.Key) })
}

// classifyReq is the payload for /session/classify.
type classifyReq struct {
	Row            int `json:"row"`
	Col            int `json:"col"`
	Classification int `json:"classification"`
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.respond(w, r, func(ss *solver.Session) {
		ss.LetterClassificationChanged(req.Row, req.Col, req.Classification)
	})
}

// rowReq is the payload for /session/row.
type rowReq struct {
	Row int `json:"row"`
}

func (s *Server) handleRow(w http.ResponseWriter, r *http.Request) {
	var req rowReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.respond(w, r, func(ss *solver.Session) { ss.SelectRow(req.Row) })
}

// judgeReq is the payload for /session/judge.
type judgeReq struct {
	Row    int    `json:"row"`
	Answer string `json:"answer"`
}

func (s *Server) handleJudge(w http.ResponseWriter, r *http.Request) {
	var req judgeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.respond(w, r, func(ss *solver.Session) { ss.Judge(req.Row, req.Answer) })
}

// handleHistory returns the latest logged queries for the session.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	out := []history.Entry{}
	if s.hist != nil {
		rows, err := s.hist.Recent(r.Context(), entryFrom(r).ID, 20)
		if err != nil {
			log.Warn().Err(err).Msg("load history")
			http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
			return
		}
		out = rows
	}
	_ = json.NewEncoder(w).Encode(out)
}

// event adapts a body-less session event into a handler.
func (s *Server) event(fn func(*solver.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) { s.respond(w, r, fn) }
}

// respond runs fn under the session lock and writes the resulting state.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, fn func(*solver.Session)) {
	var res stateRes
	entryFrom(r).Do(func(ss *solver.Session) {
		fn(ss)
		res = stateRes{Snapshot: ss.Snapshot(), Candidates: ss.Candidates()}
	})
	_ = json.NewEncoder(w).Encode(res)
}
