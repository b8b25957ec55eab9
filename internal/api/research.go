package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ammar944/AI-GOS-sub011/internal/extract"
	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/internal/monitoring"
	"github.com/ammar944/AI-GOS-sub011/internal/pipeline"
)

// streamEvent is one line of the research response body.
type streamEvent struct {
	Type     string                       `json:"type"`
	Partial  *model.CompanyResearchOutput `json:"partial,omitempty"`
	FormData *model.OnboardingFormData    `json:"formData,omitempty"`
	Error    *streamError                 `json:"error,omitempty"`
	Object   *model.CompanyResearchOutput `json:"object,omitempty"`
	Usage    *model.TokenUsage            `json:"usage,omitempty"`
}

type streamError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// handleResearch validates the request and streams the extraction as
// newline-delimited JSON: deltas, then one done or error event. A client
// disconnect cancels the run.
func (s *Server) handleResearch(w http.ResponseWriter, r *http.Request) {
	var req model.ResearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := pipeline.ValidateRequest(req); err != nil {
		s.deps.Metrics.ObserveRequest(monitoring.ModeRejected)
		writeErr(w, r, err)
		return
	}

	p := principal(r)
	if !s.allow(p.ID) {
		retry := 1.0
		if s.cfg.ResearchRateLimit > 0 {
			retry = math.Ceil(1 / s.cfg.ResearchRateLimit)
		}
		w.Header().Set("Retry-After", strconv.Itoa(int(retry)))
		writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	run, err := s.deps.Research().Start(r.Context(), req)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	mode := monitoring.ModeScraped
	if run.SearchOnly {
		mode = monitoring.ModeSearchOnly
	}
	s.deps.Metrics.ObserveRequest(mode)

	log := zap.L().With(
		zap.String("phase", "research"),
		zap.String("principal", p.ID),
		zap.String("url", run.Request.WebsiteURL),
	)
	streamRun(w, log, run.Session)
}

func streamRun(w http.ResponseWriter, log *zap.Logger, session *extract.Session) {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	rc := http.NewResponseController(w)
	enc := json.NewEncoder(w)
	for ev := range session.Events() {
		if ev.Type == extract.EventError {
			log.Warn("research: stream failed", zap.Error(ev.Err))
		}
		if err := enc.Encode(toStreamEvent(ev)); err != nil {
			log.Info("research: client went away", zap.Error(err))
			session.Cancel()
			continue
		}
		_ = rc.Flush()
	}
	if session.State() == extract.StateCancelled {
		log.Info("research: stream cancelled")
	}
}

func toStreamEvent(ev extract.Event) streamEvent {
	switch ev.Type {
	case extract.EventDelta:
		return streamEvent{Type: string(ev.Type), Partial: ev.Partial, FormData: pipeline.MapToFormData(ev.Partial)}
	case extract.EventDone:
		usage := ev.Usage
		return streamEvent{Type: string(ev.Type), Object: ev.Object, FormData: pipeline.MapToFormData(ev.Object), Usage: &usage}
	default:
		if extract.IsSchemaError(ev.Err) {
			return streamEvent{Type: string(extract.EventError), Error: &streamError{Kind: "schema", Message: ev.Err.Error()}}
		}
		return streamEvent{Type: string(extract.EventError), Error: &streamError{Kind: "stream", Message: "the research stream failed; try again"}}
	}
}
