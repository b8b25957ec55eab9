package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

type documentInput struct {
	Title       *string               `json:"title"`
	Status      *model.DocumentStatus `json:"status"`
	Input       json.RawMessage       `json:"input"`
	Content     json.RawMessage       `json:"content"`
	BlueprintID string                `json:"blueprint_id"`
}

func (in documentInput) validate() error {
	if in.Status != nil && !in.Status.Valid() {
		return badRequest("status must be draft, complete, or archived")
	}
	if len(in.Content) > 0 && !json.Valid(in.Content) {
		return badRequest("content must be valid JSON")
	}
	return nil
}

type badRequestError string

func (e badRequestError) Error() string { return string(e) }

func badRequest(msg string) error { return badRequestError(msg) }

// --- Blueprints ---

func (s *Server) handleCreateBlueprint(w http.ResponseWriter, r *http.Request) {
	var in documentInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := in.validate(); err != nil {
		writeErr(w, r, err)
		return
	}
	bp := &model.Blueprint{OwnerID: principal(r).ID, Input: in.Input, Content: in.Content}
	if in.Title != nil {
		bp.Title = *in.Title
	}
	if in.Status != nil {
		bp.Status = *in.Status
	}
	if err := s.deps.Store.CreateBlueprint(r.Context(), bp); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, bp)
}

func (s *Server) handleListBlueprints(w http.ResponseWriter, r *http.Request) {
	list, err := s.deps.Store.ListBlueprints(r.Context(), principal(r).ID, pageFromQuery(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"blueprints": list})
}

func (s *Server) handleGetBlueprint(w http.ResponseWriter, r *http.Request) {
	bp, err := s.deps.Store.GetBlueprint(r.Context(), principal(r).ID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bp)
}

// handleUpdateBlueprint applies the fields present in the body.
func (s *Server) handleUpdateBlueprint(w http.ResponseWriter, r *http.Request) {
	var in documentInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := in.validate(); err != nil {
		writeErr(w, r, err)
		return
	}
	bp, err := s.deps.Store.GetBlueprint(r.Context(), principal(r).ID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if in.Title != nil {
		bp.Title = *in.Title
	}
	if in.Status != nil {
		bp.Status = *in.Status
	}
	if len(in.Content) > 0 {
		bp.Content = in.Content
	}
	if err := s.deps.Store.UpdateBlueprint(r.Context(), bp); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bp)
}

func (s *Server) handleDeleteBlueprint(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Store.DeleteBlueprint(r.Context(), principal(r).ID, chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Media plans ---

func (s *Server) handleCreateMediaPlan(w http.ResponseWriter, r *http.Request) {
	var in documentInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := in.validate(); err != nil {
		writeErr(w, r, err)
		return
	}
	owner := principal(r).ID
	if in.BlueprintID != "" {
		// The source blueprint must belong to the caller.
		if _, err := s.deps.Store.GetBlueprint(r.Context(), owner, in.BlueprintID); err != nil {
			writeErr(w, r, err)
			return
		}
	}
	mp := &model.MediaPlan{OwnerID: owner, BlueprintID: in.BlueprintID, Content: in.Content}
	if in.Title != nil {
		mp.Title = *in.Title
	}
	if in.Status != nil {
		mp.Status = *in.Status
	}
	if err := s.deps.Store.CreateMediaPlan(r.Context(), mp); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mp)
}

func (s *Server) handleListMediaPlans(w http.ResponseWriter, r *http.Request) {
	list, err := s.deps.Store.ListMediaPlans(r.Context(), principal(r).ID, pageFromQuery(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"media_plans": list})
}

func (s *Server) handleGetMediaPlan(w http.ResponseWriter, r *http.Request) {
	mp, err := s.deps.Store.GetMediaPlan(r.Context(), principal(r).ID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mp)
}

func (s *Server) handleUpdateMediaPlan(w http.ResponseWriter, r *http.Request) {
	var in documentInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	if err := in.validate(); err != nil {
		writeErr(w, r, err)
		return
	}
	mp, err := s.deps.Store.GetMediaPlan(r.Context(), principal(r).ID, chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	if in.Title != nil {
		mp.Title = *in.Title
	}
	if in.Status != nil {
		mp.Status = *in.Status
	}
	if len(in.Content) > 0 {
		mp.Content = in.Content
	}
	if err := s.deps.Store.UpdateMediaPlan(r.Context(), mp); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mp)
}

func (s *Server) handleDeleteMediaPlan(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Store.DeleteMediaPlan(r.Context(), principal(r).ID, chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
