package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// maxShareHours bounds a share link's lifetime; zero means no expiry.
const maxShareHours = 24 * 365

type shareInput struct {
	ExpiresInHours int `json:"expires_in_hours"`
}

type shareResponse struct {
	Token     string     `json:"token"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// sharedView is the public projection of a share; the owner is omitted.
type sharedView struct {
	Token       string          `json:"token"`
	BlueprintID string          `json:"blueprint_id"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	ViewCount   int             `json:"view_count"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
}

// handleCreateShare snapshots a blueprint behind a public token. The body
// is optional.
func (s *Server) handleCreateShare(w http.ResponseWriter, r *http.Request) {
	var in shareInput
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		writeErr(w, r, errBadRequest)
		return
	}
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &in); err != nil {
			writeErr(w, r, errBadRequest)
			return
		}
	}
	if in.ExpiresInHours < 0 || in.ExpiresInHours > maxShareHours {
		writeErr(w, r, badRequest("expires_in_hours must be between 0 and 8760"))
		return
	}
	sh, err := s.deps.Store.CreateShare(r.Context(), principal(r).ID, chi.URLParam(r, "id"),
		time.Duration(in.ExpiresInHours)*time.Hour)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, shareResponse{
		Token:     sh.Token,
		URL:       "/api/shared/" + sh.Token,
		ExpiresAt: sh.ExpiresAt,
	})
}

// handleGetShared serves a share snapshot without authentication. Expired
// and unknown tokens are both 404.
func (s *Server) handleGetShared(w http.ResponseWriter, r *http.Request) {
	sh, err := s.deps.Store.GetShare(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sharedView{
		Token:       sh.Token,
		BlueprintID: sh.BlueprintID,
		Title:       sh.Title,
		Content:     sh.Content,
		ViewCount:   sh.ViewCount,
		CreatedAt:   sh.CreatedAt,
		ExpiresAt:   sh.ExpiresAt,
	})
}
