package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
	"github.com/ammar944/AI-GOS-sub011/internal/store"
)

// conversationMessageLimit caps how many messages GET /{id} embeds.
const conversationMessageLimit = 200

type conversationInput struct {
	Title       string `json:"title"`
	BlueprintID string `json:"blueprint_id"`
}

type messageInput struct {
	Role     model.MessageRole `json:"role"`
	Content  string            `json:"content"`
	Metadata json.RawMessage   `json:"metadata"`
}

func (s *Server) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	var in conversationInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	owner := principal(r).ID
	if in.BlueprintID != "" {
		if _, err := s.deps.Store.GetBlueprint(r.Context(), owner, in.BlueprintID); err != nil {
			writeErr(w, r, err)
			return
		}
	}
	c := &model.Conversation{OwnerID: owner, BlueprintID: in.BlueprintID, Title: strings.TrimSpace(in.Title)}
	if err := s.deps.Store.CreateConversation(r.Context(), c); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListConversations(w http.ResponseWriter, r *http.Request) {
	list, err := s.deps.Store.ListConversations(r.Context(), principal(r).ID, pageFromQuery(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"conversations": list})
}

// handleGetConversation returns the conversation with its most recent
// messages in chronological order.
func (s *Server) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	owner := principal(r).ID
	id := chi.URLParam(r, "id")
	c, err := s.deps.Store.GetConversation(r.Context(), owner, id)
	if err != nil {
		writeErr(w, r, err)
		return
	}
	msgs, err := s.deps.Store.ListMessages(r.Context(), owner, id, store.Page{Limit: conversationMessageLimit})
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		*model.Conversation
		Messages []model.Message `json:"messages"`
	}{c, msgs})
}

func (s *Server) handleDeleteConversation(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Store.DeleteConversation(r.Context(), principal(r).ID, chi.URLParam(r, "id")); err != nil {
		writeErr(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListMessages(w http.ResponseWriter, r *http.Request) {
	owner := principal(r).ID
	id := chi.URLParam(r, "id")
	// Foreign conversations are 404, not an empty list.
	if _, err := s.deps.Store.GetConversation(r.Context(), owner, id); err != nil {
		writeErr(w, r, err)
		return
	}
	msgs, err := s.deps.Store.ListMessages(r.Context(), owner, id, pageFromQuery(r))
	if err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": msgs})
}

func (s *Server) handleAddMessage(w http.ResponseWriter, r *http.Request) {
	var in messageInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeErr(w, r, err)
		return
	}
	switch {
	case in.Role != model.RoleUser && in.Role != model.RoleAssistant:
		writeErr(w, r, badRequest("role must be user or assistant"))
		return
	case strings.TrimSpace(in.Content) == "":
		writeErr(w, r, badRequest("content is required"))
		return
	case len(in.Metadata) > 0 && !json.Valid(in.Metadata):
		writeErr(w, r, badRequest("metadata must be valid JSON"))
		return
	}
	m := &model.Message{
		ConversationID: chi.URLParam(r, "id"),
		Role:           in.Role,
		Content:        in.Content,
		Metadata:       in.Metadata,
	}
	if err := s.deps.Store.AddMessage(r.Context(), principal(r).ID, m); err != nil {
		writeErr(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}
