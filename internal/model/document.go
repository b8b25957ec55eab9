package model

import (
	"encoding/json"
	"time"
)

// DocumentStatus tracks generation progress of a blueprint or media plan.
type DocumentStatus string

const (
	DocumentStatusDraft    DocumentStatus = "draft"
	DocumentStatusComplete DocumentStatus = "complete"
	DocumentStatusArchived DocumentStatus = "archived"
)

// Valid reports whether s is a known status.
func (s DocumentStatus) Valid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusComplete, DocumentStatusArchived:
		return true
	default:
		return false
	}
}

// Blueprint is a generated Strategic Blueprint. Content is the structured
// document as produced by generation and edited by the user.
type Blueprint struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Title     string          `json:"title"`
	Status    DocumentStatus  `json:"status"`
	Input     json.RawMessage `json:"input,omitempty"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MediaPlan is a generated media plan, optionally derived from a blueprint.
type MediaPlan struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	BlueprintID string          `json:"blueprint_id,omitempty"`
	Title       string          `json:"title"`
	Status      DocumentStatus  `json:"status"`
	Content     json.RawMessage `json:"content"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// SharedBlueprint is a public read-only snapshot of a blueprint addressed by
// an unguessable token.
type SharedBlueprint struct {
	Token       string          `json:"token"`
	BlueprintID string          `json:"blueprint_id"`
	OwnerID     string          `json:"owner_id"`
	Title       string          `json:"title"`
	Content     json.RawMessage `json:"content"`
	ViewCount   int             `json:"view_count"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   *time.Time      `json:"expires_at,omitempty"`
}

// Expired reports whether the share link is past its expiry at now.
func (s *SharedBlueprint) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// Conversation groups chat messages about a blueprint edit session.
type Conversation struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	BlueprintID string    `json:"blueprint_id,omitempty"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MessageRole identifies the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one persisted chat turn.
type Message struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversation_id"`
	Role           MessageRole     `json:"role"`
	Content        string          `json:"content"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}
