// Package store persists the documents users generate: blueprints, media
// plans, chat conversations, and public share links. Every read and write
// except share resolution is scoped to an owner.
package store

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/rotisserie/eris"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different owner. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("store: not found")

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// Page bounds a list query.
type Page struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// Store defines the persistence interface for user documents.
type Store interface {
	// Blueprints
	CreateBlueprint(ctx context.Context, bp *model.Blueprint) error
	GetBlueprint(ctx context.Context, ownerID, id string) (*model.Blueprint, error)
	ListBlueprints(ctx context.Context, ownerID string, page Page) ([]model.Blueprint, error)
	UpdateBlueprint(ctx context.Context, bp *model.Blueprint) error
	DeleteBlueprint(ctx context.Context, ownerID, id string) error

	// Media plans
	CreateMediaPlan(ctx context.Context, mp *model.MediaPlan) error
	GetMediaPlan(ctx context.Context, ownerID, id string) (*model.MediaPlan, error)
	ListMediaPlans(ctx context.Context, ownerID string, page Page) ([]model.MediaPlan, error)
	UpdateMediaPlan(ctx context.Context, mp *model.MediaPlan) error
	DeleteMediaPlan(ctx context.Context, ownerID, id string) error

	// Conversations
	CreateConversation(ctx context.Context, c *model.Conversation) error
	GetConversation(ctx context.Context, ownerID, id string) (*model.Conversation, error)
	ListConversations(ctx context.Context, ownerID string, page Page) ([]model.Conversation, error)
	DeleteConversation(ctx context.Context, ownerID, id string) error
	AddMessage(ctx context.Context, ownerID string, m *model.Message) error
	ListMessages(ctx context.Context, ownerID, conversationID string, page Page) ([]model.Message, error)

	// Share links
	CreateShare(ctx context.Context, ownerID, blueprintID string, ttl time.Duration) (*model.SharedBlueprint, error)
	GetShare(ctx context.Context, token string) (*model.SharedBlueprint, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// prepareBlueprint fills defaults on a blueprint about to be inserted.
func prepareBlueprint(bp *model.Blueprint, id string, now time.Time) error {
	if bp.OwnerID == "" {
		return eris.New("store: blueprint owner is required")
	}
	if bp.Status == "" {
		bp.Status = model.DocumentStatusDraft
	}
	if !bp.Status.Valid() {
		return eris.Errorf("store: invalid blueprint status %q", bp.Status)
	}
	if len(bp.Content) == 0 {
		bp.Content = []byte("{}")
	}
	bp.ID = id
	bp.CreatedAt = now
	bp.UpdatedAt = now
	return nil
}

func prepareMediaPlan(mp *model.MediaPlan, id string, now time.Time) error {
	if mp.OwnerID == "" {
		return eris.New("store: media plan owner is required")
	}
	if mp.Status == "" {
		mp.Status = model.DocumentStatusDraft
	}
	if !mp.Status.Valid() {
		return eris.Errorf("store: invalid media plan status %q", mp.Status)
	}
	if len(mp.Content) == 0 {
		mp.Content = []byte("{}")
	}
	mp.ID = id
	mp.CreatedAt = now
	mp.UpdatedAt = now
	return nil
}

func validateMessage(m *model.Message) error {
	if m.ConversationID == "" {
		return eris.New("store: message conversation is required")
	}
	switch m.Role {
	case model.RoleUser, model.RoleAssistant:
	default:
		return eris.Errorf("store: invalid message role %q", m.Role)
	}
	return nil
}

// newShareToken returns a 192-bit random URL-safe token.
func newShareToken() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", eris.Wrap(err, "store: share token")
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func expiry(now time.Time, ttl time.Duration) *time.Time {
	if ttl <= 0 {
		return nil
	}
	t := now.Add(ttl)
	return &t
}

// nullableID maps an empty optional foreign key to SQL NULL.
func nullableID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
