package store

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := newPostgresStore(mock, nil)
	s.now = func() time.Time { return fixedNow }
	return s, mock
}

func q(sql string) string { return regexp.QuoteMeta(sql) }

var blueprintCols = []string{"id", "owner_id", "title", "status", "input", "content", "created_at", "updated_at"}

func TestPostgresStore_Migrate(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS blueprints`).WillReturnResult(pgxmock.NewResult("CREATE", 0))

	require.NoError(t, s.Migrate(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Ping(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`SELECT 1`).WillReturnResult(pgxmock.NewResult("SELECT", 1))

	require.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateBlueprint(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(q(pgInsertBlueprint)).
		WithArgs(pgxmock.AnyArg(), "user-1", "Acme", "draft", []byte(nil), []byte(`{"a":1}`), fixedNow, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	bp := &model.Blueprint{OwnerID: "user-1", Title: "Acme", Content: json.RawMessage(`{"a":1}`)}
	require.NoError(t, s.CreateBlueprint(context.Background(), bp))
	assert.NotEmpty(t, bp.ID)
	assert.Equal(t, fixedNow, bp.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetBlueprint(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgGetBlueprint)).
		WithArgs("bp-1", "user-1").
		WillReturnRows(pgxmock.NewRows(blueprintCols).
			AddRow("bp-1", "user-1", "Acme", "complete", []byte(nil), []byte(`{"x":true}`), fixedNow, fixedNow))

	bp, err := s.GetBlueprint(context.Background(), "user-1", "bp-1")
	require.NoError(t, err)
	assert.Equal(t, model.DocumentStatusComplete, bp.Status)
	assert.JSONEq(t, `{"x":true}`, string(bp.Content))
	assert.Nil(t, bp.Input)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetBlueprint_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgGetBlueprint)).
		WithArgs("bp-1", "someone-else").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetBlueprint(context.Background(), "someone-else", "bp-1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetBlueprint_QueryError(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgGetBlueprint)).
		WithArgs("bp-1", "user-1").
		WillReturnError(assert.AnError)

	_, err := s.GetBlueprint(context.Background(), "user-1", "bp-1")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "get blueprint bp-1")
}

func TestPostgresStore_ListBlueprints(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgListBlueprints)).
		WithArgs("user-1", 50, 0).
		WillReturnRows(pgxmock.NewRows(blueprintCols).
			AddRow("bp-2", "user-1", "B", "draft", []byte(nil), []byte(`{}`), fixedNow, fixedNow).
			AddRow("bp-1", "user-1", "A", "draft", []byte(`{"in":1}`), []byte(`{}`), fixedNow, fixedNow))

	list, err := s.ListBlueprints(context.Background(), "user-1", Page{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bp-2", list[0].ID)
	assert.JSONEq(t, `{"in":1}`, string(list[1].Input))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateBlueprint_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(q(pgUpdateBlueprint)).
		WithArgs("T", "draft", []byte(`{}`), fixedNow, "bp-1", "mallory").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateBlueprint(context.Background(), &model.Blueprint{
		ID: "bp-1", OwnerID: "mallory", Title: "T", Status: model.DocumentStatusDraft, Content: json.RawMessage(`{}`),
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_UpdateBlueprint_InvalidStatus(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	err := s.UpdateBlueprint(context.Background(), &model.Blueprint{ID: "bp-1", OwnerID: "u", Status: "live"})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_DeleteBlueprint(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(q(pgDeleteBlueprint)).
		WithArgs("bp-1", "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeleteBlueprint(context.Background(), "user-1", "bp-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMediaPlan_NullBlueprint(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	bpID := "bp-9"
	mock.ExpectQuery(q(pgGetMediaPlan)).
		WithArgs("mp-1", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "owner_id", "blueprint_id", "title", "status", "content", "created_at", "updated_at"}).
			AddRow("mp-1", "user-1", &bpID, "Plan", "draft", []byte(`{}`), fixedNow, fixedNow))

	mp, err := s.GetMediaPlan(context.Background(), "user-1", "mp-1")
	require.NoError(t, err)
	assert.Equal(t, "bp-9", mp.BlueprintID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateMediaPlan_Detached(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(q(pgInsertMediaPlan)).
		WithArgs(pgxmock.AnyArg(), "user-1", (*string)(nil), "Plan", "draft", []byte(`{}`), fixedNow, fixedNow).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.CreateMediaPlan(context.Background(), &model.MediaPlan{OwnerID: "user-1", Title: "Plan"}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AddMessage(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(q(pgInsertMessage)).
		WithArgs(pgxmock.AnyArg(), "conv-1", "user", "hello", []byte(nil), fixedNow, "user-1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(q(pgTouchConversation)).
		WithArgs(fixedNow, "conv-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	m := &model.Message{ConversationID: "conv-1", Role: model.RoleUser, Content: "hello"}
	require.NoError(t, s.AddMessage(context.Background(), "user-1", m))
	assert.NotEmpty(t, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AddMessage_ForeignConversation(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(q(pgInsertMessage)).
		WithArgs(pgxmock.AnyArg(), "conv-1", "user", "hi", []byte(nil), fixedNow, "mallory").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	err := s.AddMessage(context.Background(), "mallory", &model.Message{ConversationID: "conv-1", Role: model.RoleUser, Content: "hi"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListMessages(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgListMessages)).
		WithArgs("conv-1", "user-1", 10, 0).
		WillReturnRows(pgxmock.NewRows([]string{"id", "conversation_id", "role", "content", "metadata", "created_at"}).
			AddRow("m1", "conv-1", "user", "q", []byte(nil), fixedNow).
			AddRow("m2", "conv-1", "assistant", "a", []byte(`{"k":1}`), fixedNow.Add(time.Second)))

	msgs, err := s.ListMessages(context.Background(), "user-1", "conv-1", Page{Limit: 10})
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, model.RoleAssistant, msgs[1].Role)
	assert.JSONEq(t, `{"k":1}`, string(msgs[1].Metadata))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateShare(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	expires := fixedNow.Add(24 * time.Hour)
	mock.ExpectQuery(q(pgInsertShare)).
		WithArgs(pgxmock.AnyArg(), "bp-1", "user-1", fixedNow, &expires).
		WillReturnRows(pgxmock.NewRows([]string{"title", "content"}).AddRow("Acme", []byte(`{"v":1}`)))

	share, err := s.CreateShare(context.Background(), "user-1", "bp-1", 24*time.Hour)
	require.NoError(t, err)
	assert.Len(t, share.Token, 32)
	assert.Equal(t, "Acme", share.Title)
	require.NotNil(t, share.ExpiresAt)
	assert.Equal(t, expires, *share.ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_CreateShare_NotOwner(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgInsertShare)).
		WithArgs(pgxmock.AnyArg(), "bp-1", "mallory", fixedNow, (*time.Time)(nil)).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.CreateShare(context.Background(), "mallory", "bp-1", 0)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetShare(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgGetShare)).
		WithArgs("tok", fixedNow).
		WillReturnRows(pgxmock.NewRows([]string{"token", "blueprint_id", "owner_id", "title", "content", "view_count", "created_at", "expires_at"}).
			AddRow("tok", "bp-1", "user-1", "Acme", []byte(`{}`), 3, fixedNow, (*time.Time)(nil)))

	share, err := s.GetShare(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 3, share.ViewCount)
	assert.Nil(t, share.ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetShare_Expired(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(q(pgGetShare)).
		WithArgs("old", fixedNow).
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetShare(context.Background(), "old")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
