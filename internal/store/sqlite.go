package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite. It backs local
// development and the CLI.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close() //nolint:errcheck
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS blueprints (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	title      TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'draft',
	input      TEXT,
	content    TEXT NOT NULL DEFAULT '{}',
	created_at DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS media_plans (
	id           TEXT PRIMARY KEY,
	owner_id     TEXT NOT NULL,
	blueprint_id TEXT,
	title        TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'draft',
	content      TEXT NOT NULL DEFAULT '{}',
	created_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS conversations (
	id           TEXT PRIMARY KEY,
	owner_id     TEXT NOT NULL,
	blueprint_id TEXT,
	title        TEXT NOT NULL DEFAULT '',
	created_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS messages (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL,
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	metadata        TEXT,
	created_at      DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS shared_blueprints (
	token        TEXT PRIMARY KEY,
	blueprint_id TEXT NOT NULL,
	owner_id     TEXT NOT NULL,
	title        TEXT NOT NULL,
	content      TEXT NOT NULL,
	view_count   INTEGER NOT NULL DEFAULT 0,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at   DATETIME
);

CREATE INDEX IF NOT EXISTS idx_blueprints_owner ON blueprints(owner_id);
CREATE INDEX IF NOT EXISTS idx_media_plans_owner ON media_plans(owner_id);
CREATE INDEX IF NOT EXISTS idx_conversations_owner ON conversations(owner_id);
CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id);
CREATE INDEX IF NOT EXISTS idx_shared_blueprints_blueprint ON shared_blueprints(blueprint_id);
`

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return eris.Wrap(s.db.PingContext(ctx), "sqlite: ping")
}

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// --- Blueprints ---

func (s *SQLiteStore) CreateBlueprint(ctx context.Context, bp *model.Blueprint) error {
	if err := prepareBlueprint(bp, uuid.NewString(), s.now()); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO blueprints (id, owner_id, title, status, input, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		bp.ID, bp.OwnerID, bp.Title, string(bp.Status), nullText(bp.Input), string(bp.Content), bp.CreatedAt, bp.UpdatedAt,
	)
	return eris.Wrap(err, "sqlite: insert blueprint")
}

func (s *SQLiteStore) GetBlueprint(ctx context.Context, ownerID, id string) (*model.Blueprint, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, title, status, input, content, created_at, updated_at FROM blueprints WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	bp, err := scanBlueprint(row)
	if err != nil {
		return nil, sqliteNotFound(err, "sqlite: get blueprint %s", id)
	}
	return bp, nil
}

func (s *SQLiteStore) ListBlueprints(ctx context.Context, ownerID string, page Page) ([]model.Blueprint, error) {
	page = page.normalize()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, title, status, input, content, created_at, updated_at FROM blueprints WHERE owner_id = ? ORDER BY updated_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		ownerID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list blueprints")
	}
	defer rows.Close() //nolint:errcheck

	out := []model.Blueprint{}
	for rows.Next() {
		bp, err := scanBlueprint(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan blueprint")
		}
		out = append(out, *bp)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list blueprints")
}

func (s *SQLiteStore) UpdateBlueprint(ctx context.Context, bp *model.Blueprint) error {
	if !bp.Status.Valid() {
		return eris.Errorf("sqlite: invalid blueprint status %q", bp.Status)
	}
	bp.UpdatedAt = s.now()
	res, err := s.db.ExecContext(ctx,
		`UPDATE blueprints SET title = ?, status = ?, content = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		bp.Title, string(bp.Status), string(bp.Content), bp.UpdatedAt, bp.ID, bp.OwnerID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update blueprint %s", bp.ID)
	}
	return checkRowsAffected(res)
}

// DeleteBlueprint removes the blueprint and its share links and detaches
// media plans and conversations derived from it.
func (s *SQLiteStore) DeleteBlueprint(ctx context.Context, ownerID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `DELETE FROM blueprints WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete blueprint %s", id)
	}
	if err := checkRowsAffected(res); err != nil {
		return err
	}
	for _, stmt := range []string{
		`DELETE FROM shared_blueprints WHERE blueprint_id = ?`,
		`UPDATE media_plans SET blueprint_id = NULL WHERE blueprint_id = ?`,
		`UPDATE conversations SET blueprint_id = NULL WHERE blueprint_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return eris.Wrapf(err, "sqlite: detach blueprint %s", id)
		}
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit")
}

// --- Media plans ---

func (s *SQLiteStore) CreateMediaPlan(ctx context.Context, mp *model.MediaPlan) error {
	if err := prepareMediaPlan(mp, uuid.NewString(), s.now()); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO media_plans (id, owner_id, blueprint_id, title, status, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		mp.ID, mp.OwnerID, nullableID(mp.BlueprintID), mp.Title, string(mp.Status), string(mp.Content), mp.CreatedAt, mp.UpdatedAt,
	)
	return eris.Wrap(err, "sqlite: insert media plan")
}

func (s *SQLiteStore) GetMediaPlan(ctx context.Context, ownerID, id string) (*model.MediaPlan, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, blueprint_id, title, status, content, created_at, updated_at FROM media_plans WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	mp, err := scanMediaPlan(row)
	if err != nil {
		return nil, sqliteNotFound(err, "sqlite: get media plan %s", id)
	}
	return mp, nil
}

func (s *SQLiteStore) ListMediaPlans(ctx context.Context, ownerID string, page Page) ([]model.MediaPlan, error) {
	page = page.normalize()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, blueprint_id, title, status, content, created_at, updated_at FROM media_plans WHERE owner_id = ? ORDER BY updated_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		ownerID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list media plans")
	}
	defer rows.Close() //nolint:errcheck

	out := []model.MediaPlan{}
	for rows.Next() {
		mp, err := scanMediaPlan(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan media plan")
		}
		out = append(out, *mp)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list media plans")
}

func (s *SQLiteStore) UpdateMediaPlan(ctx context.Context, mp *model.MediaPlan) error {
	if !mp.Status.Valid() {
		return eris.Errorf("sqlite: invalid media plan status %q", mp.Status)
	}
	mp.UpdatedAt = s.now()
	res, err := s.db.ExecContext(ctx,
		`UPDATE media_plans SET title = ?, status = ?, content = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		mp.Title, string(mp.Status), string(mp.Content), mp.UpdatedAt, mp.ID, mp.OwnerID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update media plan %s", mp.ID)
	}
	return checkRowsAffected(res)
}

func (s *SQLiteStore) DeleteMediaPlan(ctx context.Context, ownerID, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM media_plans WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete media plan %s", id)
	}
	return checkRowsAffected(res)
}

// --- Conversations ---

func (s *SQLiteStore) CreateConversation(ctx context.Context, c *model.Conversation) error {
	if c.OwnerID == "" {
		return eris.New("sqlite: conversation owner is required")
	}
	now := s.now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, owner_id, blueprint_id, title, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, nullableID(c.BlueprintID), c.Title, c.CreatedAt, c.UpdatedAt,
	)
	return eris.Wrap(err, "sqlite: insert conversation")
}

func (s *SQLiteStore) GetConversation(ctx context.Context, ownerID, id string) (*model.Conversation, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, owner_id, blueprint_id, title, created_at, updated_at FROM conversations WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	c, err := scanConversation(row)
	if err != nil {
		return nil, sqliteNotFound(err, "sqlite: get conversation %s", id)
	}
	return c, nil
}

func (s *SQLiteStore) ListConversations(ctx context.Context, ownerID string, page Page) ([]model.Conversation, error) {
	page = page.normalize()
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, blueprint_id, title, created_at, updated_at FROM conversations WHERE owner_id = ? ORDER BY updated_at DESC, rowid DESC LIMIT ? OFFSET ?`,
		ownerID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list conversations")
	}
	defer rows.Close() //nolint:errcheck

	out := []model.Conversation{}
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, eris.Wrap(err, "sqlite: scan conversation")
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list conversations")
}

func (s *SQLiteStore) DeleteConversation(ctx context.Context, ownerID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, `DELETE FROM conversations WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete conversation %s", id)
	}
	if err := checkRowsAffected(res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE conversation_id = ?`, id); err != nil {
		return eris.Wrapf(err, "sqlite: delete messages of %s", id)
	}
	return eris.Wrap(tx.Commit(), "sqlite: commit")
}

func (s *SQLiteStore) AddMessage(ctx context.Context, ownerID string, m *model.Message) error {
	if err := validateMessage(m); err != nil {
		return err
	}
	m.ID = uuid.NewString()
	m.CreatedAt = s.now()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, conversation_id, role, content, metadata, created_at)
		 SELECT ?, c.id, ?, ?, ?, ? FROM conversations c WHERE c.id = ? AND c.owner_id = ?`,
		m.ID, string(m.Role), m.Content, nullText(m.Metadata), m.CreatedAt, m.ConversationID, ownerID,
	)
	if err != nil {
		return eris.Wrap(err, "sqlite: insert message")
	}
	if err := checkRowsAffected(res); err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `UPDATE conversations SET updated_at = ? WHERE id = ?`, m.CreatedAt, m.ConversationID)
	return eris.Wrap(err, "sqlite: touch conversation")
}

func (s *SQLiteStore) ListMessages(ctx context.Context, ownerID, conversationID string, page Page) ([]model.Message, error) {
	page = page.normalize()
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.id, m.conversation_id, m.role, m.content, m.metadata, m.created_at
		 FROM messages m JOIN conversations c ON c.id = m.conversation_id
		 WHERE m.conversation_id = ? AND c.owner_id = ?
		 ORDER BY m.created_at, m.rowid LIMIT ? OFFSET ?`,
		conversationID, ownerID, page.Limit, page.Offset,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list messages")
	}
	defer rows.Close() //nolint:errcheck

	out := []model.Message{}
	for rows.Next() {
		var (
			m        model.Message
			role     string
			metadata sql.NullString
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &metadata, &m.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan message")
		}
		m.Role = model.MessageRole(role)
		if metadata.Valid {
			m.Metadata = []byte(metadata.String)
		}
		out = append(out, m)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list messages")
}

// --- Share links ---

func (s *SQLiteStore) CreateShare(ctx context.Context, ownerID, blueprintID string, ttl time.Duration) (*model.SharedBlueprint, error) {
	bp, err := s.GetBlueprint(ctx, ownerID, blueprintID)
	if err != nil {
		return nil, err
	}
	token, err := newShareToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	share := &model.SharedBlueprint{
		Token:       token,
		BlueprintID: bp.ID,
		OwnerID:     bp.OwnerID,
		Title:       bp.Title,
		Content:     bp.Content,
		CreatedAt:   now,
		ExpiresAt:   expiry(now, ttl),
	}
	var expires sql.NullTime
	if share.ExpiresAt != nil {
		expires = sql.NullTime{Time: *share.ExpiresAt, Valid: true}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO shared_blueprints (token, blueprint_id, owner_id, title, content, created_at, expires_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		share.Token, share.BlueprintID, share.OwnerID, share.Title, string(share.Content), share.CreatedAt, expires,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert share")
	}
	return share, nil
}

// GetShare resolves a token and counts the view. Expiry is checked in Go
// since SQLite stores times as text.
func (s *SQLiteStore) GetShare(ctx context.Context, token string) (*model.SharedBlueprint, error) {
	var (
		sh      model.SharedBlueprint
		content string
		expires sql.NullTime
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT token, blueprint_id, owner_id, title, content, view_count, created_at, expires_at FROM shared_blueprints WHERE token = ?`,
		token,
	).Scan(&sh.Token, &sh.BlueprintID, &sh.OwnerID, &sh.Title, &content, &sh.ViewCount, &sh.CreatedAt, &expires)
	if err != nil {
		return nil, sqliteNotFound(err, "sqlite: get share")
	}
	sh.Content = []byte(content)
	if expires.Valid {
		t := expires.Time
		sh.ExpiresAt = &t
	}
	if sh.Expired(s.now()) {
		return nil, ErrNotFound
	}

	if _, err := s.db.ExecContext(ctx, `UPDATE shared_blueprints SET view_count = view_count + 1 WHERE token = ?`, token); err != nil {
		return nil, eris.Wrap(err, "sqlite: count share view")
	}
	sh.ViewCount++
	return &sh, nil
}

// helpers

func checkRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func sqliteNotFound(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return eris.Wrapf(err, format, args...)
}

func nullText(raw []byte) sql.NullString {
	if len(raw) == 0 {
		return sql.NullString{}
	}
	return sql.NullString{String: string(raw), Valid: true}
}

type scannable interface {
	Scan(dest ...any) error
}

func scanBlueprint(row scannable) (*model.Blueprint, error) {
	var (
		bp      model.Blueprint
		status  string
		input   sql.NullString
		content string
	)
	if err := row.Scan(&bp.ID, &bp.OwnerID, &bp.Title, &status, &input, &content, &bp.CreatedAt, &bp.UpdatedAt); err != nil {
		return nil, err
	}
	bp.Status = model.DocumentStatus(status)
	if input.Valid {
		bp.Input = []byte(input.String)
	}
	bp.Content = []byte(content)
	return &bp, nil
}

func scanMediaPlan(row scannable) (*model.MediaPlan, error) {
	var (
		mp          model.MediaPlan
		blueprintID sql.NullString
		status      string
		content     string
	)
	if err := row.Scan(&mp.ID, &mp.OwnerID, &blueprintID, &mp.Title, &status, &content, &mp.CreatedAt, &mp.UpdatedAt); err != nil {
		return nil, err
	}
	mp.BlueprintID = blueprintID.String
	mp.Status = model.DocumentStatus(status)
	mp.Content = []byte(content)
	return &mp, nil
}

func scanConversation(row scannable) (*model.Conversation, error) {
	var (
		c           model.Conversation
		blueprintID sql.NullString
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &blueprintID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.BlueprintID = blueprintID.String
	return &c, nil
}
