package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/ammar944/AI-GOS-sub011/internal/model"
)

// Pool is the subset of *pgxpool.Pool the store uses. pgxmock pools satisfy
// it in tests.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
	now     func() time.Time
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

const (
	pgInsertBlueprint = `INSERT INTO blueprints (id, owner_id, title, status, input, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	pgGetBlueprint    = `SELECT id, owner_id, title, status, input, content, created_at, updated_at FROM blueprints WHERE id = $1 AND owner_id = $2`
	pgListBlueprints  = `SELECT id, owner_id, title, status, input, content, created_at, updated_at FROM blueprints WHERE owner_id = $1 ORDER BY updated_at DESC, id LIMIT $2 OFFSET $3`
	pgUpdateBlueprint = `UPDATE blueprints SET title = $1, status = $2, content = $3, updated_at = $4 WHERE id = $5 AND owner_id = $6`
	pgDeleteBlueprint = `DELETE FROM blueprints WHERE id = $1 AND owner_id = $2`

	pgInsertMediaPlan = `INSERT INTO media_plans (id, owner_id, blueprint_id, title, status, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	pgGetMediaPlan    = `SELECT id, owner_id, blueprint_id, title, status, content, created_at, updated_at FROM media_plans WHERE id = $1 AND owner_id = $2`
	pgListMediaPlans  = `SELECT id, owner_id, blueprint_id, title, status, content, created_at, updated_at FROM media_plans WHERE owner_id = $1 ORDER BY updated_at DESC, id LIMIT $2 OFFSET $3`
	pgUpdateMediaPlan = `UPDATE media_plans SET title = $1, status = $2, content = $3, updated_at = $4 WHERE id = $5 AND owner_id = $6`
	pgDeleteMediaPlan = `DELETE FROM media_plans WHERE id = $1 AND owner_id = $2`

	pgInsertConversation = `INSERT INTO conversations (id, owner_id, blueprint_id, title, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)`
	pgGetConversation    = `SELECT id, owner_id, blueprint_id, title, created_at, updated_at FROM conversations WHERE id = $1 AND owner_id = $2`
	pgListConversations  = `SELECT id, owner_id, blueprint_id, title, created_at, updated_at FROM conversations WHERE owner_id = $1 ORDER BY updated_at DESC, id LIMIT $2 OFFSET $3`
	pgDeleteConversation = `DELETE FROM conversations WHERE id = $1 AND owner_id = $2`
	pgInsertMessage      = `INSERT INTO messages (id, conversation_id, role, content, metadata, created_at) SELECT $1::text, c.id, $3::text, $4::text, $5::jsonb, $6::timestamptz FROM conversations c WHERE c.id = $2 AND c.owner_id = $7`
	pgTouchConversation  = `UPDATE conversations SET updated_at = $1 WHERE id = $2`
	pgListMessages       = `SELECT m.id, m.conversation_id, m.role, m.content, m.metadata, m.created_at FROM messages m JOIN conversations c ON c.id = m.conversation_id WHERE m.conversation_id = $1 AND c.owner_id = $2 ORDER BY m.created_at, m.id LIMIT $3 OFFSET $4`

	pgInsertShare = `INSERT INTO shared_blueprints (token, blueprint_id, owner_id, title, content, created_at, expires_at) SELECT $1::text, b.id, b.owner_id, b.title, b.content, $4::timestamptz, $5::timestamptz FROM blueprints b WHERE b.id = $2 AND b.owner_id = $3 RETURNING title, content`
	pgGetShare    = `UPDATE shared_blueprints SET view_count = view_count + 1 WHERE token = $1 AND (expires_at IS NULL OR expires_at > $2) RETURNING token, blueprint_id, owner_id, title, content, view_count, created_at, expires_at`
)

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the most frequently used store operations.
var preparedStatements = map[string]string{
	"get_blueprint":      pgGetBlueprint,
	"list_blueprints":    pgListBlueprints,
	"update_blueprint":   pgUpdateBlueprint,
	"get_media_plan":     pgGetMediaPlan,
	"list_conversations": pgListConversations,
	"insert_message":     pgInsertMessage,
	"list_messages":      pgListMessages,
	"get_share":          pgGetShare,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return newPostgresStore(pool, pool.Close), nil
}

func newPostgresStore(pool Pool, closeFn func()) *PostgresStore {
	return &PostgresStore{
		pool:    pool,
		closeFn: closeFn,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS blueprints (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	title      TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL DEFAULT 'draft',
	input      JSONB,
	content    JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_blueprints_owner ON blueprints(owner_id, updated_at DESC);

CREATE TABLE IF NOT EXISTS media_plans (
	id           TEXT PRIMARY KEY,
	owner_id     TEXT NOT NULL,
	blueprint_id TEXT REFERENCES blueprints(id) ON DELETE SET NULL,
	title        TEXT NOT NULL DEFAULT '',
	status       TEXT NOT NULL DEFAULT 'draft',
	content      JSONB NOT NULL DEFAULT '{}'::jsonb,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_media_plans_owner ON media_plans(owner_id, updated_at DESC);

CREATE TABLE IF NOT EXISTS conversations (
	id           TEXT PRIMARY KEY,
	owner_id     TEXT NOT NULL,
	blueprint_id TEXT REFERENCES blueprints(id) ON DELETE SET NULL,
	title        TEXT NOT NULL DEFAULT '',
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_conversations_owner ON conversations(owner_id, updated_at DESC);

CREATE TABLE IF NOT EXISTS messages (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	role            TEXT NOT NULL,
	content         TEXT NOT NULL,
	metadata        JSONB,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, created_at);

CREATE TABLE IF NOT EXISTS shared_blueprints (
	token        TEXT PRIMARY KEY,
	blueprint_id TEXT NOT NULL REFERENCES blueprints(id) ON DELETE CASCADE,
	owner_id     TEXT NOT NULL,
	title        TEXT NOT NULL,
	content      JSONB NOT NULL,
	view_count   INTEGER NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	expires_at   TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_shared_blueprints_blueprint ON shared_blueprints(blueprint_id);
`

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "SELECT 1")
	return eris.Wrap(err, "postgres: ping")
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

// --- Blueprints ---

func (s *PostgresStore) CreateBlueprint(ctx context.Context, bp *model.Blueprint) error {
	if err := prepareBlueprint(bp, uuid.NewString(), s.now()); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx, pgInsertBlueprint,
		bp.ID, bp.OwnerID, bp.Title, string(bp.Status), nullJSON(bp.Input), []byte(bp.Content), bp.CreatedAt, bp.UpdatedAt,
	)
	return eris.Wrap(err, "postgres: insert blueprint")
}

func (s *PostgresStore) GetBlueprint(ctx context.Context, ownerID, id string) (*model.Blueprint, error) {
	bp, err := scanPgBlueprint(s.pool.QueryRow(ctx, pgGetBlueprint, id, ownerID))
	if err != nil {
		return nil, pgNotFound(err, "postgres: get blueprint %s", id)
	}
	return bp, nil
}

func (s *PostgresStore) ListBlueprints(ctx context.Context, ownerID string, page Page) ([]model.Blueprint, error) {
	page = page.normalize()
	rows, err := s.pool.Query(ctx, pgListBlueprints, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list blueprints")
	}
	defer rows.Close()

	out := []model.Blueprint{}
	for rows.Next() {
		bp, err := scanPgBlueprint(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan blueprint")
		}
		out = append(out, *bp)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list blueprints")
}

func (s *PostgresStore) UpdateBlueprint(ctx context.Context, bp *model.Blueprint) error {
	if !bp.Status.Valid() {
		return eris.Errorf("postgres: invalid blueprint status %q", bp.Status)
	}
	bp.UpdatedAt = s.now()
	tag, err := s.pool.Exec(ctx, pgUpdateBlueprint,
		bp.Title, string(bp.Status), []byte(bp.Content), bp.UpdatedAt, bp.ID, bp.OwnerID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update blueprint %s", bp.ID)
	}
	return pgAffected(tag)
}

func (s *PostgresStore) DeleteBlueprint(ctx context.Context, ownerID, id string) error {
	tag, err := s.pool.Exec(ctx, pgDeleteBlueprint, id, ownerID)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete blueprint %s", id)
	}
	return pgAffected(tag)
}

// --- Media plans ---

func (s *PostgresStore) CreateMediaPlan(ctx context.Context, mp *model.MediaPlan) error {
	if err := prepareMediaPlan(mp, uuid.NewString(), s.now()); err != nil {
		return err
	}
	_, err := s.pool.Exec(ctx, pgInsertMediaPlan,
		mp.ID, mp.OwnerID, nullableID(mp.BlueprintID), mp.Title, string(mp.Status), []byte(mp.Content), mp.CreatedAt, mp.UpdatedAt,
	)
	return eris.Wrap(err, "postgres: insert media plan")
}

func (s *PostgresStore) GetMediaPlan(ctx context.Context, ownerID, id string) (*model.MediaPlan, error) {
	mp, err := scanPgMediaPlan(s.pool.QueryRow(ctx, pgGetMediaPlan, id, ownerID))
	if err != nil {
		return nil, pgNotFound(err, "postgres: get media plan %s", id)
	}
	return mp, nil
}

func (s *PostgresStore) ListMediaPlans(ctx context.Context, ownerID string, page Page) ([]model.MediaPlan, error) {
	page = page.normalize()
	rows, err := s.pool.Query(ctx, pgListMediaPlans, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list media plans")
	}
	defer rows.Close()

	out := []model.MediaPlan{}
	for rows.Next() {
		mp, err := scanPgMediaPlan(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan media plan")
		}
		out = append(out, *mp)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list media plans")
}

func (s *PostgresStore) UpdateMediaPlan(ctx context.Context, mp *model.MediaPlan) error {
	if !mp.Status.Valid() {
		return eris.Errorf("postgres: invalid media plan status %q", mp.Status)
	}
	mp.UpdatedAt = s.now()
	tag, err := s.pool.Exec(ctx, pgUpdateMediaPlan,
		mp.Title, string(mp.Status), []byte(mp.Content), mp.UpdatedAt, mp.ID, mp.OwnerID,
	)
	if err != nil {
		return eris.Wrapf(err, "postgres: update media plan %s", mp.ID)
	}
	return pgAffected(tag)
}

func (s *PostgresStore) DeleteMediaPlan(ctx context.Context, ownerID, id string) error {
	tag, err := s.pool.Exec(ctx, pgDeleteMediaPlan, id, ownerID)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete media plan %s", id)
	}
	return pgAffected(tag)
}

// --- Conversations ---

func (s *PostgresStore) CreateConversation(ctx context.Context, c *model.Conversation) error {
	if c.OwnerID == "" {
		return eris.New("postgres: conversation owner is required")
	}
	now := s.now()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	_, err := s.pool.Exec(ctx, pgInsertConversation,
		c.ID, c.OwnerID, nullableID(c.BlueprintID), c.Title, c.CreatedAt, c.UpdatedAt,
	)
	return eris.Wrap(err, "postgres: insert conversation")
}

func (s *PostgresStore) GetConversation(ctx context.Context, ownerID, id string) (*model.Conversation, error) {
	c, err := scanPgConversation(s.pool.QueryRow(ctx, pgGetConversation, id, ownerID))
	if err != nil {
		return nil, pgNotFound(err, "postgres: get conversation %s", id)
	}
	return c, nil
}

func (s *PostgresStore) ListConversations(ctx context.Context, ownerID string, page Page) ([]model.Conversation, error) {
	page = page.normalize()
	rows, err := s.pool.Query(ctx, pgListConversations, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list conversations")
	}
	defer rows.Close()

	out := []model.Conversation{}
	for rows.Next() {
		c, err := scanPgConversation(rows)
		if err != nil {
			return nil, eris.Wrap(err, "postgres: scan conversation")
		}
		out = append(out, *c)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list conversations")
}

func (s *PostgresStore) DeleteConversation(ctx context.Context, ownerID, id string) error {
	tag, err := s.pool.Exec(ctx, pgDeleteConversation, id, ownerID)
	if err != nil {
		return eris.Wrapf(err, "postgres: delete conversation %s", id)
	}
	return pgAffected(tag)
}

// AddMessage appends m to a conversation owned by ownerID. The insert
// matches no row when the conversation belongs to someone else.
func (s *PostgresStore) AddMessage(ctx context.Context, ownerID string, m *model.Message) error {
	if err := validateMessage(m); err != nil {
		return err
	}
	m.ID = uuid.NewString()
	m.CreatedAt = s.now()
	tag, err := s.pool.Exec(ctx, pgInsertMessage,
		m.ID, m.ConversationID, string(m.Role), m.Content, nullJSON(m.Metadata), m.CreatedAt, ownerID,
	)
	if err != nil {
		return eris.Wrap(err, "postgres: insert message")
	}
	if err := pgAffected(tag); err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, pgTouchConversation, m.CreatedAt, m.ConversationID)
	return eris.Wrap(err, "postgres: touch conversation")
}

func (s *PostgresStore) ListMessages(ctx context.Context, ownerID, conversationID string, page Page) ([]model.Message, error) {
	page = page.normalize()
	rows, err := s.pool.Query(ctx, pgListMessages, conversationID, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list messages")
	}
	defer rows.Close()

	out := []model.Message{}
	for rows.Next() {
		var (
			m        model.Message
			role     string
			metadata []byte
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &role, &m.Content, &metadata, &m.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan message")
		}
		m.Role = model.MessageRole(role)
		m.Metadata = metadata
		out = append(out, m)
	}
	return out, eris.Wrap(rows.Err(), "postgres: list messages")
}

// --- Share links ---

// CreateShare snapshots the blueprint's current title and content under a
// new token. A ttl <= 0 never expires.
func (s *PostgresStore) CreateShare(ctx context.Context, ownerID, blueprintID string, ttl time.Duration) (*model.SharedBlueprint, error) {
	token, err := newShareToken()
	if err != nil {
		return nil, err
	}
	now := s.now()
	share := &model.SharedBlueprint{
		Token:       token,
		BlueprintID: blueprintID,
		OwnerID:     ownerID,
		CreatedAt:   now,
		ExpiresAt:   expiry(now, ttl),
	}
	var content []byte
	err = s.pool.QueryRow(ctx, pgInsertShare, token, blueprintID, ownerID, now, share.ExpiresAt).
		Scan(&share.Title, &content)
	if err != nil {
		return nil, pgNotFound(err, "postgres: create share for %s", blueprintID)
	}
	share.Content = content
	return share, nil
}

// GetShare resolves a token and counts the view. Expired tokens are not
// found.
func (s *PostgresStore) GetShare(ctx context.Context, token string) (*model.SharedBlueprint, error) {
	var (
		sh      model.SharedBlueprint
		content []byte
	)
	err := s.pool.QueryRow(ctx, pgGetShare, token, s.now()).Scan(
		&sh.Token, &sh.BlueprintID, &sh.OwnerID, &sh.Title, &content, &sh.ViewCount, &sh.CreatedAt, &sh.ExpiresAt,
	)
	if err != nil {
		return nil, pgNotFound(err, "postgres: get share")
	}
	sh.Content = content
	return &sh, nil
}

// helpers

func pgAffected(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func pgNotFound(err error, format string, args ...any) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return eris.Wrapf(err, format, args...)
}

// nullJSON maps an absent JSON document to SQL NULL.
func nullJSON(raw []byte) []byte {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

func scanPgBlueprint(row pgx.Row) (*model.Blueprint, error) {
	var (
		bp             model.Blueprint
		status         string
		input, content []byte
	)
	if err := row.Scan(&bp.ID, &bp.OwnerID, &bp.Title, &status, &input, &content, &bp.CreatedAt, &bp.UpdatedAt); err != nil {
		return nil, err
	}
	bp.Status = model.DocumentStatus(status)
	bp.Input = input
	bp.Content = content
	return &bp, nil
}

func scanPgMediaPlan(row pgx.Row) (*model.MediaPlan, error) {
	var (
		mp          model.MediaPlan
		blueprintID *string
		status      string
		content     []byte
	)
	if err := row.Scan(&mp.ID, &mp.OwnerID, &blueprintID, &mp.Title, &status, &content, &mp.CreatedAt, &mp.UpdatedAt); err != nil {
		return nil, err
	}
	if blueprintID != nil {
		mp.BlueprintID = *blueprintID
	}
	mp.Status = model.DocumentStatus(status)
	mp.Content = content
	return &mp, nil
}

func scanPgConversation(row pgx.Row) (*model.Conversation, error) {
	var (
		c           model.Conversation
		blueprintID *string
	)
	if err := row.Scan(&c.ID, &c.OwnerID, &blueprintID, &c.Title, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if blueprintID != nil {
		c.BlueprintID = *blueprintID
	}
	return &c, nil
}
