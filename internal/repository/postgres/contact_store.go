package postgres

import (
	"context"
	"encoding/json"

	"neurodek-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the store needs
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

const createContactTable = `
	CREATE TABLE IF NOT EXISTS contact (
		id         UUID PRIMARY KEY,
		document   JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`

type contactStore struct {
	db    DB
	newID func() uuid.UUID
}

// NewContactStore stores submissions as JSONB documents keyed by a generated UUID
func NewContactStore(db DB) domain.DocumentStore {
	return &contactStore{db: db, newID: uuid.New}
}

// EnsureSchema creates the contact table if it does not exist yet
func EnsureSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, createContactTable)
	return err
}

func (s *contactStore) Driver() string {
	return domain.DriverPostgres
}

func (s *contactStore) Create(ctx context.Context, submission *domain.ContactSubmission) (string, error) {
	doc, err := json.Marshal(submission)
	if err != nil {
		return "", err
	}

	// the pool runs in simple protocol mode, where []byte becomes a bytea
	// literal; a string is sent as text and postgres casts it to jsonb
	id := s.newID()
	query := `INSERT INTO contact (id, document, created_at) VALUES ($1, $2::jsonb, $3)`
	if _, err := s.db.Exec(ctx, query, id, string(doc), submission.CreatedAt); err != nil {
		return "", err
	}
	return id.String(), nil
}

// CollectionNames lists the tables of the current schema
func (s *contactStore) CollectionNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = current_schema()
		ORDER BY table_name`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

func (s *contactStore) Close(ctx context.Context) error {
	s.db.Close()
	return nil
}
