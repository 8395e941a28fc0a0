package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/user-auth-api/internal/logger"
	"github.com/sbilibin2017/user-auth-api/internal/models"
)

// CredentialReadRepository runs read-only queries against auth_users.
type CredentialReadRepository struct {
	db *sqlx.DB
}

func NewCredentialReadRepository(db *sqlx.DB) *CredentialReadRepository {
	return &CredentialReadRepository{db: db}
}

// Exists reports whether a credential record with the given username exists.
func (r *CredentialReadRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM auth_users WHERE username = $1)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)

	logger.Log.Infow("credential query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// GetByUsername returns the credential record for the given username,
// or (nil, nil) when no such record exists.
func (r *CredentialReadRepository) GetByUsername(ctx context.Context, username string) (*models.CredentialDB, error) {
	const query = `
		SELECT id, username, password_hash, created_at, updated_at
		FROM auth_users
		WHERE username = $1
	`

	var cred models.CredentialDB
	err := r.db.GetContext(ctx, &cred, query, username)

	logger.Log.Infow("credential query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

// CredentialWriteRepository inserts credential records into auth_users.
type CredentialWriteRepository struct {
	db *sqlx.DB
}

func NewCredentialWriteRepository(db *sqlx.DB) *CredentialWriteRepository {
	return &CredentialWriteRepository{db: db}
}

// Save inserts a new credential record and returns its generated ID.
// A unique-constraint violation on username is returned unwrapped so the
// caller can detect it via pgconn.PgError.
func (r *CredentialWriteRepository) Save(ctx context.Context, username, passwordHash string) (int64, error) {
	const query = `
		INSERT INTO auth_users (username, password_hash, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, username, passwordHash)

	logger.Log.Infow("credential query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, "<password_hash>"},
		"result", id,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return id, nil
}
