package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestCredentialReadRepository_Exists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.Exists(ctx, "alice")
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = repo.Exists(ctx, "nobody")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
		AddRow(int64(7), "alice", "$2a$12$hash", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at, updated_at")).
		WithArgs("alice").
		WillReturnRows(rows)

	cred, err := repo.GetByUsername(ctx, "alice")
	assert.NoError(t, err)
	assert.NotNil(t, cred)
	assert.Equal(t, int64(7), cred.ID)
	assert.Equal(t, "alice", cred.Username)
	assert.Equal(t, "$2a$12$hash", cred.PasswordHash)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialReadRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at, updated_at")).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}))

	cred, err := repo.GetByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, cred)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialReadRepository_GetByUsername_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, created_at, updated_at")).
		WithArgs("alice").
		WillReturnError(errors.New("connection refused"))

	cred, err := repo.GetByUsername(ctx, "alice")
	assert.Error(t, err)
	assert.Nil(t, cred)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auth_users")).
		WithArgs("alice", "$2a$12$hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.Save(ctx, "alice", "$2a$12$hash")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCredentialWriteRepository_Save_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCredentialWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO auth_users")).
		WithArgs("alice", "$2a$12$hash").
		WillReturnError(errors.New("duplicate key value violates unique constraint"))

	id, err := repo.Save(ctx, "alice", "$2a$12$hash")
	assert.Error(t, err)
	assert.Zero(t, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}
