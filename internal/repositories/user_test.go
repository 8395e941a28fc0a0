package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "address", "created_at", "updated_at"}).
		AddRow(int64(1), "Alice42", "Address17", now, now).
		AddRow(int64(2), "Alice7", "Address901", now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, address, created_at, updated_at")).
		WillReturnRows(rows)

	users, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, "Alice42", users[0].Name)
	assert.Equal(t, "Address901", users[1].Address)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, address, created_at, updated_at")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address", "created_at", "updated_at"}))

	users, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, users)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_List_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, address, created_at, updated_at")).
		WillReturnError(errors.New("connection refused"))

	users, err := repo.List(ctx)
	assert.Error(t, err)
	assert.Nil(t, users)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Alice42", "Address17").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.Save(ctx, "Alice42", "Address17")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)

	assert.NoError(t, mock.ExpectationsWereMet())
}
