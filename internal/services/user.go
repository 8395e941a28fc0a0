package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/sbilibin2017/user-auth-api/internal/logger"
	"github.com/sbilibin2017/user-auth-api/internal/models"
)

// UserReader defines read-only operations for demo user records.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// UserWriter defines write operations for demo user records.
type UserWriter interface {
	Save(ctx context.Context, name, address string) (int64, error)
}

// UserService serves the demo user endpoints: listing and generated inserts.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// List returns all demo users.
func (svc *UserService) List(ctx context.Context) ([]models.UserDB, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// AddRandom persists a demo user with generated name and address and returns
// the stored record.
func (svc *UserService) AddRandom(ctx context.Context) (*models.UserDB, error) {
	name := fmt.Sprintf("Alice%d", rand.Intn(1000))
	address := fmt.Sprintf("Address%d", rand.Intn(1000))

	id, err := svc.writer.Save(ctx, name, address)
	if err != nil {
		logger.Log.Errorw("failed to save user", "name", name, "address", address, "err", err)
		return nil, err
	}

	logger.Log.Infow("user created", "id", id, "name", name, "address", address)

	return &models.UserDB{
		ID:      id,
		Name:    name,
		Address: address,
	}, nil
}
