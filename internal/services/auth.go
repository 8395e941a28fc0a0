package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sbilibin2017/user-auth-api/internal/logger"
	"github.com/sbilibin2017/user-auth-api/internal/models"
	pwd "github.com/sbilibin2017/user-auth-api/internal/password"
)

// Error variables
var (
	ErrValidation         = errors.New("validation failed")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Postgres error code for unique-constraint violations.
const uniqueViolationCode = "23505"

// CredentialReader defines read-only operations for credential records.
type CredentialReader interface {
	Exists(ctx context.Context, username string) (bool, error)
	GetByUsername(ctx context.Context, username string) (*models.CredentialDB, error)
}

// CredentialWriter defines write operations for credential records.
type CredentialWriter interface {
	Save(ctx context.Context, username, passwordHash string) (int64, error)
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader CredentialReader
	writer CredentialWriter
	jwt    TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader CredentialReader, writer CredentialWriter, jwt TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register validates the input, ensures the username is free, hashes the
// password and persists a new credential record. It returns the new record's
// ID. The existence pre-check is a fast path only; the unique constraint on
// auth_users.username is the authoritative duplicate signal under concurrent
// registration.
func (svc *AuthService) Register(ctx context.Context, username, password string) (int64, error) {
	if username == "" || password == "" {
		return 0, fmt.Errorf("%w: username and password are required", ErrValidation)
	}
	if len(username) < 3 || len(username) > 50 {
		return 0, fmt.Errorf("%w: username must be between 3 and 50 characters", ErrValidation)
	}
	if len(password) < 6 {
		return 0, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	exists, err := svc.reader.Exists(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if exists {
		logger.Log.Warnw("user already exists", "username", username)
		return 0, ErrUsernameTaken
	}

	passwordHash, err := pwd.Hash(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, username, passwordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			logger.Log.Warnw("user already exists", "username", username)
			return 0, ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user and returns a bearer token plus the matched
// credential record. An unknown username and a wrong password both map to
// ErrInvalidCredentials so the response does not reveal which one failed.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.CredentialDB, error) {
	if username == "" || password == "" {
		return "", nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	cred, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if cred == nil {
		logger.Log.Warnw("login failed", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	ok, err := pwd.Compare(password, cred.PasswordHash)
	if err != nil {
		logger.Log.Errorw("failed to compare password", "err", err)
		return "", nil, err
	}
	if !ok {
		logger.Log.Warnw("login failed", "username", username)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, cred.ID, cred.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, cred, nil
}
