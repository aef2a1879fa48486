// Package services contains server-side business logic. This file implements
// UserService: registration, login, and resolving a token subject back to a
// persisted user.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/auditkeeper/internal/common"
	"github.com/dmitrijs2005/auditkeeper/internal/dbx"
	"github.com/dmitrijs2005/auditkeeper/internal/server/auth"
	"github.com/dmitrijs2005/auditkeeper/internal/server/config"
	"github.com/dmitrijs2005/auditkeeper/internal/server/models"
	"github.com/dmitrijs2005/auditkeeper/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create users and mint their first token
// - Login: verify credentials and mint tokens
// - Resolve: map a verified token subject to a user record
type UserService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	jwtSecret           []byte
	accessTokenValidity time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                  db,
		repomanager:         m,
		jwtSecret:           []byte(cfg.SecretKey),
		accessTokenValidity: cfg.AccessTokenValidity,
	}
}

// Register creates a new user and returns a signed access token for them.
//
// The very first user ever registered becomes admin; everyone after that is
// a member. An empty name defaults to the local part of the email. A
// duplicate email yields common.ErrorAlreadyExists. The duplicate pre-check
// and the insert run in one transaction, and the storage layer enforces
// email uniqueness as well, so two concurrent registrations cannot both
// commit.
func (s *UserService) Register(ctx context.Context, email, password, name string) (string, error) {

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		if _, err := repo.GetByEmail(ctx, email); err == nil {
			return common.ErrorAlreadyExists
		} else if !errors.Is(err, common.ErrorNotFound) {
			return err
		}

		count, err := repo.Count(ctx)
		if err != nil {
			return err
		}

		role := models.RoleMember
		if count == 0 {
			role = models.RoleAdmin
		}

		user := &models.User{
			Name:         name,
			Email:        email,
			PasswordHash: hash,
			Role:         role,
			IsActive:     true,
		}

		_, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return auth.GenerateToken(email, s.jwtSecret, s.accessTokenValidity)
}

// Login verifies the credentials and mints an access token whose subject is
// the user's email. Unknown emails and wrong passwords both collapse to
// common.ErrorInvalidCredentials so the response gives no account oracle.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	return auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidity)
}

// Resolve looks up the user whose email equals the token subject.
//
// The subject IS the email, not a surrogate id: changing a user's email
// silently invalidates every outstanding token for them. That is documented
// behavior, not a defect to paper over here.
func (s *UserService) Resolve(ctx context.Context, subject string) (*models.User, error) {

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
