package commands

import (
	"context"
	"strings"
	"time"

	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/jwt"
	"shareit/internal/pkg/password"
	"shareit/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Wrap(errs.ErrUnauthorized, "invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginRequest struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.UserReadStore
	hasher     *password.Hasher
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.UserReadStore, hasher *password.Hasher, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		hasher:     hasher,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	creds, err := a.readStore.FindCredentialsByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || creds == nil {
		// same answer as a wrong password so emails cannot be probed
		return nil, ErrInvalidCredentials
	}

	if err := a.hasher.Compare(creds.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(creds.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      creds.ID,
		AccessToken: token,
		ExpiresIn:   a.jwtService.TokenDuration(),
	}, nil
}
