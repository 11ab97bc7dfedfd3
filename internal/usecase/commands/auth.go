package commands

import (
	"context"
	"log/slog"

	"donorhub/internal/domain/user"
	"donorhub/internal/infra"
	"donorhub/internal/pkg/errs"
	"donorhub/internal/pkg/jwt"
	"donorhub/internal/pkg/password"
	"donorhub/internal/usecase/queries"
	"donorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
)

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, rawPassword string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, rawPassword string) (*LoginResult, error) {
	credentials, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userView, passwordHash, err := a.readStore.FindByEmail(ctx, credentials.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err = password.ComparePassword(passwordHash, rawPassword); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.generateTokenPair(userView.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, userView.ID)
	})
	if err != nil {
		// Login itself succeeded; the timestamp is best-effort bookkeeping.
		slog.Warn("failed to update last login", "user_id", userView.ID.String(), "error", err.Error())
	}

	return &LoginResult{
		UserID:    userView.ID,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.generateTokenPair(userView.ID, role)
}

func (a *authCommandsImpl) generateTokenPair(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
