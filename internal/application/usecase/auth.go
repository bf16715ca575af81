package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/waste3d/mindwell-api/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	msgUsernameTaken = "A user with that username already exists."
	msgEmailTaken    = "A user with that email already exists."
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
}

type AuthUseCase struct {
	users        UserStore
	profiles     ProfileStore
	tokenCache   TokenStore
	hasher       PasswordHasher
	tokenManager TokenIssuer
	log          *logrus.Logger
}

func NewAuthUseCase(
	users UserStore,
	profiles ProfileStore,
	tc TokenStore,
	h PasswordHasher,
	tm TokenIssuer,
	log *logrus.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		users:        users,
		profiles:     profiles,
		tokenCache:   tc,
		hasher:       h,
		tokenManager: tm,
		log:          log,
	}
}

// Register creates the account and its profile. Duplicates of both fields
// are reported together.
func (uc *AuthUseCase) Register(ctx context.Context, username, email, password string) (string, error) {
	conflict := domain.NewConflictError()
	if err := checkTaken(ctx, uc.users, conflict, "username", username, uuid.Nil, msgUsernameTaken); err != nil {
		return "", err
	}
	if err := checkTaken(ctx, uc.users, conflict, "email", email, uuid.Nil, msgEmailTaken); err != nil {
		return "", err
	}
	if err := conflict.Err(); err != nil {
		return "", err
	}

	hashPassword, err := uc.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New(),
		Username:  username,
		Email:     email,
		Password:  hashPassword,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return "", err
	}

	if err := uc.profiles.Create(ctx, domain.NewProfile(user.ID)); err != nil {
		// Профиль создастся лениво при первом обращении
		uc.log.WithError(err).WithField("user_id", user.ID).Warn("profile was not created at registration")
	}

	return user.ID.String(), nil
}

func checkTaken(ctx context.Context, users UserStore, v *domain.ValidationError, column, value string, except uuid.UUID, msg string) error {
	taken, err := users.Taken(ctx, column, value, except)
	if err != nil {
		return err
	}
	if taken {
		v.Add(column, msg)
	}
	return nil
}

func (uc *AuthUseCase) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := uc.hasher.Compare(user.Password, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return uc.issue(ctx, user.ID.String())
}

// Refresh rotates the pair: the presented refresh token stops working.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	userID, err := uc.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	stored, err := uc.tokenCache.CheckRefresh(ctx, refreshToken)
	if err != nil || stored != userID {
		return nil, fmt.Errorf("%w: refresh token revoked", domain.ErrUnauthorized)
	}

	if err := uc.tokenCache.DeleteRefresh(ctx, refreshToken); err != nil {
		return nil, err
	}
	return uc.issue(ctx, userID)
}

func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	return uc.tokenCache.DeleteRefresh(ctx, refreshToken)
}

func (uc *AuthUseCase) issue(ctx context.Context, userID string) (*TokenPair, error) {
	accessToken, refreshToken, err := uc.tokenManager.Generate(userID)
	if err != nil {
		return nil, fmt.Errorf("generate tokens: %w", err)
	}

	if err := uc.tokenCache.SaveRefresh(ctx, userID, refreshToken); err != nil {
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken, UserID: userID}, nil
}
