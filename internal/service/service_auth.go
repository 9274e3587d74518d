// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kinkeeper Authors

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/kinkeeper-app/kinkeeper/internal/config"
	"github.com/kinkeeper-app/kinkeeper/internal/crypto"
	"github.com/kinkeeper-app/kinkeeper/internal/logger"
	"github.com/kinkeeper-app/kinkeeper/internal/store"
	"github.com/kinkeeper-app/kinkeeper/internal/utils"
	"github.com/kinkeeper-app/kinkeeper/models"
)

// authService is the concrete implementation of AuthService. Passwords are
// hashed with Argon2id before storage; sessions are stateless JWTs carrying
// the user id as subject and the account id as a custom claim.
type authService struct {
	db       *store.DB
	accounts store.AccountRepository
	profiles store.ProfileRepository

	hasher *crypto.PasswordHasher
	ids    *utils.UUIDGenerator

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the account and profile
// repositories and populated with token parameters from cfg.
func NewAuthService(db *store.DB, repos *store.Repositories, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		db:            db,
		accounts:      repos.Accounts,
		profiles:      repos.Profiles,
		hasher:        crypto.NewPasswordHasher(),
		ids:           utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Register creates a new account together with its primary profile. The two
// inserts share one transaction: an account without a primary profile could
// never accept a sync invitation.
//
// Returns ErrInvalidEntity on empty email, name or password, and
// ErrEmailTaken when the email is already registered.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Name == "" || req.Password == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: email, name and password are required", ErrInvalidEntity)
	}

	passwordHash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).
			Str("func", "authService.Register").
			Msg("failed to hash password")
		return models.AuthResponse{}, fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		ID:           a.ids.Generate(),
		UserID:       a.ids.Generate(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: passwordHash,
	}

	err = a.db.InTx(ctx, func(tx *sql.Tx) error {
		created, txErr := a.accounts.WithTx(tx).CreateAccount(ctx, account)
		if txErr != nil {
			if errors.Is(txErr, store.ErrDuplicate) {
				return fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
			}
			return fmt.Errorf("create account: %w", txErr)
		}
		account = created

		primary := models.Profile{
			ID:        a.ids.Generate(),
			AccountID: account.ID,
			UserID:    account.UserID,
			IsPrimary: true,
			Name:      account.Name,
			Email:     account.Email,
		}
		if txErr = a.profiles.WithTx(tx).SaveProfile(ctx, primary); txErr != nil {
			return fmt.Errorf("create primary profile: %w", txErr)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			log.Err(err).
				Str("func", "authService.Register").
				Str("email", req.Email).
				Msg("registration ended with error")
		}
		return models.AuthResponse{}, err
	}

	return a.issueToken(ctx, account)
}

// Login verifies the credentials and issues a fresh session token.
//
// Returns ErrWrongPassword for both an unknown email and a bad password, so
// the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		return models.AuthResponse{}, fmt.Errorf("%w: email and password are required", ErrInvalidEntity)
	}

	account, err := a.accounts.FindAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AuthResponse{}, ErrWrongPassword
		}
		log.Err(err).
			Str("func", "authService.Login").
			Str("email", req.Email).
			Msg("failed to look up account")
		return models.AuthResponse{}, fmt.Errorf("find account: %w", err)
	}

	if err = a.hasher.Verify(account.PasswordHash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrPasswordMismatch) {
			return models.AuthResponse{}, ErrWrongPassword
		}
		return models.AuthResponse{}, fmt.Errorf("verify password: %w", err)
	}

	return a.issueToken(ctx, account)
}

// ValidateToken parses and verifies a bearer token string.
func (a *authService) ValidateToken(tokenString string) (models.Token, error) {
	return utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
}

func (a *authService) issueToken(ctx context.Context, account models.Account) (models.AuthResponse, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.UserID, account.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authService.issueToken").
			Str("account_id", account.ID).
			Msg("failed to generate token")
		return models.AuthResponse{}, fmt.Errorf("generate token: %w", err)
	}

	return models.AuthResponse{
		AccountID: account.ID,
		UserID:    account.UserID,
		Token:     token.SignedString,
	}, nil
}
