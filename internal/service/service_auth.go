// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-observer-sync/internal/config"
	"github.com/MKhiriev/go-observer-sync/internal/logger"
	"github.com/MKhiriev/go-observer-sync/internal/utils"
	"github.com/MKhiriev/go-observer-sync/models"
)

// authService issues and verifies the bearer tokens observers present to
// the reference server.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT whose subject is observerID.
func (a *authService) CreateToken(ctx context.Context, observerID string) (models.Token, error) {
	if observerID == "" {
		return models.Token{}, ErrNoObserverID
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, observerID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		a.logger.Err(err).Str("func", "authService.CreateToken").Str("observer_id", observerID).Msg("error creating token")
		return models.Token{}, fmt.Errorf("create token: %w", err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure, including
// expiry, is reported as ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return token, nil
}
