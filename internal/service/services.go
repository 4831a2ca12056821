// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Ignatov

package service

import (
	"github.com/mignatov/authkeeper/internal/config"
	"github.com/mignatov/authkeeper/internal/crypto"
	"github.com/mignatov/authkeeper/internal/logger"
	"github.com/mignatov/authkeeper/internal/store"
)

// Services aggregates every business-rule service of the application.
type Services struct {
	AuthService AuthService
}

// NewServices constructs the full service layer on top of the given
// storages. The password hasher cost is taken from the app configuration.
func NewServices(storages *store.Storages, appConfig config.App, log *logger.Logger) *Services {
	hasher := crypto.NewBcryptHasher(appConfig.BcryptCost)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, hasher, appConfig, log),
	}
}
