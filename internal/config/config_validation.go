// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultSessionDuration = 168 * time.Hour
	defaultTokenIssuer     = "trade-ledger-pro"
	defaultDBDriver        = "pgx"
	defaultAssistantModel  = "gpt-4o-mini"
	defaultNewsTimeout     = 10 * time.Second
)

// applyDefaults fills zero-valued fields that have sensible defaults.
// Secrets (sign key, DSN, provider credentials) are never defaulted.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = defaultSessionDuration
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = defaultDBDriver
	}
	if cfg.Assistant.Model == "" {
		cfg.Assistant.Model = defaultAssistantModel
	}
	if cfg.News.RequestTimeout == 0 {
		cfg.News.RequestTimeout = defaultNewsTimeout
	}
	if cfg.Email.From == "" {
		cfg.Email.From = cfg.Email.User
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return ErrInvalidStorageConfigs
	}

	return nil
}
