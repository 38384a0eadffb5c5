// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress        = "localhost:8080"
	defaultServerRequestTimeout = 15 * time.Second
	defaultTokenDuration        = 24 * time.Hour
	defaultTokenIssuer          = "observer-sync"
)

// ServerApp holds the reference server's token and hashing settings.
type ServerApp struct {
	HashKey       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
}

// ServerConfig is the reference server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App ServerApp
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string
	// RequestTimeout bounds a single request.
	RequestTimeout time.Duration
	// ReferenceFile is the JSON file with the served form definitions.
	ReferenceFile string
	// Args holds the positional sub-command arguments.
	Args []string
}

// GetServerConfig builds and validates the reference server config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			HashKey:       cfg.App.HashKey,
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
		},
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		ReferenceFile:  cfg.Storage.Files.ReferenceFile,
		Args:           cfg.Args,
	}

	if serverCfg.HTTPAddress == "" {
		serverCfg.HTTPAddress = defaultServerAddress
	}
	if serverCfg.RequestTimeout == 0 {
		serverCfg.RequestTimeout = defaultServerRequestTimeout
	}
	if serverCfg.App.TokenDuration == 0 {
		serverCfg.App.TokenDuration = defaultTokenDuration
	}
	if serverCfg.App.TokenIssuer == "" {
		serverCfg.App.TokenIssuer = defaultTokenIssuer
	}

	return serverCfg
}
