// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-s", "http://127.0.0.1:8081",
		"-d", "observer.db",
		"-f", "forms.json",
		"-c", "cfg.json",
		"-hash-key", "hash",
		"-token", "tok",
		"-token-sign-key", "sign",
		"-token-issuer", "iss",
		"-token-duration", "1h",
		"-request-timeout", "30s",
		"-server-timeout", "5s",
		"-retry-count", "2",
		"-mode", "upload",
		"-fetch-timeout", "2s",
		"-max-fetches", "8",
		"-continue-on-failure",
		"-invalidate-on-commit",
		"-kinds", "branch_details, note",
		"-sync-interval", "45s",
		"-log-file", "client.log",
		"-app-version", "0.1.0",
		"add", "note", "note.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, Adapter{HTTPAddress: "http://127.0.0.1:8081", RequestTimeout: 30 * time.Second, RetryCount: 2}, cfg.Adapter)
	assert.Equal(t, "observer.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "forms.json", cfg.Storage.Files.ReferenceFile)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, App{
		HashKey:       "hash",
		Token:         "tok",
		TokenSignKey:  "sign",
		TokenIssuer:   "iss",
		TokenDuration: time.Hour,
		Version:       "0.1.0",
		LogFile:       "client.log",
	}, cfg.App)
	assert.Equal(t, Sync{
		Mode:                 "upload",
		FetchTimeout:         2 * time.Second,
		MaxConcurrentFetches: 8,
		ContinueOnFailure:    true,
		InvalidateOnCommit:   true,
		RecordKinds:          []string{"branch_details", "note"},
	}, cfg.Sync)
	assert.Equal(t, 45*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, []string{"add", "note", "note.json"}, cfg.Args)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Nil(t, cfg.Sync.RecordKinds)
	assert.Empty(t, cfg.Args)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-fetch-timeout", "soon"})
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: NetAddress{Host: "localhost", Port: 8080}},
		{name: "ip", input: "10.0.0.1:443", want: NetAddress{Host: "10.0.0.1", Port: 443}},
		{name: "empty host", input: ":9000", want: NetAddress{Port: 9000}},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad ip", input: "999.1.1.1:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Equal(t, "", (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
	assert.Equal(t, ":9000", (&NetAddress{Port: 9000}).String())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList("  "))
	assert.Equal(t, []string{"a", "b"}, splitList("a, ,b,"))
}
