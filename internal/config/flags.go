// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags from args (os.Args[1:] in the
// binaries). Positional arguments left after the flags are stored in
// [StructuredConfig.Args].
//
// Flags:
//
//	-a reference server listen address in format [host]:[port]
//	-s remote service address used by the client (e.g. http://host:port)
//	-d SQLite database file
//	-f reference data JSON file
//	-c/-config json file path with configs
//	-hash-key upload integrity hash key
//	-token bearer token presented by the client
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-server-timeout inbound request timeout
//	-retry-count transport retries per request
//	-mode sync mode: upload, full or watch
//	-fetch-timeout timeout of a single reference fetch
//	-max-fetches maximum concurrent reference fetches
//	-continue-on-failure keep fetching after the first failure
//	-invalidate-on-commit purge answers and notes only on commit
//	-kinds comma separated record kinds to upload
//	-sync-interval watch mode interval
//	-log-file client log file
//	-app-version application version
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("observer-sync", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN, referenceFile, jsonConfigPath string
	var hashKey, token, tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout, serverTimeout time.Duration
	var retryCount int
	var mode string
	var fetchTimeout time.Duration
	var maxFetches int
	var continueOnFailure, invalidateOnCommit bool
	var kinds string
	var syncInterval time.Duration
	var logFile, appVersion string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Remote service address")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database file")
	fs.StringVar(&referenceFile, "f", "", "Reference data JSON file")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&hashKey, "hash-key", "", "Upload integrity hash key")
	fs.StringVar(&token, "token", "", "Bearer token")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	fs.IntVar(&retryCount, "retry-count", 0, "Transport retries per request")
	fs.StringVar(&mode, "mode", "", "Sync mode: upload, full or watch")
	fs.DurationVar(&fetchTimeout, "fetch-timeout", 0, "Timeout of a single reference fetch")
	fs.IntVar(&maxFetches, "max-fetches", 0, "Maximum concurrent reference fetches")
	fs.BoolVar(&continueOnFailure, "continue-on-failure", false, "Keep fetching after the first failure")
	fs.BoolVar(&invalidateOnCommit, "invalidate-on-commit", false, "Purge answers and notes only on commit")
	fs.StringVar(&kinds, "kinds", "", "Comma separated record kinds to upload")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Watch mode interval")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&appVersion, "app-version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey:       hashKey,
			Token:         token,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			Version:       appVersion,
			LogFile:       logFile,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ReferenceFile: referenceFile},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Sync: Sync{
			Mode:                 mode,
			FetchTimeout:         fetchTimeout,
			MaxConcurrentFetches: maxFetches,
			ContinueOnFailure:    continueOnFailure,
			InvalidateOnCommit:   invalidateOnCommit,
			RecordKinds:          splitList(kinds),
		},
		Workers:      Workers{SyncInterval: syncInterval},
		JSONFilePath: jsonConfigPath,
		Args:         fs.Args(),
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
