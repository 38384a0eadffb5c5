// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownMode    = errors.New("unknown sync mode")
	ErrUsage          = errors.New("usage: add <kind> <payload.json>")
)
