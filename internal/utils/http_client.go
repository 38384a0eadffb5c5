// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client shared by outbound adapters.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that retries a request up to retryCount
// times on transport errors and 5xx responses. 4xx responses are final.
func NewHTTPClient(timeout time.Duration, retryCount int) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(200 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(func(resp *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return resp.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPClient{Client: client}
}
