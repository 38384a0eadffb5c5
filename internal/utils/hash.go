// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests used as upload integrity hashes.
// It keeps a pool of hash instances so concurrent uploads and request
// handlers do not allocate a new HMAC per call.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
//
// Example usage:
//
//	h := utils.NewHasher("my-secret-key")
//	sum := h.Hex(payload)
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum computes an HMAC-SHA256 digest over data using a pooled hasher.
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// Hex returns the hex-encoded digest of data.
func (h *Hasher) Hex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// HexJSON returns the hex digest of the JSON encoding of v. Raw JSON is
// compacted by the encoder, so both ends of a transfer hash the same bytes
// regardless of the whitespace a payload was stored with.
func (h *Hasher) HexJSON(v any) (string, error) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return h.Hex(encoded), nil
}

// VerifyJSON reports whether hexSum is the digest of the JSON encoding of v.
func (h *Hasher) VerifyJSON(v any, hexSum string) bool {
	encoded, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return h.Verify(encoded, hexSum)
}

// Verify reports whether hexSum is the digest of data. The comparison is
// constant-time.
func (h *Hasher) Verify(data []byte, hexSum string) bool {
	want, err := hex.DecodeString(hexSum)
	if err != nil {
		return false
	}
	return hmac.Equal(h.Sum(data), want)
}
