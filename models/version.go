// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"strings"
)

// VersionEntry identifies one unit of remote reference data (a form
// definition) by a stable key and an opaque version token.
type VersionEntry struct {
	Key     string `json:"key"`
	Version string `json:"version"`
}

// VersionSet is a collection of [VersionEntry] kept ordered by key.
// The locally cached set is compared against the remote-advertised one on
// every full sync and replaced wholesale only after a fully successful fetch.
type VersionSet []VersionEntry

// Normalize returns a copy of v sorted by key. When a key occurs more than
// once the last occurrence wins.
func (v VersionSet) Normalize() VersionSet {
	idx := v.Index()
	out := make(VersionSet, 0, len(idx))
	for key, version := range idx {
		out = append(out, VersionEntry{Key: key, Version: version})
	}
	slices.SortFunc(out, func(a, b VersionEntry) int {
		return strings.Compare(a.Key, b.Key)
	})
	return out
}

// Index returns the set as a key → version map.
func (v VersionSet) Index() map[string]string {
	idx := make(map[string]string, len(v))
	for _, e := range v {
		idx[e.Key] = e.Version
	}
	return idx
}

// Keys returns the sorted keys of the set.
func (v VersionSet) Keys() []string {
	n := v.Normalize()
	keys := make([]string, 0, len(n))
	for _, e := range n {
		keys = append(keys, e.Key)
	}
	return keys
}

// Equal reports set equality over (key, version) pairs. Order is ignored.
func (v VersionSet) Equal(other VersionSet) bool {
	a, b := v.Index(), other.Index()
	if len(a) != len(b) {
		return false
	}
	for key, version := range a {
		if ov, ok := b[key]; !ok || ov != version {
			return false
		}
	}
	return true
}

// Outdated returns, sorted, the keys of remote whose version differs from the
// one in v or which are absent from v. Keys present only in v are not
// reported: there is nothing to fetch for them.
func (v VersionSet) Outdated(remote VersionSet) []string {
	local := v.Index()
	var keys []string
	for _, e := range remote.Normalize() {
		if version, ok := local[e.Key]; !ok || version != e.Version {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Lookup returns the version stored for key.
func (v VersionSet) Lookup(key string) (string, bool) {
	for _, e := range v {
		if e.Key == key {
			return e.Version, true
		}
	}
	return "", false
}
