/*
   Copyright 2026 The Pipex Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"errors"
	"strings"
)

// Trie is a segment-aware prefix index for underscore-separated pipeline
// error codes. Each node represents one code segment (e.g. "SESSION",
// "LOAD", "FAILED"); the wildcard "*" matches exactly one segment. The trie
// supports longest-prefix-match (LPM) on segment boundaries, so a more
// specific rule wins over a shorter one:
//
//	"SESSION"      matches every session-domain code;
//	"SESSION_LOAD" beats "SESSION" for SESSION_LOAD_FAILED;
//	"*_TIMEOUT"    matches AGENT_TIMEOUT, TASK_TIMEOUT, ...
type Trie[T any] struct {
	// children contains next segments, including "*" for a single-segment
	// wildcard.
	children map[string]*Trie[T]
	// hasVal marks that this node carries a value for the prefix ending here.
	hasVal bool
	val    T
	// pattern is the canonical underscore-joined prefix (with '*' if a
	// wildcard was used) for this node, set only when hasVal=true. It is
	// returned by MatchWithPattern for Explain(), so lookups never build
	// strings.
	pattern string
}

var (
	// ErrInvalidPrefix is returned when inserting a prefix that is empty,
	// has empty segments, contains invalid characters, or consists only of
	// wildcards.
	ErrInvalidPrefix = errors.New("segmenttrie: invalid prefix")
)

// New creates an empty trie ready for inserts.
func New[T any]() *Trie[T] {
	return &Trie[T]{children: make(map[string]*Trie[T])}
}

// Insert adds an underscore-separated prefix to the trie and associates it
// with val.
//
// Examples:
//
//	"SESSION"
//	"SESSION_LOAD"
//	"*_TIMEOUT"
//
// The wildcard "*" matches exactly one segment. A prefix made only of "*"
// segments is rejected, because it would catch everything. Returns
// ErrInvalidPrefix on malformed input.
func (t *Trie[T]) Insert(prefix string, val T) error {
	if t == nil {
		return ErrInvalidPrefix
	}
	segs, ok := splitAndValidate(prefix, true /* allowWildcard */)
	if !ok || len(segs) == 0 {
		return ErrInvalidPrefix
	}

	// Require at least one non-wildcard segment to avoid catching everything.
	allWild := true
	for _, s := range segs {
		if s != "*" {
			allWild = false
			break
		}
	}
	if allWild {
		return ErrInvalidPrefix
	}

	cur := t
	for _, s := range segs {
		child, exists := cur.children[s]
		if !exists {
			child = New[T]()
			cur.children[s] = child
		}
		cur = child
	}
	cur.hasVal = true
	cur.val = val
	if cur.pattern == "" {
		// build pattern once; cost is at build time, not on hot path
		cur.pattern = prefix
	}
	return nil
}

// Match finds the best (deepest) prefix match for a full code string.
// The code is treated as an underscore-separated sequence of segments.
// Both exact segment matches and "*" wildcard branches are explored.
// It returns (value, true) on success.
// If the code is malformed or nothing matches, it returns the zero value
// and false.
func (t *Trie[T]) Match(key string) (T, bool) {
	v, ok, _ := t.MatchWithPattern(key)
	return v, ok
}

// MatchWithPattern returns the matched value together with the stored rule
// pattern, for use by Explain(). The traversal walks the key in place — no
// per-segment allocations — and keeps the deepest node that carried a value.
func (t *Trie[T]) MatchWithPattern(key string) (T, bool, string) {
	var zero T
	if t == nil {
		return zero, false, ""
	}
	bestDepth := -1
	var bestVal T
	var bestPat string

	// dfs scans the next segment starting at byte offset 'off', with 'depth'
	// segments already consumed.
	var dfs func(n *Trie[T], off, depth int)
	dfs = func(n *Trie[T], off, depth int) {
		if n.hasVal && depth > bestDepth {
			bestDepth = depth
			bestVal = n.val
			bestPat = n.pattern
		}
		if off >= len(key) {
			return
		}

		// parse next segment [off:next), validating [A-Z][A-Z0-9]*
		i := off
		c := key[i]
		if c < 'A' || c > 'Z' {
			return // invalid segment => stop this path
		}
		i++
		for i < len(key) {
			c = key[i]
			if c == '_' {
				break
			}
			if !((c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')) {
				return // invalid char => stop
			}
			i++
		}
		seg := key[off:i] // substring; no heap alloc
		nextOff := i
		if nextOff < len(key) && key[nextOff] == '_' {
			nextOff++
		}

		// exact branch
		if next, ok := n.children[seg]; ok {
			dfs(next, nextOff, depth+1)
		}
		// wildcard branch
		if next, ok := n.children["*"]; ok {
			dfs(next, nextOff, depth+1)
		}
	}

	dfs(t, 0, 0)
	if bestDepth < 0 {
		return zero, false, ""
	}
	return bestVal, true, bestPat
}

// splitAndValidate splits an underscore-separated string into segments and
// validates each segment according to validSegment(). When
// allowWildcard=true, a segment that is exactly "*" is accepted.
// Returns (segments, true) on success, or (nil, false) on invalid input.
//
// Note: an empty string is treated as an empty (but valid) segment list
// to make matching against "" possible in callers.
func splitAndValidate(s string, allowWildcard bool) ([]string, bool) {
	if s == "" {
		return []string{}, true
	}
	segs := strings.Split(s, "_")
	for _, seg := range segs {
		if !validSegment(seg, allowWildcard) {
			return nil, false
		}
	}
	return segs, true
}

// validSegment reports whether seg is a valid trie segment.
// Rules:
//   - empty segments are invalid;
//   - when allowWildcard=true, the segment "*" is allowed;
//   - otherwise the segment must match: [A-Z][A-Z0-9]*
//
// These rules keep code prefixes aligned with the grammar enforced by the
// perrors/code package.
func validSegment(seg string, allowWildcard bool) bool {
	if seg == "" {
		return false
	}
	if allowWildcard && seg == "*" {
		return true
	}
	// [A-Z][A-Z0-9]*
	if seg[0] < 'A' || seg[0] > 'Z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
