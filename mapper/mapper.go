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

package mapper

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"

	"pipex.dev/perrors/apis"
	"pipex.dev/perrors/code"
	"pipex.dev/perrors/mapper/internal/segmenttrie"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained mapper instance — no shared
// references to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC) for every
//     registered code.
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all code prefixes (via code.Normalize).
//  4. Build segment tries (HTTP & gRPC) supporting longest-prefix-match
//     over code segments, with '*' as a single-segment wildcard.
//  5. Freeze all maps and tries into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid prefixes or
// configuration issues during normalization or trie construction.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, prefixes, etc.).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Build the HTTP prefix trie.
	// Each rule prefix is normalized and validated before insertion.
	httpTrie := segmenttrie.New[int]()
	for _, r := range b.httpPrefixes {
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid HTTP code-prefix %q: %w", r.prefix, err)
		}
		if err := httpTrie.Insert(p, r.val); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert HTTP prefix %q: %w", p, err)
		}
	}

	// (4) Build the gRPC prefix trie.
	// Values are stored as int in the builder and converted to codes.Code here.
	grpcTrie := segmenttrie.New[codes.Code]()
	for _, r := range b.grpcPrefixes {
		p, err := normalizeAndValidatePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid gRPC code-prefix %q: %w", r.prefix, err)
		}
		if err := grpcTrie.Insert(p, codes.Code(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert gRPC prefix %q: %w", p, err)
		}
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated; tries are immutable after build.
	m := &mapper{
		httpDefault:  freezeHTTPMap(b.httpDefaults),
		grpcDefault:  freezeGRPCMap(b.grpcDefaults),
		httpOverride: freezeHTTPMap(b.httpOverride),
		grpcOverride: freezeGRPCMap(b.grpcOverride),
		httpTrie:     nilIfEmptyTrie(httpTrie, len(b.httpPrefixes)),
		grpcTrie:     nilIfEmptyTrie(grpcTrie, len(b.grpcPrefixes)),

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-code
// defaults, exact per-code overrides, and segment-aware prefix tries over
// the codes themselves. Lookups are O(depth) and safe for concurrent use
// once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given error code.
	// Used when no prefix rule and no override are present.
	httpDefault map[code.Code]int

	// grpcDefault holds the base gRPC status for a given error code.
	grpcDefault map[code.Code]codes.Code

	// httpOverride holds explicit HTTP statuses for specific codes.
	// These take precedence over prefix rules and defaults.
	httpOverride map[code.Code]int

	// grpcOverride holds explicit gRPC statuses for specific codes.
	grpcOverride map[code.Code]codes.Code

	// httpTrie resolves HTTP statuses from code-segment prefixes
	// (underscore-separated, with "*" for one-segment wildcards).
	httpTrie *segmenttrie.Trie[int]

	// grpcTrie resolves gRPC statuses from code-segment prefixes.
	grpcTrie *segmenttrie.Trie[codes.Code]

	// fallbackHTTP is used when there is no mapping at all for a code.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a code.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given code.
//
// Resolution order (highest to lowest):
//  1. exact per-code override (explicitly registered);
//  2. longest-prefix-match rule over the code's segments;
//  3. per-code default (library or user overridden);
//  4. hardcoded ultimate fallback (500).
func (m *mapper) HTTPStatus(c code.Code) int {
	// 1. Fast path: exact override for this code.
	if v, ok := m.httpOverride[c]; ok {
		return v
	}

	// 2. Prefix LPM over the code segments.
	if m.httpTrie != nil {
		if v, ok := m.httpTrie.Match(string(c)); ok {
			return v
		}
	}

	// 3. Per-code default.
	if v, ok := m.httpDefault[c]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given code.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-code override;
//  2. LPM over the code segments;
//  3. per-code default;
//  4. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(c code.Code) codes.Code {
	// 1. Exact override.
	if v, ok := m.grpcOverride[c]; ok {
		return v
	}

	// 2. Trie-based LPM for this code.
	if m.grpcTrie != nil {
		if v, ok := m.grpcTrie.Match(string(c)); ok {
			return v
		}
	}

	// 3. Default for this code.
	if v, ok := m.grpcDefault[c]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return m.fallbackGRPC
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/gRPC decisions consistent for a single logical error.
func (m *mapper) Status(c code.Code) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(c),
		GRPC: m.GRPCStatus(c),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular code.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, or fallback) and, for prefix matches,
// which pattern was used.
//
// Example output:
//
//	code="SESSION_NOT_FOUND"
//	http: source=prefix pattern="SESSION" -> 500
//	grpc: source=default -> NOTFOUND(5)
//
// Notes:
//   - source ∈ {override | prefix | default | fallback}
//   - pattern is the rule as it was stored in the trie (may contain "*")
func (m *mapper) Explain(c code.Code) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "code=%q\n", c)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(c))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(c))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns a formatted line describing how the HTTP status was
// chosen.
func (m *mapper) explainHTTP(c code.Code) string {
	// 1) exact per-code override
	if v, ok := m.httpOverride[c]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}

	// 2) LPM over the code segments
	if m.httpTrie != nil {
		if v, ok, pat := m.httpTrie.MatchWithPattern(string(c)); ok {
			return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
		}
	}

	// 3) per-code default
	if v, ok := m.httpDefault[c]; ok {
		return fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns a formatted line describing how the gRPC status was
// chosen.
func (m *mapper) explainGRPC(c code.Code) string {
	// 1) exact per-code override
	if v, ok := m.grpcOverride[c]; ok {
		return fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 2) LPM over the code segments
	if m.grpcTrie != nil {
		if v, ok, pat := m.grpcTrie.MatchWithPattern(string(c)); ok {
			return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s(%d)", pat, strings.ToUpper(v.String()), int(v))
		}
	}

	// 3) per-code default
	if v, ok := m.grpcDefault[c]; ok {
		return fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}

// normalizeAndValidatePrefix ensures a code prefix is canonical and valid.
// It forbids empty strings as prefixes and all-wildcard patterns, and aligns
// segments with the grammar of the code package.
func normalizeAndValidatePrefix(raw string) (string, error) {
	p := code.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	segs := strings.Split(p, "_")
	allWild := true
	for _, seg := range segs {
		if !validPrefixSegment(seg) { // allows "*" or [A-Z][A-Z0-9]*
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg is a valid trie segment for
// prefixes. Rules:
//   - empty segments are invalid;
//   - the segment "*" is allowed;
//   - otherwise the segment must match: [A-Z][A-Z0-9]*
func validPrefixSegment(seg string) bool {
	if seg == "" {
		return false
	}
	if seg == "*" {
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
