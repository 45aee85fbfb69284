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
	"google.golang.org/grpc/codes"

	"pipex.dev/perrors/code"
	"pipex.dev/perrors/mapper/internal/segmenttrie"
)

// freezeHTTPMap copies an HTTP status map into a fresh allocation so the
// mapper snapshot never aliases builder state.
func freezeHTTPMap(src map[code.Code]int) map[code.Code]int {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]int, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// freezeGRPCMap copies a gRPC status map, converting the builder's int
// representation into codes.Code.
func freezeGRPCMap(src map[code.Code]int) map[code.Code]codes.Code {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[code.Code]codes.Code, len(src))
	for k, v := range src {
		dst[k] = codes.Code(v)
	}
	return dst
}

// nilIfEmptyTrie drops a trie that received no rules, so lookups can skip
// the trie tier with a plain nil check.
func nilIfEmptyTrie[T any](t *segmenttrie.Trie[T], rules int) *segmenttrie.Trie[T] {
	if rules == 0 {
		return nil
	}
	return t
}
