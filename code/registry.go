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

package code

import "sort"

// registry is the closed set of codes declared in codes.go. It is built once
// at package init and never mutated afterwards, so concurrent reads need no
// coordination. New codes are added only by extending codes.go — there is no
// dynamic registration.
var registry = map[Code]struct{}{
	SessionLoadFailed:        {},
	SessionSaveFailed:        {},
	SessionNotFound:          {},
	SessionInvalidBugfixPath: {},

	TaskExecutionFailed:  {},
	TaskValidationFailed: {},
	TaskNotFound:         {},

	AgentLLMFailed:   {},
	AgentTimeout:     {},
	AgentParseFailed: {},

	ValidationInvalidInput:       {},
	ValidationMissingField:       {},
	ValidationSchemaFailed:       {},
	ValidationCircularDependency: {},
	ValidationNestedExecution:    {},
	ResourceLimitExceeded:        {},
}

// Registered reports whether c is a member of the closed code registry.
//
// It never panics and accepts arbitrary Code values, including the empty
// code (which is never registered).
func Registered(c Code) bool {
	_, ok := registry[c]
	return ok
}

// All returns the registered codes in lexical order. The returned slice is
// freshly allocated on every call, so callers may modify it freely.
func All() []Code {
	out := make([]Code, 0, len(registry))
	for c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
