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

package perrors

import "pipex.dev/perrors/code"

// settings accumulates constructor options before the error is frozen.
// It exists only during construction; the resulting error is immutable.
type settings struct {
	ctx   Context
	cause error
	code  code.Code
}

// Option is a functional option for the variant constructors.
//
// Usage:
//
//	return perrors.NewSessionError("failed to load session",
//	    perrors.WithContext(perrors.Context{SessionPath: "/path/to/session"}),
//	    perrors.WithCause(err),
//	)
type Option func(*settings)

// WithContext attaches an already-built Context to the error being
// constructed. A later WithContext replaces an earlier one.
func WithContext(ctx Context) Option {
	return func(s *settings) {
		s.ctx = ctx
	}
}

// WithContextMap attaches a context given as a raw mapping of the Context
// shape ("session_path", "task_id", "operation", "user_id", "metadata").
//
// A mapping with unrecognized keys or ill-typed values is a programmer error:
// this option panics via MustParseContext rather than constructing an error
// with silently dropped fields.
func WithContextMap(m map[string]any) Option {
	return func(s *settings) {
		s.ctx = MustParseContext(m)
	}
}

// WithCause attaches the underlying error that triggered this one. The cause
// is shared by reference, never copied, and is used for diagnostic chaining
// only — it does not alter the error's own code or message. If err is nil the
// option is a no-op.
func WithCause(err error) Option {
	return func(s *settings) {
		if err != nil {
			s.cause = err
		}
	}
}

// WithCode selects the error code for variants whose code is selectable
// (SessionError, ValidationError). Variants with a fixed code ignore this
// option. Passing code.Empty is a no-op and keeps the variant's default.
func WithCode(c code.Code) Option {
	return func(s *settings) {
		s.code = c
	}
}

// WithMeta adds a single metadata key/value to the context being attached.
// It composes with WithContext: apply WithContext first, then WithMeta for
// extra entries. The metadata map is copied before the write, so a Context
// shared with the caller is never mutated.
func WithMeta(k string, v any) Option {
	return func(s *settings) {
		m := make(map[string]any, len(s.ctx.Metadata)+1)
		for k0, v0 := range s.ctx.Metadata {
			m[k0] = v0
		}
		m[k] = v
		s.ctx.Metadata = m
	}
}
