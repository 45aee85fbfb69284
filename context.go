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

import (
	"errors"
	"fmt"
)

// Context is the structured debugging payload attached to a pipeline error
// at the point it is raised. It is constructed once, owned by the error that
// holds it, and immutable thereafter — the context is NOT progressively
// enriched as the error propagates.
//
// All named fields are optional; the empty string means "absent" and such
// fields are dropped from the serialized form. Metadata carries arbitrary
// extra key/values that are flattened into the same namespace as the named
// fields during serialization.
type Context struct {
	// SessionPath is the path to the session directory.
	SessionPath string

	// TaskID is the task or subtask identifier, e.g. "P1.M1.T1".
	TaskID string

	// Operation names the operation being performed when the failure
	// occurred, e.g. "load_session".
	Operation string

	// UserID identifies the user on whose behalf the pipeline was running.
	UserID string

	// Metadata carries additional key/value pairs. Keys that collide with a
	// named field ("session_path", "task_id", "operation", "user_id")
	// overwrite it in the flattened map — last write wins. Insertion order
	// is irrelevant.
	Metadata map[string]any
}

// Context map keys for the named fields. Kept as constants so ParseContext
// and Map stay in sync.
const (
	keySessionPath = "session_path"
	keyTaskID      = "task_id"
	keyOperation   = "operation"
	keyUserID      = "user_id"
	keyMetadata    = "metadata"
)

// ErrContextInvalid is returned by ParseContext when a raw mapping does not
// have the expected shape (unrecognized key or ill-typed value). Supplying a
// malformed context is a programmer error and is never swallowed.
var ErrContextInvalid = errors.New("perrors: invalid context")

// Map flattens the context into a single map: named fields that are present,
// followed by all metadata entries merged into the same namespace. A
// metadata key equal to a named-field key overwrites the field's value.
//
// The returned map is freshly allocated; an empty context yields nil.
func (c Context) Map() map[string]any {
	if c.IsEmpty() {
		return nil
	}
	m := make(map[string]any, 4+len(c.Metadata))
	if c.SessionPath != "" {
		m[keySessionPath] = c.SessionPath
	}
	if c.TaskID != "" {
		m[keyTaskID] = c.TaskID
	}
	if c.Operation != "" {
		m[keyOperation] = c.Operation
	}
	if c.UserID != "" {
		m[keyUserID] = c.UserID
	}
	for k, v := range c.Metadata {
		m[k] = v
	}
	return m
}

// IsEmpty reports whether the context carries no fields at all.
func (c Context) IsEmpty() bool {
	return c.SessionPath == "" &&
		c.TaskID == "" &&
		c.Operation == "" &&
		c.UserID == "" &&
		len(c.Metadata) == 0
}

// ParseContext converts a raw mapping of the Context shape into a Context.
//
// Recognized keys are "session_path", "task_id", "operation", "user_id"
// (string values) and "metadata" (a map[string]any). Any other key, or a
// value of the wrong type, yields an error wrapping ErrContextInvalid.
//
// The metadata map is copied, so later mutations of the input do not leak
// into the constructed context.
func ParseContext(m map[string]any) (Context, error) {
	var c Context
	for k, v := range m {
		switch k {
		case keySessionPath:
			s, ok := v.(string)
			if !ok {
				return Context{}, fmt.Errorf("%w: %q must be a string, got %T", ErrContextInvalid, k, v)
			}
			c.SessionPath = s
		case keyTaskID:
			s, ok := v.(string)
			if !ok {
				return Context{}, fmt.Errorf("%w: %q must be a string, got %T", ErrContextInvalid, k, v)
			}
			c.TaskID = s
		case keyOperation:
			s, ok := v.(string)
			if !ok {
				return Context{}, fmt.Errorf("%w: %q must be a string, got %T", ErrContextInvalid, k, v)
			}
			c.Operation = s
		case keyUserID:
			s, ok := v.(string)
			if !ok {
				return Context{}, fmt.Errorf("%w: %q must be a string, got %T", ErrContextInvalid, k, v)
			}
			c.UserID = s
		case keyMetadata:
			mm, ok := v.(map[string]any)
			if !ok {
				return Context{}, fmt.Errorf("%w: %q must be a map[string]any, got %T", ErrContextInvalid, k, v)
			}
			if len(mm) > 0 {
				c.Metadata = make(map[string]any, len(mm))
				for mk, mv := range mm {
					c.Metadata[mk] = mv
				}
			}
		default:
			return Context{}, fmt.Errorf("%w: unrecognized key %q", ErrContextInvalid, k)
		}
	}
	return c, nil
}

// MustParseContext is the panic-on-error variant of ParseContext. Use it
// when the mapping is a literal under the caller's control, where a malformed
// shape is a bug that should surface immediately.
func MustParseContext(m map[string]any) Context {
	c, err := ParseContext(m)
	if err != nil {
		panic(err)
	}
	return c
}
