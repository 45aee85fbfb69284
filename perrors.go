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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"pipex.dev/perrors/code"
)

// PipelineError is the closed family of failure values produced by the
// pipeline. Every member carries:
//
//   - Code: stable, machine-readable classification (required, from code);
//   - Message: human-oriented description (what went wrong);
//   - Timestamp: UTC instant of construction;
//   - Context: structured debugging fields, fixed at construction;
//   - Cause: optional wrapped underlying error for diagnostic chaining.
//
// The interface is sealed: only the concrete variants in this package
// (SessionError, TaskError, ValidationError, BugfixSessionValidationError,
// NestedExecutionError) implement it. There is no way to construct the shared
// base directly — callers must go through one of the variant constructors.
//
// All values are immutable after construction and safe to share across
// goroutines without coordination.
type PipelineError interface {
	error

	// Name returns the variant name, e.g. "SessionError". It is the value
	// serialized as the "name" field of Record.
	Name() string

	// Code returns the stable error code for programmatic handling.
	// The value is always a member of the code registry.
	Code() code.Code

	// Message returns the bare human-readable message, without the code
	// prefix or context suffix that Error() adds.
	Message() string

	// Timestamp returns the UTC instant at which the error was constructed.
	Timestamp() time.Time

	// Context returns the debugging context attached at construction.
	// The returned value is treated as immutable; callers must not modify
	// its Metadata map.
	Context() Context

	// Unwrap returns the wrapped cause, enabling errors.Is / errors.As
	// chains. It returns nil when no cause was attached.
	Unwrap() error

	// Record returns the structured, serializable form of the error.
	Record() Record

	// JSON returns the canonical JSON encoding of Record(), pretty-printed
	// with two-space indentation.
	JSON() ([]byte, error)

	// sealed prevents implementations outside this package.
	sealed()
}

// base carries the state shared by every variant. It is unexported so the
// hierarchy stays closed: a PipelineError can only come into existence
// through one of the New* constructors, which stamp the timestamp and
// normalize the context.
type base struct {
	name    string
	code    code.Code
	message string
	ts      time.Time
	ctx     Context
	cause   error
}

// newBase applies the options and stamps the construction instant.
//
// fixed is the variant's default (or only) code. Variants with a selectable
// code pass selectable=true, which lets WithCode replace the default;
// fixed-code variants pass false and keep their code regardless of options.
func newBase(name string, fixed code.Code, msg string, opts []Option, selectable bool) base {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	c := fixed
	if selectable && s.code != code.Empty {
		c = s.code
	}
	return base{
		name:    name,
		code:    c,
		message: msg,
		ts:      time.Now().UTC(),
		ctx:     s.ctx,
		cause:   s.cause,
	}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	[<code>] <message>
//
// or, when the context is non-empty:
//
//	[<code>] <message> | Context: map[...]
//
// fmt prints maps with sorted keys, so the context suffix is deterministic.
func (e *base) Error() string {
	if m := e.ctx.Map(); len(m) > 0 {
		return fmt.Sprintf("[%s] %s | Context: %v", e.code, e.message, m)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Name returns the variant name set by the constructor.
func (e *base) Name() string { return e.name }

// Code returns the error's code. It never changes after construction.
func (e *base) Code() code.Code { return e.code }

// Message returns the bare message passed to the constructor.
func (e *base) Message() string { return e.message }

// Timestamp returns the UTC construction instant.
func (e *base) Timestamp() time.Time { return e.ts }

// Context returns the attached context.
func (e *base) Context() Context { return e.ctx }

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *base) Unwrap() error { return e.cause }

func (e *base) sealed() {}

// Record is the serializable form of a PipelineError. Field order and
// presence rules are part of the contract consumed by downstream log
// tooling: name, code, message, and timestamp are always present; context
// appears only when the context map is non-empty; cause only when a cause
// was attached.
type Record struct {
	// Name is the variant name, e.g. "SessionError".
	Name string `json:"name"`

	// Code is the wire identifier, e.g. "SESSION_LOAD_FAILED".
	Code string `json:"code"`

	// Message is the full string form of the error — the same value Error()
	// returns, including the code prefix and context suffix.
	Message string `json:"message"`

	// Timestamp is the ISO-8601 UTC construction instant.
	Timestamp string `json:"timestamp"`

	// Context holds the flattened context map, omitted when empty.
	Context map[string]any `json:"context,omitempty"`

	// Cause summarizes the immediate cause, omitted when none was attached.
	Cause *CauseRecord `json:"cause,omitempty"`
}

// CauseRecord is the fixed two-field summary of a wrapped cause. Only the
// immediate cause is summarized — the chain is never unrolled, regardless of
// how rich the cause's own structure is.
type CauseRecord struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Record returns the structured form of the error.
func (e *base) Record() Record {
	r := Record{
		Name:      e.name,
		Code:      e.code.String(),
		Message:   e.Error(),
		Timestamp: e.ts.Format(time.RFC3339Nano),
	}
	if m := e.ctx.Map(); len(m) > 0 {
		r.Context = m
	}
	if e.cause != nil {
		r.Cause = &CauseRecord{
			Name:    causeName(e.cause),
			Message: e.cause.Error(),
		}
	}
	return r
}

// JSON returns the Record encoded as pretty-printed JSON (two-space indent).
func (e *base) JSON() ([]byte, error) {
	return json.MarshalIndent(e.Record(), "", "  ")
}

// causeName derives a short type name for a cause. Pipeline errors report
// their own variant name; foreign errors fall back to their Go type name
// with the pointer marker and package path stripped.
func causeName(err error) string {
	type named interface{ Name() string }
	if n, ok := err.(named); ok {
		return n.Name()
	}
	t := fmt.Sprintf("%T", err)
	t = strings.TrimPrefix(t, "*")
	if i := strings.LastIndexByte(t, '.'); i >= 0 {
		t = t[i+1:]
	}
	return t
}
