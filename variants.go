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

// Compile-time checks that every variant satisfies the sealed interface.
var (
	_ PipelineError = (*SessionError)(nil)
	_ PipelineError = (*TaskError)(nil)
	_ PipelineError = (*ValidationError)(nil)
	_ PipelineError = (*BugfixSessionValidationError)(nil)
	_ PipelineError = (*NestedExecutionError)(nil)
)

// SessionError reports a session management failure: loading or saving the
// persisted session, or resolving a session by identity.
//
// The code is selectable per instance via WithCode and defaults to
// code.SessionLoadFailed. Load and save failures are safety-relevant — the
// classifier treats them as fatal — while other session codes (e.g.
// SESSION_NOT_FOUND) are ordinary misses.
type SessionError struct{ base }

// NewSessionError constructs a SessionError. The code defaults to
// code.SessionLoadFailed; use WithCode to select another session code.
func NewSessionError(msg string, opts ...Option) *SessionError {
	return &SessionError{newBase("SessionError", code.SessionLoadFailed, msg, opts, true)}
}

// IsLoadError reports whether the error carries code.SessionLoadFailed.
func (e *SessionError) IsLoadError() bool { return e.code == code.SessionLoadFailed }

// IsSaveError reports whether the error carries code.SessionSaveFailed.
func (e *SessionError) IsSaveError() bool { return e.code == code.SessionSaveFailed }

// TaskError reports that a unit of work failed. Task failures leave the
// pipeline's own invariants intact, so the classifier never treats them as
// fatal. The code is fixed to code.TaskExecutionFailed.
type TaskError struct{ base }

// NewTaskError constructs a TaskError.
func NewTaskError(msg string, opts ...Option) *TaskError {
	return &TaskError{newBase("TaskError", code.TaskExecutionFailed, msg, opts, false)}
}

// ValidationError reports an input, schema, or dependency validation
// failure. The code is selectable per instance via WithCode and defaults to
// code.ValidationInvalidInput. Only code.ValidationNestedExecution makes a
// ValidationError fatal.
type ValidationError struct{ base }

// NewValidationError constructs a ValidationError. The code defaults to
// code.ValidationInvalidInput; use WithCode to select another validation
// code.
func NewValidationError(msg string, opts ...Option) *ValidationError {
	return &ValidationError{newBase("ValidationError", code.ValidationInvalidInput, msg, opts, true)}
}

// BugfixSessionValidationError signals that a bugfix-scoped operation was
// attempted outside a bugfix session. It is a marker variant with no extra
// fields and a fixed code of code.SessionInvalidBugfixPath; the classifier
// treats every instance as fatal.
type BugfixSessionValidationError struct{ base }

// NewBugfixSessionValidationError constructs a BugfixSessionValidationError.
func NewBugfixSessionValidationError(msg string, opts ...Option) *BugfixSessionValidationError {
	return &BugfixSessionValidationError{newBase("BugfixSessionValidationError", code.SessionInvalidBugfixPath, msg, opts, false)}
}

// NestedExecutionError signals an illegitimate recursive pipeline
// invocation: a run was started while another run was already in progress.
// It is a marker variant with a fixed code of
// code.ValidationNestedExecution; the classifier treats every instance as
// fatal.
type NestedExecutionError struct{ base }

// NewNestedExecutionError constructs a NestedExecutionError.
func NewNestedExecutionError(msg string, opts ...Option) *NestedExecutionError {
	return &NestedExecutionError{newBase("NestedExecutionError", code.ValidationNestedExecution, msg, opts, false)}
}
