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

// Type-membership guards.
//
// These helpers answer "is this value a SessionError / TaskError / ... / any
// PipelineError" for arbitrary values, including non-errors and nil. They
// never panic and judge the value itself — a foreign error that merely wraps
// a pipeline error is not a member. Use errors.As on the error chain when
// unwrap-aware matching is wanted instead.

// IsPipelineError reports whether v is any member of the pipeline error
// family.
func IsPipelineError(v any) bool {
	_, ok := v.(PipelineError)
	return ok
}

// AsPipelineError narrows v to PipelineError.
func AsPipelineError(v any) (PipelineError, bool) {
	pe, ok := v.(PipelineError)
	return pe, ok
}

// IsSessionError reports whether v is a *SessionError.
func IsSessionError(v any) bool {
	_, ok := v.(*SessionError)
	return ok
}

// AsSessionError narrows v to *SessionError.
func AsSessionError(v any) (*SessionError, bool) {
	e, ok := v.(*SessionError)
	return e, ok
}

// IsTaskError reports whether v is a *TaskError.
func IsTaskError(v any) bool {
	_, ok := v.(*TaskError)
	return ok
}

// AsTaskError narrows v to *TaskError.
func AsTaskError(v any) (*TaskError, bool) {
	e, ok := v.(*TaskError)
	return e, ok
}

// IsValidationError reports whether v is a *ValidationError.
func IsValidationError(v any) bool {
	_, ok := v.(*ValidationError)
	return ok
}

// AsValidationError narrows v to *ValidationError.
func AsValidationError(v any) (*ValidationError, bool) {
	e, ok := v.(*ValidationError)
	return e, ok
}
