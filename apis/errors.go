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

package apis

// CodedError represents an error that is classified into a well-defined,
// machine-readable error *code*.
//
// Pipeline codes are stable, enumerable DOMAIN_ACTION_OUTCOME identifiers,
// such as:
//   - "SESSION_LOAD_FAILED"   — session state could not be restored,
//   - "TASK_EXECUTION_FAILED" — a unit of work failed,
//   - "VALIDATION_NESTED_EXECUTION" — illegal recursive invocation.
//
// They are the primary value that higher-level adapters (HTTP, gRPC) use to
// decide which status code to return to the client.
//
// Implementations are expected to return a *canonicalized* code string —
// normalized to the format enforced by the perrors/code package (uppercase,
// underscores, length limits). Adapters should treat unknown or empty codes
// as internal/server errors.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the perrors subsystem. Callers should not
	// try to "fix" or "guess" the value here — if it's invalid, it should be
	// handled as an internal error at the boundary.
	ErrorCode() string
}

// ContextualError represents an error that exposes structured debugging
// context as a flat map. This is what log and transport adapters consume:
// named fields (session path, task id, operation, user id) already merged
// with free-form metadata into one namespace.
//
// Implementations SHOULD return a map that the callee will not modify
// afterwards. Returning nil is allowed and simply means "no context".
type ContextualError interface {
	error

	// ErrorContext returns the flattened context map. May return nil.
	ErrorContext() map[string]any
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
