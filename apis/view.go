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

// ErrorView is a minimal, serializable representation of a pipeline error.
//
// This is *not* the concrete error type used internally — it is the shape
// that we are comfortable exposing over the wire or logging. Keeping it here
// (in apis) allows both HTTP and gRPC adapters to share the same struct.
type ErrorView struct {
	// Name is the variant name, e.g. "SessionError".
	Name string `json:"name,omitempty"`

	// Code is the canonical error code, e.g. "SESSION_LOAD_FAILED".
	//
	// Implementations SHOULD store only normalized, validated codes here.
	Code string `json:"code"`

	// Message is an optional human-friendly message. This is typically the
	// error's full string form.
	Message string `json:"message,omitempty"`

	// Timestamp is the ISO-8601 UTC instant the error was raised.
	Timestamp string `json:"timestamp,omitempty"`

	// Fatal carries the classifier's verdict for this error, so clients can
	// distinguish "the run aborted" from "the failure was recorded and the
	// run went on" without re-implementing the policy.
	Fatal bool `json:"fatal"`

	// Context is the flattened debugging context. It MAY be nil when the
	// error carried no context.
	Context map[string]any `json:"context,omitempty"`

	// Correlation is an optional request/run correlation token added by the
	// transport layer.
	Correlation string `json:"correlation,omitempty"`

	// RetryAfterSeconds is an optional client backoff hint for non-fatal
	// failures. Zero means "no hint".
	RetryAfterSeconds int `json:"retry_after_seconds,omitempty"`
}
