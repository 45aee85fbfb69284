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

// Session domain error codes
//
// These codes describe failures of session state management: loading and
// saving the persisted session, resolving a session by identity, and session
// scope checks.
const (
	// SessionLoadFailed indicates that the persisted session state could not
	// be restored. This is a safety-relevant condition: a pipeline that
	// cannot restore its session must not keep running on guessed state.
	// The underlying I/O or decode failure is typically attached as the
	// error cause.
	SessionLoadFailed Code = "SESSION_LOAD_FAILED"

	// SessionSaveFailed indicates that the session state could not be
	// persisted. Like SessionLoadFailed this is safety-relevant: continuing
	// without durable state risks losing or corrupting pipeline progress.
	SessionSaveFailed Code = "SESSION_SAVE_FAILED"

	// SessionNotFound indicates that the referenced session does not exist.
	// Use this for lookups by path or identifier. Unlike load/save failures
	// this is an ordinary miss, not a safety violation.
	SessionNotFound Code = "SESSION_NOT_FOUND"

	// SessionInvalidBugfixPath indicates that a bugfix-scoped operation was
	// attempted outside a bugfix session. This guards against state
	// corruption from creating fix tasks in feature-implementation sessions.
	// Carried by the BugfixSessionValidationError marker variant.
	SessionInvalidBugfixPath Code = "SESSION_INVALID_BUGFIX_PATH"
)

// Task domain error codes
//
// These codes describe failures of individual units of work. A failing task
// leaves the pipeline's own invariants intact, so these codes are ordinarily
// non-fatal.
const (
	// TaskExecutionFailed indicates that a task ran and failed. This is the
	// fixed code of TaskError and the common "unit of work failed" outcome.
	TaskExecutionFailed Code = "TASK_EXECUTION_FAILED"

	// TaskValidationFailed indicates that a task's definition or output
	// failed validation before or after execution.
	TaskValidationFailed Code = "TASK_VALIDATION_FAILED"

	// TaskNotFound indicates that the referenced task does not exist in the
	// current session.
	TaskNotFound Code = "TASK_NOT_FOUND"
)

// Agent domain error codes
//
// These codes describe failures of agent (LLM) invocations. The codes are
// reserved in the registry even though no dedicated error variant exists:
// agent failures are raised as TaskError with the agent code recorded in
// context metadata, or surface directly through transport mapping.
const (
	// AgentLLMFailed indicates that the model invocation itself failed
	// (provider error, refused request, malformed response envelope).
	AgentLLMFailed Code = "AGENT_LLM_FAILED"

	// AgentTimeout indicates that the agent did not respond within the
	// allotted time budget.
	AgentTimeout Code = "AGENT_TIMEOUT"

	// AgentParseFailed indicates that the agent responded but its output
	// could not be parsed into the expected structure.
	AgentParseFailed Code = "AGENT_PARSE_FAILED"
)

// Validation and resource domain error codes
//
// These codes describe input, schema, and dependency validation failures,
// plus resource budget violations. VALIDATION_NESTED_EXECUTION is special:
// it marks an illegal recursive pipeline invocation and is treated as fatal
// by the classifier.
const (
	// ValidationInvalidInput indicates that caller-supplied input violates a
	// structural or semantic invariant. This is the default code of
	// ValidationError.
	ValidationInvalidInput Code = "VALIDATION_INVALID_INPUT"

	// ValidationMissingField indicates that a required field or parameter is
	// absent.
	ValidationMissingField Code = "VALIDATION_MISSING_FIELD"

	// ValidationSchemaFailed indicates that a document failed schema
	// validation.
	ValidationSchemaFailed Code = "VALIDATION_SCHEMA_FAILED"

	// ValidationCircularDependency indicates that the task graph contains a
	// dependency cycle.
	ValidationCircularDependency Code = "VALIDATION_CIRCULAR_DEPENDENCY"

	// ValidationNestedExecution indicates that a pipeline run was attempted
	// while another run was already in progress. Carried by the
	// NestedExecutionError marker variant and fatal by policy.
	ValidationNestedExecution Code = "VALIDATION_NESTED_EXECUTION"

	// ResourceLimitExceeded indicates that a configured resource budget
	// (tokens, attempts, wall time) was exhausted.
	ResourceLimitExceeded Code = "RESOURCE_LIMIT_EXCEEDED"
)
