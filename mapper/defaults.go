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
	"net/http"

	"google.golang.org/grpc/codes"

	"pipex.dev/perrors/code"
)

// defaultHTTP defines the library's built-in HTTP mappings for every
// registered pipeline error code. These are only defaults: callers are
// expected to override them at the boundary where HTTP is actually produced
// if a different policy is required.
//
// The intent is to stay close to common REST conventions while reflecting
// pipeline semantics: state-persistence failures are server errors, misses
// are 404, scope and recursion violations are conflicts, validation is 400.
var defaultHTTP = map[code.Code]int{
	// Session domain.
	code.SessionLoadFailed:        http.StatusInternalServerError, // Cannot restore session state; nothing the client did wrong.
	code.SessionSaveFailed:        http.StatusInternalServerError, // Cannot persist session state.
	code.SessionNotFound:          http.StatusNotFound,            // Referenced session does not exist.
	code.SessionInvalidBugfixPath: http.StatusConflict,            // Bugfix-scoped operation in a non-bugfix session.

	// Task domain.
	code.TaskExecutionFailed:  http.StatusInternalServerError, // A unit of work failed while running.
	code.TaskValidationFailed: http.StatusBadRequest,          // Task definition or output failed validation.
	code.TaskNotFound:         http.StatusNotFound,            // Referenced task does not exist.

	// Agent domain.
	code.AgentLLMFailed:   http.StatusBadGateway,     // Model provider failed; visible as an upstream failure.
	code.AgentTimeout:     http.StatusGatewayTimeout, // Agent exceeded its time budget.
	code.AgentParseFailed: http.StatusBadGateway,     // Agent answered, but the envelope was unusable.

	// Validation / resource domain.
	code.ValidationInvalidInput:       http.StatusBadRequest,      // Malformed input, contract violation.
	code.ValidationMissingField:       http.StatusBadRequest,      // Required field/parameter missing.
	code.ValidationSchemaFailed:       http.StatusBadRequest,      // Document failed schema validation.
	code.ValidationCircularDependency: http.StatusBadRequest,      // Task graph contains a cycle.
	code.ValidationNestedExecution:    http.StatusConflict,        // A run is already in progress.
	code.ResourceLimitExceeded:        http.StatusTooManyRequests, // Budget (tokens, attempts, time) exhausted.
}

// defaultGRPC defines the library's built-in gRPC mappings for every
// registered pipeline error code. These values are chosen to align with
// canonical gRPC status semantics while preserving the pipeline meanings.
// As with HTTP, callers may override them at the transport edge.
var defaultGRPC = map[code.Code]codes.Code{
	// Session domain.
	code.SessionLoadFailed:        codes.Internal,
	code.SessionSaveFailed:        codes.Internal,
	code.SessionNotFound:          codes.NotFound,
	code.SessionInvalidBugfixPath: codes.FailedPrecondition, // Session is not in the state the operation requires.

	// Task domain.
	code.TaskExecutionFailed:  codes.Internal,
	code.TaskValidationFailed: codes.InvalidArgument,
	code.TaskNotFound:         codes.NotFound,

	// Agent domain.
	code.AgentLLMFailed:   codes.Unavailable,      // Provider unreachable or refusing work.
	code.AgentTimeout:     codes.DeadlineExceeded, // Time budget exceeded.
	code.AgentParseFailed: codes.Internal,         // Our contract with the agent broke.

	// Validation / resource domain.
	code.ValidationInvalidInput:       codes.InvalidArgument,
	code.ValidationMissingField:       codes.InvalidArgument,
	code.ValidationSchemaFailed:       codes.InvalidArgument,
	code.ValidationCircularDependency: codes.FailedPrecondition, // The graph must change before a retry can work.
	code.ValidationNestedExecution:    codes.FailedPrecondition, // The running pipeline must finish first.
	code.ResourceLimitExceeded:        codes.ResourceExhausted,
}
