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

// IsFatal decides whether a failure must abort the pipeline (fatal) or may
// be recorded while execution continues (non-fatal).
//
// Fatality tracks one question: did this failure indicate that the
// pipeline's own safety invariants were violated? Illegal recursion and the
// inability to persist or restore session state are fatal; a unit of work
// failing, or ordinary input validation, is not.
//
// The function is pure: it never mutates v, consults no state beyond the
// value's variant and code, and is safe to call concurrently. It accepts
// arbitrary values, not just errors.
//
// Decision order (first match wins):
//
//  1. continueOnError true        -> non-fatal, unconditionally;
//  2. nil, typed-nil variant pointer,
//     or not an error value       -> non-fatal;
//  3. not a pipeline error        -> non-fatal (all foreign error types);
//  4. BugfixSessionValidationError
//     or NestedExecutionError    -> fatal;
//  5. SessionError               -> fatal iff load or save failure;
//  6. ValidationError            -> fatal iff VALIDATION_NESTED_EXECUTION;
//  7. any other variant          -> non-fatal (notably TaskError).
//
// The verdict is about the value itself: a wrapped cause never changes it.
// A TaskError stays non-fatal even when its cause is a fatal SessionError —
// cause chaining is diagnostic only.
func IsFatal(v any, continueOnError bool) bool {
	// 1. Global override: best-effort batch runs downgrade everything.
	if continueOnError {
		return false
	}

	// 2. Non-error values (nil, strings, numbers, ...) are non-fatal.
	if v == nil {
		return false
	}
	if _, ok := v.(error); !ok {
		return false
	}

	// 3–7. Match on the runtime variant; foreign errors fall through.
	// A typed-nil variant pointer passes the interface checks above, so every
	// case guards against nil before touching the value.
	switch e := v.(type) {
	case *BugfixSessionValidationError:
		return e != nil
	case *NestedExecutionError:
		return e != nil
	case *SessionError:
		return e != nil && (e.IsLoadError() || e.IsSaveError())
	case *ValidationError:
		return e != nil && e.Code() == code.ValidationNestedExecution
	}
	return false
}
