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

// Structural implementations of the apis package contracts (CodedError,
// ContextualError, CausedError). They are satisfied here without importing
// apis, so the dependency only runs apis -> perrors/code, never back.

// ErrorCode returns the code as a string, satisfying apis.CodedError.
func (e *base) ErrorCode() string { return e.code.String() }

// ErrorContext returns the flattened context map, satisfying
// apis.ContextualError. May return nil.
func (e *base) ErrorContext() map[string]any { return e.ctx.Map() }

// Cause returns the wrapped cause, satisfying apis.CausedError.
// May return nil.
func (e *base) Cause() error { return e.cause }
