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

// Package perrors is the error-classification core for the pipeline.
//
// It provides three things:
//
//   - a closed family of structured failure values (SessionError, TaskError,
//     ValidationError, and two safety-marker variants), each carrying a
//     stable code from pipex.dev/perrors/code, a message, a UTC timestamp,
//     a debugging Context, and an optional wrapped cause;
//   - the fatality classifier IsFatal, the single policy deciding whether a
//     caught failure must abort the pipeline or may be tracked while
//     execution continues;
//   - a deterministic serialized form (Record / JSON) whose shape is stable
//     for downstream log consumers.
//
// The package is stateless and entirely synchronous: every construction,
// classification, and serialization call is an independent computation safe
// to invoke from any number of goroutines. Transport projections of these
// errors live in the mapper, grpcx, and httpx subpackages.
package perrors
