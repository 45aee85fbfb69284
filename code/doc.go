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

// Package code defines the stable, machine-readable error codes used across
// the pipeline.
//
// A code answers the question "what kind of failure is this?" in a form that
// survives logging, transport, and programmatic handling. Codes follow the
// DOMAIN_ACTION_OUTCOME convention:
//
//   - "SESSION_LOAD_FAILED"
//   - "TASK_EXECUTION_FAILED"
//   - "VALIDATION_NESTED_EXECUTION"
//
// The set of codes is closed: every code carried by a pipeline error is
// declared in codes.go and enumerated by the registry. The code string itself
// is the wire identifier; there is no separate numeric form, and existing
// codes are never renamed or renumbered.
package code
