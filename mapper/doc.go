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

// Package mapper translates pipeline error codes into transport statuses
// (HTTP and gRPC).
//
// A mapper is built once from options and then frozen; all lookups run on
// an immutable snapshot and are safe for concurrent use. For each code the
// mapper resolves a status through four tiers, first match wins:
//
//  1. exact per-code override;
//  2. longest-prefix-match over the code's underscore-separated segments,
//     with "*" matching any single segment;
//  3. per-code default (the library ships defaults for every registered
//     code);
//  4. global fallback (HTTP 500 / codes.Internal).
//
// Explain renders the resolution as text for debugging configuration.
package mapper
