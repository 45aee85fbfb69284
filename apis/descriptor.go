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

// ErrorDescriptor is a flat, transport-friendly description of a classified
// pipeline error together with its resolved transport projections.
//
// This type intentionally uses strings (not the internal Code value type) so
// that it can live in the public "apis" layer and be used by adapters (HTTP,
// gRPC), structured logging, or message-bus propagation without importing
// the concrete error implementation.
type ErrorDescriptor struct {
	// Code is the canonical error code, e.g. "SESSION_LOAD_FAILED".
	//
	// Implementations SHOULD store only normalized, validated codes here.
	Code string `json:"code"`

	// Fatal is the classifier's verdict for this error.
	Fatal bool `json:"fatal"`

	// HTTPStatus is an optional HTTP status that should be used when this
	// code is exposed over HTTP. A value of 0 means "not specified".
	HTTPStatus int `json:"http_status,omitempty"`

	// GRPCCode is an optional gRPC status code (as integer) that should be
	// used when this code is exposed over gRPC. A value of 0 means
	// "not specified".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is an optional human-friendly message taken from the error
	// instance.
	Message string `json:"message,omitempty"`
}
