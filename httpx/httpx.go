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

// Package httpx renders pipeline errors as HTTP error responses. The status
// code comes from an apis.Mapper; the body is the shared apis.ErrorView
// shape serialized as JSON.
package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"pipex.dev/perrors"
	"pipex.dev/perrors/adapter"
	"pipex.dev/perrors/apis"
)

// Meta carries extra context that the HTTP layer can add on top of the
// error. All fields are optional and typically come from request context,
// headers, or rate-limiter output.
type Meta struct {
	// Correlation is a request correlation token. When empty, Write
	// generates one so every error response stays traceable.
	Correlation string

	// RetryAfterSeconds, when positive, sets the Retry-After header and the
	// matching view field. It is dropped for fatal errors, which must not
	// advertise retries.
	RetryAfterSeconds int
}

// Writer turns pipeline errors into HTTP responses using the provided
// status mapper.
type Writer struct {
	Mapper apis.Mapper
}

// Write resolves the HTTP status via the Mapper, builds an apis.ErrorView
// and writes it as JSON. A nil error writes nothing.
//
// No automatic redaction or filtering is performed here: whatever is
// present in the error and Meta is exposed as-is. Higher-level handlers
// should apply policies if needed.
func (w Writer) Write(rw http.ResponseWriter, err perrors.PipelineError, meta Meta) {
	if err == nil {
		return
	}

	fatal := perrors.IsFatal(err, false)
	view := adapter.ToView(err, fatal)

	view.Correlation = meta.Correlation
	if view.Correlation == "" {
		view.Correlation = uuid.NewString()
	}
	if !fatal && meta.RetryAfterSeconds > 0 {
		view.RetryAfterSeconds = meta.RetryAfterSeconds
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.Header().Set("X-Correlation-Id", view.Correlation)
	if view.RetryAfterSeconds > 0 {
		rw.Header().Set("Retry-After", strconv.Itoa(view.RetryAfterSeconds))
	}
	rw.WriteHeader(w.Mapper.HTTPStatus(err.Code()))

	b, merr := json.Marshal(view)
	if merr != nil {
		// A context metadata value can be unmarshalable (channel, func).
		// Drop the context and keep the identity fields so the client never
		// sees a bodiless error response.
		view.Context = nil
		if b, merr = json.Marshal(view); merr != nil {
			b = []byte(`{"code":"` + string(err.Code()) + `"}`)
		}
	}
	_, _ = rw.Write(b)
}
