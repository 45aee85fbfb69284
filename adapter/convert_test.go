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

package adapter

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"

	"pipex.dev/perrors"
	"pipex.dev/perrors/apis"
)

func TestToView(t *testing.T) {
	e := perrors.NewValidationError("missing field 'tasks'",
		perrors.WithContext(perrors.Context{Operation: "schema_check"}))
	v := ToView(e, false)

	if v.Name != "ValidationError" || v.Code != "VALIDATION_INVALID_INPUT" {
		t.Errorf("identity = %q/%q", v.Name, v.Code)
	}
	if !strings.HasPrefix(v.Message, "[VALIDATION_INVALID_INPUT] missing field 'tasks'") {
		t.Errorf("Message = %q", v.Message)
	}
	if v.Fatal {
		t.Error("Fatal = true, want false")
	}
	if v.Context["operation"] != "schema_check" {
		t.Errorf("Context = %v", v.Context)
	}
	if _, err := time.Parse(time.RFC3339Nano, v.Timestamp); err != nil {
		t.Errorf("Timestamp %q not RFC3339Nano: %v", v.Timestamp, err)
	}
}

func TestToViewNil(t *testing.T) {
	v := ToView(nil, true)
	if v.Name != "" || v.Code != "" || v.Context != nil {
		t.Errorf("ToView(nil) = %+v", v)
	}
}

func TestToDescriptor(t *testing.T) {
	e := perrors.NewSessionError("cannot read session")
	st := apis.Status{HTTP: http.StatusInternalServerError, GRPC: codes.Internal}
	d := ToDescriptor(e, st, true)

	want := apis.ErrorDescriptor{
		Code:       "SESSION_LOAD_FAILED",
		Fatal:      true,
		HTTPStatus: http.StatusInternalServerError,
		GRPCCode:   int(codes.Internal),
		Message:    "cannot read session",
	}
	if d != want {
		t.Errorf("ToDescriptor = %+v, want %+v", d, want)
	}
}
