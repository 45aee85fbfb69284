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

// Package adapter converts concrete pipeline errors into the flat apis
// shapes shared by the transport layers.
package adapter

import (
	"time"

	"pipex.dev/perrors"
	"pipex.dev/perrors/apis"
)

// ToView projects a pipeline error into an apis.ErrorView. The fatal flag
// comes from the caller so the classification policy (including
// continue-on-error) stays in one place.
func ToView(e perrors.PipelineError, fatal bool) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Name:      e.Name(),
		Code:      string(e.Code()),
		Message:   e.Error(),
		Timestamp: e.Timestamp().Format(time.RFC3339Nano),
		Fatal:     fatal,
		Context:   e.Context().Map(),
	}
}

// ToDescriptor projects a pipeline error and its resolved transport status
// into an apis.ErrorDescriptor.
func ToDescriptor(e perrors.PipelineError, st apis.Status, fatal bool) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       string(e.Code()),
		Fatal:      fatal,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message(),
	}
}
