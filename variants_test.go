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

import (
	"testing"

	"pipex.dev/perrors/code"
)

func TestVariantDefaults(t *testing.T) {
	tests := []struct {
		name     string
		err      PipelineError
		wantName string
		wantCode code.Code
	}{
		{"session", NewSessionError("x"), "SessionError", code.SessionLoadFailed},
		{"task", NewTaskError("x"), "TaskError", code.TaskExecutionFailed},
		{"validation", NewValidationError("x"), "ValidationError", code.ValidationInvalidInput},
		{"bugfix", NewBugfixSessionValidationError("x"), "BugfixSessionValidationError", code.SessionInvalidBugfixPath},
		{"nested", NewNestedExecutionError("x"), "NestedExecutionError", code.ValidationNestedExecution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Name(); got != tt.wantName {
				t.Fatalf("Name() = %q, want %q", got, tt.wantName)
			}
			if got := tt.err.Code(); got != tt.wantCode {
				t.Fatalf("Code() = %q, want %q", got, tt.wantCode)
			}
			if !code.Registered(tt.err.Code()) {
				t.Fatalf("code %q not in registry", tt.err.Code())
			}
			if got := tt.err.Message(); got != "x" {
				t.Fatalf("Message() = %q", got)
			}
		})
	}
}

func TestSessionError_SelectableCode(t *testing.T) {
	e := NewSessionError("save failed", WithCode(code.SessionSaveFailed))
	if e.Code() != code.SessionSaveFailed {
		t.Fatalf("Code() = %q", e.Code())
	}
	if e.IsLoadError() {
		t.Fatal("IsLoadError must be false for a save failure")
	}
	if !e.IsSaveError() {
		t.Fatal("IsSaveError must be true")
	}

	def := NewSessionError("load failed")
	if !def.IsLoadError() || def.IsSaveError() {
		t.Fatal("default SessionError must be a load error")
	}
}

func TestValidationError_SelectableCode(t *testing.T) {
	e := NewValidationError("cycle", WithCode(code.ValidationCircularDependency))
	if e.Code() != code.ValidationCircularDependency {
		t.Fatalf("Code() = %q", e.Code())
	}
}

func TestFixedCodeVariantsIgnoreWithCode(t *testing.T) {
	tests := []struct {
		name string
		err  PipelineError
		want code.Code
	}{
		{"task", NewTaskError("x", WithCode(code.SessionLoadFailed)), code.TaskExecutionFailed},
		{"bugfix", NewBugfixSessionValidationError("x", WithCode(code.TaskNotFound)), code.SessionInvalidBugfixPath},
		{"nested", NewNestedExecutionError("x", WithCode(code.TaskNotFound)), code.ValidationNestedExecution},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Code(); got != tt.want {
				t.Fatalf("Code() = %q, want fixed %q", got, tt.want)
			}
		})
	}
}

func TestWithCode_EmptyKeepsDefault(t *testing.T) {
	e := NewSessionError("x", WithCode(code.Empty))
	if e.Code() != code.SessionLoadFailed {
		t.Fatalf("Code() = %q, want default", e.Code())
	}
}
