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
	"errors"
	"testing"
)

func TestGuards(t *testing.T) {
	session := NewSessionError("x")
	task := NewTaskError("x")
	validation := NewValidationError("x")
	foreign := errors.New("boom")

	tests := []struct {
		name                             string
		v                                any
		isPipeline, isSess, isTask, isVal bool
	}{
		{"session", session, true, true, false, false},
		{"task", task, true, false, true, false},
		{"validation", validation, true, false, false, true},
		{"bugfix marker", NewBugfixSessionValidationError("x"), true, false, false, false},
		{"nested marker", NewNestedExecutionError("x"), true, false, false, false},
		{"foreign error", foreign, false, false, false, false},
		{"nil", nil, false, false, false, false},
		{"plain string", "oops", false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPipelineError(tt.v); got != tt.isPipeline {
				t.Fatalf("IsPipelineError = %v, want %v", got, tt.isPipeline)
			}
			if got := IsSessionError(tt.v); got != tt.isSess {
				t.Fatalf("IsSessionError = %v, want %v", got, tt.isSess)
			}
			if got := IsTaskError(tt.v); got != tt.isTask {
				t.Fatalf("IsTaskError = %v, want %v", got, tt.isTask)
			}
			if got := IsValidationError(tt.v); got != tt.isVal {
				t.Fatalf("IsValidationError = %v, want %v", got, tt.isVal)
			}
		})
	}
}

func TestAsGuards(t *testing.T) {
	session := NewSessionError("x")

	if got, ok := AsSessionError(session); !ok || got != session {
		t.Fatal("AsSessionError must narrow the same value")
	}
	if _, ok := AsSessionError(NewTaskError("x")); ok {
		t.Fatal("AsSessionError must reject other variants")
	}
	if pe, ok := AsPipelineError(session); !ok || pe.Code() != session.Code() {
		t.Fatal("AsPipelineError must narrow to the interface")
	}
	if _, ok := AsPipelineError("not an error"); ok {
		t.Fatal("AsPipelineError must reject non-errors")
	}
	if got, ok := AsTaskError(NewTaskError("y")); !ok || got.Message() != "y" {
		t.Fatal("AsTaskError failed")
	}
	if got, ok := AsValidationError(NewValidationError("z")); !ok || got.Message() != "z" {
		t.Fatal("AsValidationError failed")
	}
}
