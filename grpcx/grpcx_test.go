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

package grpcx

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"pipex.dev/perrors"
	"pipex.dev/perrors/apis"
	"pipex.dev/perrors/mapper"
)

func newMapper(t *testing.T) apis.Mapper {
	t.Helper()
	m, err := mapper.New()
	if err != nil {
		t.Fatalf("mapper.New() error: %v", err)
	}
	return m
}

func invoke(t *testing.T, m apis.Mapper, metaFn MetaFn, handlerErr error) error {
	t.Helper()
	ic := UnaryServerInterceptor(m, metaFn)
	handler := func(ctx context.Context, req any) (any, error) {
		return nil, handlerErr
	}
	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	return err
}

func TestInterceptorMapsPipelineError(t *testing.T) {
	m := newMapper(t)
	src := perrors.NewSessionError("cannot read session",
		perrors.WithContext(perrors.Context{SessionPath: "/tmp/s.json"}))

	err := invoke(t, m, nil, src)
	st, ok := gstatus.FromError(err)
	if !ok {
		t.Fatalf("result is not a gRPC status: %v", err)
	}
	if st.Code() != gcodes.Internal {
		t.Errorf("status code = %v, want Internal", st.Code())
	}
	if st.Message() != "cannot read session" {
		t.Errorf("status message = %q", st.Message())
	}

	ei, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("no ErrorInfo detail attached")
	}
	if ei.Reason != "SESSION_LOAD_FAILED" {
		t.Errorf("ErrorInfo.Reason = %q", ei.Reason)
	}
	if ei.Domain != Domain {
		t.Errorf("ErrorInfo.Domain = %q", ei.Domain)
	}
	if ei.Metadata["name"] != "SessionError" {
		t.Errorf("metadata name = %q", ei.Metadata["name"])
	}
	if ei.Metadata["fatal"] != "true" {
		t.Errorf("metadata fatal = %q, want true", ei.Metadata["fatal"])
	}
	if ei.Metadata["session_path"] != "/tmp/s.json" {
		t.Errorf("metadata session_path = %q", ei.Metadata["session_path"])
	}
}

func TestInterceptorRetryInfoOnlyWhenRetryable(t *testing.T) {
	m := newMapper(t)
	metaFn := func(context.Context, perrors.PipelineError) Meta {
		return Meta{CorrelationID: "req-42", RetryAfter: 3 * time.Second}
	}

	// TaskError is never fatal, so the retry hint is attached.
	err := invoke(t, m, metaFn, perrors.NewTaskError("agent run failed"))
	ri, ok := ExtractRetryInfo(err)
	if !ok {
		t.Fatal("retryable error has no RetryInfo detail")
	}
	if got := ri.RetryDelay.AsDuration(); got != 3*time.Second {
		t.Errorf("RetryDelay = %v, want 3s", got)
	}
	ei, ok := ExtractErrorInfo(err)
	if !ok {
		t.Fatal("no ErrorInfo detail attached")
	}
	if ei.Metadata["correlation_id"] != "req-42" {
		t.Errorf("correlation_id = %q", ei.Metadata["correlation_id"])
	}

	// A fatal session failure never advertises a retry.
	err = invoke(t, m, metaFn, perrors.NewSessionError("cannot read session"))
	if _, ok := ExtractRetryInfo(err); ok {
		t.Error("fatal error carries a RetryInfo detail")
	}
}

func TestInterceptorPassesForeignErrorsThrough(t *testing.T) {
	m := newMapper(t)
	boom := errors.New("boom")
	if err := invoke(t, m, nil, boom); err != boom {
		t.Errorf("foreign error was rewritten: %v", err)
	}
	if _, ok := ExtractErrorInfo(boom); ok {
		t.Error("foreign error has ErrorInfo")
	}
}

func TestInterceptorSuccessPath(t *testing.T) {
	ic := UnaryServerInterceptor(newMapper(t), nil)
	handler := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	resp, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	if err != nil || resp != "ok" {
		t.Errorf("success path altered: resp=%v err=%v", resp, err)
	}
}
