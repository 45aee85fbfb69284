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

// Package grpcx maps pipeline errors onto the gRPC status model. A server
// interceptor converts perrors.PipelineError values into gRPC statuses
// carrying standard error details (google.rpc.ErrorInfo, RetryInfo), so
// callers can recover the pipeline code and the fatal verdict on the
// client side without a custom proto.
package grpcx

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"pipex.dev/perrors"
	"pipex.dev/perrors/apis"
)

// Domain is the logical error domain stamped into every ErrorInfo detail.
const Domain = "pipeline.pipex.dev"

// Metadata keys used inside ErrorInfo.Metadata.
const (
	metaName  = "name"
	metaFatal = "fatal"
)

// Meta holds optional per-request metadata embedded into the error details.
type Meta struct {
	// CorrelationID is a client/server correlation token (request ID,
	// idempotency key). Stored under the "correlation_id" metadata key.
	CorrelationID string

	// RetryAfter, when positive, is attached as a google.rpc.RetryInfo
	// detail. Only non-fatal errors get a retry hint.
	RetryAfter time.Duration
}

// MetaFn extracts Meta from the request context and the failed error.
// It can return a zero Meta if nothing is available.
type MetaFn func(ctx context.Context, e perrors.PipelineError) Meta

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// perrors.PipelineError values into gRPC errors with standard error
// details.
//
// The apis.Mapper resolves the transport status for the error's code. The
// optional MetaFn injects correlation and retry metadata; pass nil when
// there is nothing to add. Errors that are not pipeline errors pass
// through unchanged.
func UnaryServerInterceptor(m apis.Mapper, metaFn MetaFn) grpc.UnaryServerInterceptor {
	if metaFn == nil {
		metaFn = func(context.Context, perrors.PipelineError) Meta { return Meta{} }
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		pe, ok := perrors.AsPipelineError(err)
		if !ok {
			// Not ours. Return as-is.
			return nil, err
		}

		fatal := perrors.IsFatal(err, false)
		meta := metaFn(ctx, pe)

		md := flattenContext(pe.Context().Map())
		md[metaName] = pe.Name()
		md[metaFatal] = strconv.FormatBool(fatal)
		if meta.CorrelationID != "" {
			md["correlation_id"] = meta.CorrelationID
		}

		ei := &errdetails.ErrorInfo{
			Reason:   string(pe.Code()),
			Domain:   Domain,
			Metadata: md,
		}

		base := gstatus.New(m.GRPCStatus(pe.Code()), pe.Message())
		return nil, buildStatus(base, ei, fatal, meta.RetryAfter)
	}
}

// buildStatus attaches ErrorInfo and, for retryable errors, RetryInfo to
// the base status. If detail attachment fails the bare status is returned
// so the caller still sees the right gRPC code.
func buildStatus(base *gstatus.Status, ei *errdetails.ErrorInfo, fatal bool, retryAfter time.Duration) error {
	if !fatal && retryAfter > 0 {
		ri := &errdetails.RetryInfo{RetryDelay: durationpb.New(retryAfter)}
		if with, err := base.WithDetails(ei, ri); err == nil {
			return with.Err()
		}
	}
	if with, err := base.WithDetails(ei); err == nil {
		return with.Err()
	}
	return base.Err()
}

// ExtractErrorInfo pulls the google.rpc.ErrorInfo detail out of a gRPC
// error, if present. Useful in tests and client code.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			return ei, true
		}
	}
	return nil, false
}

// ExtractRetryInfo pulls the google.rpc.RetryInfo detail out of a gRPC
// error, if present.
func ExtractRetryInfo(err error) (*errdetails.RetryInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if ri, ok := d.(*errdetails.RetryInfo); ok {
			return ri, true
		}
	}
	return nil, false
}

// flattenContext renders a debug-context map as flat string pairs for
// ErrorInfo.Metadata. Values are formatted with fmt.Sprint; nested maps
// come out in fmt's sorted-key form, which is stable enough for logs.
func flattenContext(src map[string]any) map[string]string {
	dst := make(map[string]string, len(src)+3)
	for k, v := range src {
		dst[k] = fmt.Sprint(v)
	}
	return dst
}
