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

// Package main demonstrates usage of the perrors package: constructing
// pipeline errors, classifying them, and mapping them to transport
// statuses.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"pipex.dev/perrors"
	"pipex.dev/perrors/code"
	"pipex.dev/perrors/mapper"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	// A session load failure with a structured debug context and a cause.
	cause := errors.New("open /var/pipex/sessions/s1.json: no such file")
	loadErr := perrors.NewSessionError("cannot read session file",
		perrors.WithContext(perrors.Context{
			SessionPath: "/var/pipex/sessions/s1.json",
			Operation:   "load",
		}),
		perrors.WithCause(cause),
	)
	fmt.Println(loadErr)

	// A validation failure with a selected code and extra metadata.
	valErr := perrors.NewValidationError("plan references unknown task",
		perrors.WithCode(code.ValidationMissingField),
		perrors.WithMeta("field", "tasks[3].depends_on"),
	)

	// Task failures are recorded but never stop a run.
	taskErr := perrors.NewTaskError("agent returned malformed output",
		perrors.WithContext(perrors.Context{TaskID: "task-7"}),
		perrors.WithCause(valErr),
	)

	for _, err := range []error{loadErr, valErr, taskErr} {
		fmt.Printf("%-60q fatal=%v continue=%v\n",
			err.Error(),
			perrors.IsFatal(err, false),
			perrors.IsFatal(err, true))
	}

	// Structured logging via the serializable record.
	rec := loadErr.Record()
	logger.Error("pipeline stage failed",
		slog.String("name", rec.Name),
		slog.String("code", rec.Code),
		slog.String("timestamp", rec.Timestamp),
		slog.Any("context", rec.Context),
	)

	// Full JSON form, as persisted in run reports.
	if b, err := loadErr.JSON(); err == nil {
		fmt.Println(string(b))
	}

	// Transport mapping with a per-domain tweak.
	m, err := mapper.New(
		mapper.WithHTTPPrefix("AGENT", 502),
	)
	if err != nil {
		logger.Error("mapper build failed", slog.Any("err", err))
		os.Exit(1)
	}
	for _, c := range []code.Code{
		code.SessionNotFound,
		code.AgentTimeout,
		code.ValidationNestedExecution,
	} {
		st := m.Status(c)
		fmt.Printf("%-30s http=%d grpc=%s\n", c, st.HTTP, st.GRPC)
	}
	fmt.Println(m.Explain(code.AgentTimeout))
}
