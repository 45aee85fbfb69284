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

package mapper

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"google.golang.org/grpc/codes"

	"pipex.dev/perrors/code"
)

var update = flag.Bool("update", false, "rewrite golden files")

// TestExplainGolden locks the Explain output format. Run with -update to
// regenerate testdata/explain.golden after an intentional format change.
func TestExplainGolden(t *testing.T) {
	m, err := New(
		WithHTTPPrefix("SESSION", 500),
		WithGRPCPrefix("SESSION", int(codes.Internal)),
		WithHTTPOverride(code.AgentTimeout, 504),
		WithGRPCOverride(code.AgentTimeout, int(codes.DeadlineExceeded)),
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	var b strings.Builder
	b.WriteString(m.Explain(code.SessionNotFound))
	b.WriteString("\n---\n")
	b.WriteString(m.Explain(code.AgentTimeout))
	b.WriteString("\n")
	got := b.String()

	golden := filepath.Join("testdata", "explain.golden")
	if *update {
		if err := os.WriteFile(golden, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
		return
	}

	want, err := os.ReadFile(golden)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if got != string(want) {
		t.Errorf("Explain output drifted from golden.\ngot:\n%s\nwant:\n%s", got, want)
	}
}
