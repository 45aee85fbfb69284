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

package code

import (
	"bytes"
	"encoding"
	"errors"
	"regexp"
	"strings"
)

// Code is the canonical, validated representation of a pipeline error code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with normalized values.
//
// Codes follow the DOMAIN_ACTION_OUTCOME convention: two to four
// underscore-separated uppercase segments, e.g. "SESSION_LOAD_FAILED" or
// "AGENT_TIMEOUT". The code string is its own wire identifier — there is no
// separate numeric form, and codes are never renumbered.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every error MUST have a
// non-empty code.
type Code string

// MinLength and MaxLength define the allowed length range for a canonical
// pipeline error code.
//
// We keep these values as separate constants so they can be referenced in
// validation errors, tests, or in other packages that want to mirror the same
// constraints.
const (
	// MinLength is the minimum length for a valid code.
	// The shortest structurally valid code is a two-segment pair like "A_B";
	// anything shorter is an accidental fragment.
	MinLength = 3

	// MaxLength is the maximum length for a valid code.
	// 64 characters is enough for descriptive codes like
	// "VALIDATION_CIRCULAR_DEPENDENCY" while still preventing unbounded or
	// accidental long strings.
	MaxLength = 64
)

const (
	// codeFmt is the canonical regular expression used to validate error codes.
	//
	// Pattern breakdown:
	//
	//	^ - start of string;
	//	[A-Z][A-Z0-9]* - the domain segment: uppercase letter first, then
	//	                 uppercase letters or digits;
	//	(_[A-Z][A-Z0-9]*){1,3} - one to three further segments, so a code has
	//	                 2..4 segments total (DOMAIN, ACTION, OUTCOME, plus an
	//	                 optional qualifier as in SESSION_INVALID_BUGFIX_PATH);
	//	$ - end of string;
	//
	// Length limits (MinLength / MaxLength) are checked separately, because a
	// repetition across variable-width segments cannot express a total-length
	// cap.
	codeFmt = `^[A-Z][A-Z0-9]*(_[A-Z][A-Z0-9]*){1,3}$`
)

var (
	// codeRe is the compiled regular expression used at runtime to validate
	// that a string is a canonical pipeline error code.
	//
	// We precompile it so that repeated validations (e.g. in registries or in
	// hot paths) do not pay the compilation cost over and over again.
	//
	// Examples of valid codes:
	//   - "SESSION_LOAD_FAILED"
	//   - "TASK_EXECUTION_FAILED"
	//   - "AGENT_TIMEOUT"
	//   - "VALIDATION_NESTED_EXECUTION"
	//
	// Examples of invalid codes:
	//   - "session_load_failed" (lowercase)
	//   - "SESSION-LOAD-FAILED" (dash instead of underscore)
	//   - "SESSION"             (single segment, no action/outcome)
	//   - "_LOAD_FAILED"        (does not start with a letter)
	codeRe = regexp.MustCompile(codeFmt)
)

var (
	// ErrCodeInvalid is returned when a value cannot be parsed or validated
	// as a pipeline error code.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about code format" vs "this is some other error".
	ErrCodeInvalid = errors.New("perrors: invalid code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is considered "not provided" and is valid
// to store in error structs. Callers that require a non-empty, canonical code
// should explicitly call Validate.
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and validates it.
// On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	s = Normalize(s)
	if err := validate(s); err != nil {
		return Empty, err
	}
	return Code(s), nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - uppercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is valid — callers should still call
// Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToUpper(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is valid.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	return validate(string(c))
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// Domain returns the first segment of the code, e.g. "SESSION" for
// "SESSION_LOAD_FAILED". For the empty code it returns "".
func (c Code) Domain() string {
	s := string(c)
	if i := strings.IndexByte(s, '_'); i >= 0 {
		return s[:i]
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
//
// It always returns the canonical string representation.
func (c Code) MarshalText() ([]byte, error) {
	if err := Validate(c); err != nil {
		return nil, err
	}
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// validate is a helper that checks whether the provided string is a valid code.
func validate(s string) error {
	if len(s) < MinLength || len(s) > MaxLength {
		return ErrCodeInvalid
	}
	if !codeRe.MatchString(s) {
		return ErrCodeInvalid
	}
	return nil
}
