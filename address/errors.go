// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package address

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches any ValidationError via errors.Is
	ErrValidation = errors.New("validation error")
	// ErrFormat matches any FormatError via errors.Is
	ErrFormat = errors.New("format error")
	// ErrIntegrity matches any IntegrityError via errors.Is
	ErrIntegrity = errors.New("integrity error")
	// ErrIncorrectAddressOrPassphrase is returned for any failure while
	// recovering an encrypted derivation path. It does not say which step failed
	ErrIncorrectAddressOrPassphrase = errors.New(
		"incorrect address or passphrase",
	)
)

// ValidationError indicates input with a bad shape, length or range. It is
// always returned before any hashing or encryption takes place
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func (ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FormatError indicates data that could not be decoded as CBOR, base58 or bech32
type FormatError struct {
	Format string
	Err    error
}

func (e FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s data: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("invalid %s data", e.Format)
}

func (e FormatError) Unwrap() error { return e.Err }

func (FormatError) Is(target error) bool {
	return target == ErrFormat
}

// IntegrityError indicates well-formed data that fails a consistency check,
// such as a checksum mismatch
type IntegrityError struct {
	Message string
}

func (e IntegrityError) Error() string {
	return "integrity check failed: " + e.Message
}

func (IntegrityError) Is(target error) bool {
	return target == ErrIntegrity
}
