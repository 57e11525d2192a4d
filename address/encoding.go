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

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Bech32MaxLength replaces the 90 character limit of BIP-173, which is too
// short for addresses carrying two credentials or for extended keys
const Bech32MaxLength = 1000

// Bech32Encode encodes the data as a bech32 string with the given human-readable prefix
func Bech32Encode(prefix string, data []byte) (string, error) {
	if prefix == "" {
		return "", ValidationError{Field: "bech32 prefix", Message: "empty prefix"}
	}
	encoded, err := encodeBech32(prefix, data)
	if err != nil {
		return "", err
	}
	if len(encoded) > Bech32MaxLength {
		return "", ValidationError{
			Field:   "bech32 data",
			Message: fmt.Sprintf("encoded length %d exceeds %d", len(encoded), Bech32MaxLength),
		}
	}
	return encoded, nil
}

func encodeBech32(prefix string, data []byte) (string, error) {
	// Convert data to base32 and encode as bech32
	convData, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", FormatError{Format: "bech32", Err: err}
	}
	encoded, err := bech32.Encode(prefix, convData)
	if err != nil {
		return "", FormatError{Format: "bech32", Err: err}
	}
	return encoded, nil
}

// Bech32Decode decodes a bech32 string, returning its human-readable prefix
// and the 8-bit data
func Bech32Decode(str string) (string, []byte, error) {
	if len(str) > Bech32MaxLength {
		return "", nil, FormatError{
			Format: "bech32",
			Err:    fmt.Errorf("length %d exceeds %d", len(str), Bech32MaxLength),
		}
	}
	prefix, data, version, err := bech32.DecodeNoLimitWithVersion(str)
	if err != nil {
		return "", nil, FormatError{Format: "bech32", Err: err}
	}
	if version != bech32.Version0 {
		return "", nil, FormatError{
			Format: "bech32",
			Err:    errors.New("bech32m checksum is not supported"),
		}
	}
	decoded, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, FormatError{Format: "bech32", Err: err}
	}
	return prefix, decoded, nil
}

// Base58Decode decodes a base58 string. An error is returned for empty input
// or characters outside the base58 alphabet
func Base58Decode(str string) ([]byte, error) {
	decoded := base58.Decode(str)
	if len(decoded) == 0 {
		return nil, FormatError{
			Format: "base58",
			Err:    errors.New("empty or non-base58 input"),
		}
	}
	return decoded, nil
}

// AddressToBytes converts an address string to raw bytes. Base58 is tried
// first. Many bech32 strings are also valid base58, so a base58 result that
// is not a legacy address envelope only wins when the string is not valid
// bech32
func AddressToBytes(addr string) ([]byte, error) {
	base58Data, base58Err := Base58Decode(addr)
	if base58Err == nil && isBootstrapEnvelope(base58Data) {
		return base58Data, nil
	}
	_, decoded, err := Bech32Decode(addr)
	if err != nil {
		if base58Err == nil {
			return base58Data, nil
		}
		return nil, FormatError{
			Format: "address",
			Err:    fmt.Errorf("not base58 or bech32: %w", err),
		}
	}
	return decoded, nil
}

func isBootstrapEnvelope(data []byte) bool {
	_, err := decodeBootstrapEnvelope(data)
	return err == nil
}
