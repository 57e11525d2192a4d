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

package cbor

import (
	_cbor "github.com/fxamacker/cbor/v2"
)

const (
	CborTypeByteString uint8 = 0x40
	CborTypeTextString uint8 = 0x60
	CborTypeArray      uint8 = 0x80
	CborTypeMap        uint8 = 0xa0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0

	// Additional info value for indefinite-length items
	CborIndefiniteLength uint8 = 0x1f

	// Stop code terminating an indefinite-length item
	CborBreak uint8 = 0xff
)

// Create an alias for RawMessage for convenience
type RawMessage = _cbor.RawMessage

// Alias for Tag for convenience
type Tag = _cbor.Tag

// Useful for embedding and easier to remember
type StructAsArray struct {
	// Tells the CBOR decoder to convert to/from a struct and a CBOR array
	_ struct{} `cbor:",toarray"`
}

// MajorType returns the major type bits of the first byte of the provided CBOR data.
// It returns false if the data is empty
func MajorType(cborData []byte) (uint8, bool) {
	if len(cborData) == 0 {
		return 0, false
	}
	return cborData[0] & CborTypeMask, true
}

// IsMap returns true when the provided CBOR data starts with a map header
func IsMap(cborData []byte) bool {
	majorType, ok := MajorType(cborData)
	return ok && majorType == CborTypeMap
}
