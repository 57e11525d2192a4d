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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// SequentialBytes returns a slice of the given length where each byte holds
// its own index. It is used as a stand-in for keys and hashes in tests
func SequentialBytes(length int) []byte {
	ret := make([]byte, length)
	for i := range ret {
		ret[i] = byte(i)
	}
	return ret
}

// FilledBytes returns a slice of the given length with every byte set to val
func FilledBytes(length int, val byte) []byte {
	ret := make([]byte, length)
	for i := range ret {
		ret[i] = val
	}
	return ret
}
