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

package cbor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zoeldevapps/cardano-crypto.js/cbor"
	"github.com/zoeldevapps/cardano-crypto.js/internal/test"
)

func TestDumpStructure(t *testing.T) {
	// Legacy address with a protocol magic attribute
	var data any
	_, err := cbor.Decode(
		test.DecodeHexString("82d818582483581c5d5e698eba3dd9452add99a1af9461beb0ba61b8bece26e7399878dda1024102001a36d41aba"),
		&data,
	)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := `[
  <wrapped cbor> (length 36)
    [
      <bytes> 5d5e698eba3dd9452add99a1af9461beb0ba61b8bece26e7399878dd (length 28),
      {
        2 =>
          <bytes> 02 (length 1),
      },
      0x0 (0),
    ],
  0x36d41aba (919870138),
],
`
	assert.Equal(t, expected, cbor.DumpStructure(data, ""))
}

func TestDumpStructureScalars(t *testing.T) {
	assert.Equal(t, "> 0x2a (42),\n", cbor.DumpStructure(uint64(42), "> "))
	assert.Equal(t, "\"abc\",\n", cbor.DumpStructure("abc", ""))
}
