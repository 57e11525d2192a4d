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

// Package address packs and inspects Cardano addresses.
//
// Legacy (bootstrap) addresses are CBOR envelopes protected by a CRC32
// checksum and rendered as base58. They may carry an encrypted HD derivation
// path and a protocol magic. Typed addresses start with a header byte holding
// the address type and network ID, followed by credential hashes and an
// optional stake pointer, and are rendered as bech32.
package address
