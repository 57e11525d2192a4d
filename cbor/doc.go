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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the encoding rules
// used by Cardano address formats.
//
// Maps are always encoded with core deterministic key ordering, tag 24
// (encoded CBOR data item) is bound to WrappedCbor, and IndefLengthList
// produces indefinite-length arrays, which a generic encoder never emits for
// a fixed-size slice.
package cbor
