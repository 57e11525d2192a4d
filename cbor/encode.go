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
	"bytes"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedEncMode     _cbor.EncMode
	cachedEncModeErr  error
	cachedEncModeOnce sync.Once
)

func getEncMode() (_cbor.EncMode, error) {
	cachedEncModeOnce.Do(func() {
		opts := _cbor.EncOptions{
			// Make sure that maps have ordered keys
			Sort: _cbor.SortCoreDeterministic,
		}
		cachedEncMode, cachedEncModeErr = opts.EncModeWithTags(customTagSet)
	})
	return cachedEncMode, cachedEncModeErr
}

func Encode(data any) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	em, err := getEncMode()
	if err != nil {
		return nil, err
	}
	enc := em.NewEncoder(buf)
	err = enc.Encode(data)
	return buf.Bytes(), err
}

// IndefLengthList encodes as an indefinite-length CBOR array. Each item is
// encoded on its own and the results are concatenated between the 0x9f
// start byte and the 0xff break byte
type IndefLengthList []any

func (i IndefLengthList) MarshalCBOR() ([]byte, error) {
	ret := []byte{
		// Start indefinite-length list
		CborTypeArray | CborIndefiniteLength,
	}
	for _, item := range []any(i) {
		data, err := Encode(&item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, data...)
	}
	ret = append(
		ret,
		// End indefinite length array
		CborBreak,
	)
	return ret, nil
}

// NewIndefLengthList builds an IndefLengthList from a typed slice
func NewIndefLengthList[T any](items []T) IndefLengthList {
	ret := make(IndefLengthList, 0, len(items))
	for _, item := range items {
		ret = append(ret, item)
	}
	return ret
}
