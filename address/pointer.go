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
	"math"
	"slices"
)

// Pointer locates a stake registration certificate on chain
type Pointer struct {
	BlockIndex uint64
	TxIndex    uint64
	CertIndex  uint64
}

func (p Pointer) encode() []byte {
	ret := EncodeVarUint(p.BlockIndex)
	ret = append(ret, EncodeVarUint(p.TxIndex)...)
	ret = append(ret, EncodeVarUint(p.CertIndex)...)
	return ret
}

// decodePointer reads the three pointer fields and returns the number of
// bytes consumed
func decodePointer(data []byte) (Pointer, int, error) {
	var p Pointer
	offset := 0
	for _, field := range []*uint64{&p.BlockIndex, &p.TxIndex, &p.CertIndex} {
		val, n, err := DecodeVarUint(data[offset:])
		if err != nil {
			return Pointer{}, 0, err
		}
		*field = val
		offset += n
	}
	return p, offset, nil
}

// EncodeVarUint encodes the value as a big-endian base-128 integer. Every byte
// except the last has its high bit set
func EncodeVarUint(val uint64) []byte {
	data := []byte{
		byte(val & 0x7F),
	}
	val >>= 7
	for val > 0 {
		data = append(
			data,
			byte((val&0x7F)|0x80),
		)
		val >>= 7
	}
	slices.Reverse(data)
	return data
}

// DecodeVarUint reverses EncodeVarUint and returns the value along with the
// number of bytes consumed
func DecodeVarUint(data []byte) (uint64, int, error) {
	var ret uint64
	for i, byt := range data {
		if ret > math.MaxUint64>>7 {
			return 0, 0, errors.New("variable length integer overflows uint64")
		}
		ret = (ret << 7) | uint64(byt&0x7F)
		if (byt & 0x80) == 0 {
			return ret, i + 1, nil
		}
	}
	return 0, 0, errors.New("unexpected end of variable length integer")
}
