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
	"encoding/hex"
	"fmt"
	"sort"
)

// DumpStructure renders decoded CBOR data as an indented tree. Wrapped CBOR
// is decoded and rendered in place
func DumpStructure(data any, prefix string) string {
	var ret bytes.Buffer
	// Add 2 more spaces for nested items
	newPrefix := "  " + prefix
	switch v := data.(type) {
	case int, uint, int16, uint16, int32, uint32, int64, uint64:
		return fmt.Sprintf("%s0x%x (%d),\n", prefix, v, v)
	case []byte:
		return fmt.Sprintf("%s<bytes> %s (length %d),\n", prefix, hex.EncodeToString(v), len(v))
	case WrappedCbor:
		var inner any
		if _, err := Decode(v.Bytes(), &inner); err != nil {
			return fmt.Sprintf("%s<wrapped cbor> %s (invalid: %s),\n", prefix, hex.EncodeToString(v), err)
		}
		ret.WriteString(fmt.Sprintf("%s<wrapped cbor> (length %d)\n", prefix, len(v)))
		ret.WriteString(DumpStructure(inner, newPrefix))
	case []any:
		ret.WriteString(fmt.Sprintf("%s[\n", prefix))
		for _, val := range v {
			ret.WriteString(DumpStructure(val, newPrefix))
		}
		ret.WriteString(fmt.Sprintf("%s],\n", prefix))
	case map[any]any:
		ret.WriteString(fmt.Sprintf("%s{\n", prefix))
		keys := make([]any, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
		})
		for _, key := range keys {
			ret.WriteString(fmt.Sprintf("%s%v =>\n", newPrefix, key))
			ret.WriteString(DumpStructure(v[key], "  "+newPrefix))
		}
		ret.WriteString(fmt.Sprintf("%s},\n", prefix))
	default:
		return fmt.Sprintf("%s%#v,\n", prefix, v)
	}
	return ret.String()
}
