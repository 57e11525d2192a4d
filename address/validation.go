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
	"fmt"
)

// ValidateNetworkId returns an error if the network ID does not fit in the
// low nibble of an address header
func ValidateNetworkId(networkId int) error {
	if networkId < 0 || networkId > MaxNetworkId {
		return ValidationError{
			Field:   "network ID",
			Message: fmt.Sprintf("must be an integer between 0 and %d, got %d", MaxNetworkId, networkId),
		}
	}
	return nil
}

func validateLength(field string, data []byte, expectedLen int) error {
	if len(data) != expectedLen {
		return ValidationError{
			Field: field,
			Message: fmt.Sprintf(
				"expected %d bytes, got %d",
				expectedLen,
				len(data),
			),
		}
	}
	return nil
}

func validateHash(field string, hash []byte) error {
	return validateLength(field, hash, HashSize)
}

func validateNotEmpty(field string, data []byte) error {
	if len(data) == 0 {
		return ValidationError{Field: field, Message: "empty input"}
	}
	return nil
}
