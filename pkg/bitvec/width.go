// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bitvec

// Width determines the number of bits in the minimal representation of a given
// number.  For example, 4 requires 3bits whilst 3 requires only 2bits.  Zero is
// still written using a single bit.
func Width(n uint32) uint {
	bitwidth := uint(1)
	//
	for n >>= 1; n != 0; n >>= 1 {
		bitwidth++
	}
	// Done
	return bitwidth
}
