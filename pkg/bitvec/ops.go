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

// Operator combines two bits into one.
type Operator func(Bit, Bit) Bit

// AndBit returns the conjunction of two bits.
func AndBit(a, b Bit) Bit {
	return a & b
}

// OrBit returns the disjunction of two bits.
func OrBit(a, b Bit) Bit {
	return a | b
}

// XorBit returns the exclusive-or of two bits.
func XorBit(a, b Bit) Bit {
	return a ^ b
}

// Combine applies a given operator to each pair of bits at the same position in
// two vectors, producing a vector of the same length.  If the vectors differ in
// length, a LengthMismatchError is returned and no vector is produced.
//
// NOTE: bits are not checked to be either 0 or 1, hence the result for vectors
// holding other values depends entirely on the given operator.
func Combine(left, right Vector, op Operator) (Vector, error) {
	if len(left) != len(right) {
		return nil, &LengthMismatchError{left.Len(), right.Len()}
	}
	//
	result := make(Vector, len(left))
	//
	for i := range left {
		result[i] = op(left[i], right[i])
	}
	//
	return result, nil
}

// And computes the bitwise conjunction of two vectors of equal length.
func And(left, right Vector) (Vector, error) {
	return Combine(left, right, AndBit)
}

// Or computes the bitwise disjunction of two vectors of equal length.
func Or(left, right Vector) (Vector, error) {
	return Combine(left, right, OrBit)
}

// Xor computes the bitwise exclusive-or of two vectors of equal length.
func Xor(left, right Vector) (Vector, error) {
	return Combine(left, right, XorBit)
}

// Not flips every bit of a given vector.
func Not(bits Vector) Vector {
	result := make(Vector, len(bits))
	//
	for i, b := range bits {
		result[i] = b ^ One
	}
	//
	return result
}

// Add computes the sum of two vectors, treating both as unsigned big-endian
// numerals which may differ in length.  The result always has exactly one more
// bit than the longer operand, irrespective of whether the final carry is set.
// For example, [1] + [1] gives [1, 0] whilst [0, 1] + [0, 1] gives [0, 1, 0].
// Use Trim to obtain the minimal representation.
func Add(left, right Vector) Vector {
	width := max(left.Len(), right.Len())
	lhs := ZeroExtend(left, width)
	rhs := ZeroExtend(right, width)
	// Operands have equal width, so this cannot fail.
	sum, err := Xor(lhs, rhs)
	if err != nil {
		panic(err)
	}
	//
	result := make(Vector, width+1)
	carry := Zero
	// Ripple from least significant bit
	for i := int(width) - 1; i >= 0; i-- {
		result[i+1] = sum[i] ^ carry
		carry = (lhs[i] & rhs[i]) | (carry & sum[i])
	}
	//
	result[0] = carry
	//
	return result
}
