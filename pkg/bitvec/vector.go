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

import (
	"strings"
)

// Bit represents a single binary digit.  Only the values Zero and One are
// meaningful, though this is not enforced by the operators in this package.
type Bit uint8

const (
	// Zero is the cleared bit.
	Zero Bit = 0
	// One is the set bit.
	One Bit = 1
)

// Vector is a sequence of bits, most significant bit first.  Leading zeros are
// significant positions and are never stripped implicitly.  Operations in this
// package never modify a vector given to them; instead, they always allocate a
// fresh vector for their result.
type Vector []Bit

// Len returns the number of bits in this vector.
func (p Vector) Len() uint {
	return uint(len(p))
}

// String returns a bracketed rendering of this vector, such as "[1, 0, 1, 1]".
func (p Vector) String() string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, b := range p {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteByte('0' + byte(b))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// Binary returns a compact rendering of this vector, such as "1011".
func (p Vector) Binary() string {
	bytes := make([]byte, len(p))
	//
	for i, b := range p {
		bytes[i] = '0' + byte(b)
	}
	//
	return string(bytes)
}

// ToNumber interprets a given vector as a big-endian binary numeral and returns
// its value.  The empty vector has value 0.  Vectors longer than 32 bits wrap
// modulo 2^32.
func ToNumber(bits Vector) uint32 {
	var (
		n   = uint(len(bits))
		acc uint32
	)
	//
	for i, b := range bits {
		if b == One {
			acc += uint32(1) << (n - uint(i) - 1)
		}
	}
	//
	return acc
}

// FromNumber returns the minimal big-endian representation of a given number.
// The number 0 is represented by the single bit vector [0], hence the result is
// never empty.
func FromNumber(n uint32) Vector {
	bits := make(Vector, Width(n))
	// Fill from the least significant end
	for i := len(bits) - 1; i >= 0; i-- {
		bits[i] = Bit(n % 2)
		n = n / 2
	}
	//
	return bits
}

// Zeros returns the vector of n zero bits.
func Zeros(n uint) Vector {
	return make(Vector, n)
}

// ZeroExtend pads a given vector with leading zeros up to the given width, thus
// preserving its numeric value.  A vector which is already at least as wide as
// the given width is copied unchanged.
func ZeroExtend(bits Vector, width uint) Vector {
	if bits.Len() >= width {
		return clone(bits)
	}
	//
	padded := make(Vector, width)
	copy(padded[width-bits.Len():], bits)
	//
	return padded
}

// Trim removes any superfluous leading zeros from a given vector, always leaving
// at least one bit.  For example, [0, 0, 1, 1] becomes [1, 1] whilst [0, 0]
// becomes [0].
func Trim(bits Vector) Vector {
	i := 0
	//
	for i < len(bits)-1 && bits[i] == Zero {
		i++
	}
	//
	return clone(bits[i:])
}

// Equal checks whether two vectors have the same length and the same bits.
func Equal(left, right Vector) bool {
	if len(left) != len(right) {
		return false
	}
	//
	for i := range left {
		if left[i] != right[i] {
			return false
		}
	}
	//
	return true
}

func clone(bits Vector) Vector {
	result := make(Vector, len(bits))
	copy(result, bits)
	//
	return result
}
