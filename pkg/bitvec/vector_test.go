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
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ToNumber_00(t *testing.T) {
	assert.Equal(t, uint32(12), ToNumber(Vector{1, 1, 0, 0}))
}

func Test_ToNumber_01(t *testing.T) {
	// Every four bit vector, in order.
	for i := uint32(0); i < 16; i++ {
		bits := Vector{Bit(i >> 3 & 1), Bit(i >> 2 & 1), Bit(i >> 1 & 1), Bit(i & 1)}
		assert.Equal(t, i, ToNumber(bits), "bits %s", bits)
	}
}

func Test_ToNumber_02(t *testing.T) {
	assert.Equal(t, uint32(0), ToNumber(Vector{}))
	assert.Equal(t, uint32(0), ToNumber(Vector{0}))
	assert.Equal(t, uint32(1), ToNumber(Vector{0, 0, 0, 1}))
}

func Test_ToNumber_03(t *testing.T) {
	bits := make(Vector, 32)
	for i := range bits {
		bits[i] = One
	}
	//
	assert.Equal(t, uint32(math.MaxUint32), ToNumber(bits))
}

func Test_FromNumber_00(t *testing.T) {
	assert.Equal(t, Vector{1, 0, 1, 0, 1, 1, 1, 0}, FromNumber(174))
}

func Test_FromNumber_01(t *testing.T) {
	assert.Equal(t, Vector{0}, FromNumber(0))
	assert.Equal(t, Vector{1}, FromNumber(1))
	assert.Equal(t, Vector{1, 0}, FromNumber(2))
	assert.Equal(t, Vector{1, 1}, FromNumber(3))
	assert.Equal(t, Vector{1, 0, 0}, FromNumber(4))
	assert.Equal(t, Vector{1, 1, 1}, FromNumber(7))
	assert.Equal(t, Vector{1, 0, 0, 0}, FromNumber(8))
	assert.Equal(t, Vector{1, 1, 0, 1}, FromNumber(13))
	assert.Equal(t, Vector{1, 1, 1, 1}, FromNumber(15))
}

func Test_FromNumber_02(t *testing.T) {
	bits := FromNumber(math.MaxUint32)
	//
	assert.Equal(t, uint(32), bits.Len())
	assert.NotContains(t, bits, Zero)
}

func Test_FromNumber_03(t *testing.T) {
	// Superfluous leading zeros are lost in the round trip.
	assert.Equal(t, Vector{1, 1}, FromNumber(ToNumber(Vector{0, 0, 1, 1})))
	assert.Equal(t, Vector{1, 0, 1, 1}, FromNumber(ToNumber(Vector{1, 0, 1, 1})))
}

func Test_Width_00(t *testing.T) {
	assert.Equal(t, uint(1), Width(0))
	assert.Equal(t, uint(1), Width(1))
	assert.Equal(t, uint(2), Width(2))
	assert.Equal(t, uint(2), Width(3))
	assert.Equal(t, uint(3), Width(4))
	assert.Equal(t, uint(8), Width(255))
	assert.Equal(t, uint(9), Width(256))
	assert.Equal(t, uint(32), Width(math.MaxUint32))
}

func Test_RoundTrip_00(t *testing.T) {
	for n := uint32(0); n < 65536; n++ {
		checkRoundTrip(t, n)
	}
}

func Test_RoundTrip_01(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 100000; i++ {
		checkRoundTrip(t, rng.Uint32())
	}
	// Extremes
	checkRoundTrip(t, math.MaxUint32)
	checkRoundTrip(t, math.MaxUint32-1)
	checkRoundTrip(t, 1<<31)
}

func TestSlow_RoundTrip_02(t *testing.T) {
	for n := uint64(0); n <= math.MaxUint32; n += 251 {
		checkRoundTrip(t, uint32(n))
	}
}

func Test_ZeroExtend_00(t *testing.T) {
	assert.Equal(t, Vector{0, 0, 1, 1}, ZeroExtend(Vector{1, 1}, 4))
	assert.Equal(t, Vector{1, 1}, ZeroExtend(Vector{1, 1}, 2))
	assert.Equal(t, Vector{1, 0, 1}, ZeroExtend(Vector{1, 0, 1}, 1))
	assert.Equal(t, Vector{0, 0}, ZeroExtend(Vector{}, 2))
}

func Test_ZeroExtend_01(t *testing.T) {
	// Never aliases its argument.
	bits := Vector{1, 0}
	padded := ZeroExtend(bits, 2)
	padded[0] = Zero
	//
	assert.Equal(t, Vector{1, 0}, bits)
}

func Test_Trim_00(t *testing.T) {
	assert.Equal(t, Vector{1, 1}, Trim(Vector{0, 0, 1, 1}))
	assert.Equal(t, Vector{0}, Trim(Vector{0, 0, 0}))
	assert.Equal(t, Vector{1, 0, 0}, Trim(Vector{1, 0, 0}))
	assert.Equal(t, Vector{}, Trim(Vector{}))
}

func Test_Zeros_00(t *testing.T) {
	assert.Equal(t, Vector{0, 0, 0}, Zeros(3))
	assert.Equal(t, uint(0), Zeros(0).Len())
}

func Test_Equal_00(t *testing.T) {
	assert.True(t, Equal(Vector{1, 0}, Vector{1, 0}))
	assert.False(t, Equal(Vector{1, 0}, Vector{0, 1, 0}))
	assert.False(t, Equal(Vector{1, 0}, Vector{1, 1}))
	assert.True(t, Equal(Vector{}, nil))
}

func Test_String_00(t *testing.T) {
	assert.Equal(t, "[1, 0, 1, 1]", Vector{1, 0, 1, 1}.String())
	assert.Equal(t, "[0]", Vector{0}.String())
	assert.Equal(t, "[]", Vector{}.String())
	assert.Equal(t, "1011", Vector{1, 0, 1, 1}.Binary())
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkRoundTrip(t *testing.T, n uint32) {
	bits := FromNumber(n)
	//
	if m := ToNumber(bits); m != n {
		t.Fatalf("round trip of %d gave %d (via %s)", n, m, bits)
	}
	//
	if bits.Len() != Width(n) {
		t.Fatalf("%d encoded using %d bits, expected %d", n, bits.Len(), Width(n))
	}
}

// Generate a random vector of a given length.
func randomVector(rng *rand.Rand, n uint) Vector {
	bits := make(Vector, n)
	//
	for i := range bits {
		bits[i] = Bit(rng.Intn(2))
	}
	//
	return bits
}
