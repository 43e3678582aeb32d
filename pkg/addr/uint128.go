// Copyright 2025 SCION Association
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package addr

import (
	"encoding/binary"
	"math/bits"
)

// uint128 is a fixed-width 128-bit unsigned integer, big enough for exact
// arithmetic over the widest address. Address range computation must not use
// native integer arithmetic, which silently overflows for IPv6.
type uint128 struct {
	hi uint64
	lo uint64
}

func uint128From16(b [16]byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

func (u uint128) to16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}

// add returns u+v with wrap-around semantics.
func (u uint128) add(v uint128) uint128 {
	lo, carry := bits.Add64(u.lo, v.lo, 0)
	hi, _ := bits.Add64(u.hi, v.hi, carry)
	return uint128{hi: hi, lo: lo}
}

// lowBitsMask returns 2^n - 1, i.e. the value with the low n bits set, for n
// in [0, 128].
func lowBitsMask(n int) uint128 {
	switch {
	case n >= 128:
		return uint128{hi: ^uint64(0), lo: ^uint64(0)}
	case n >= 64:
		return uint128{hi: 1<<(n-64) - 1, lo: ^uint64(0)}
	default:
		return uint128{lo: 1<<n - 1}
	}
}
