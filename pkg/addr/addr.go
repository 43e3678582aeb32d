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
	"bytes"
	"strings"
)

// Addr is an immutable IP address: either a 4-byte IPv4 or a 16-byte IPv6
// address in big-endian byte order, plus an optional zone that is only ever
// set on a 16-byte address. The zero value Addr{} is the single invalid
// address; every byte length other than 4 or 16 maps to it.
//
// The backing bytes are shared between values but never written through, so
// Addr behaves as a value type.
type Addr struct {
	ip   []byte
	zone string
}

// AddrFrom4 returns the IPv4 address given by the bytes in ip.
func AddrFrom4(ip [4]byte) Addr {
	return Addr{ip: ip[:]}
}

// AddrFrom16 returns the IPv6 address given by the bytes in ip, without a
// zone. Use WithZone to attach one.
func AddrFrom16(ip [16]byte) Addr {
	return Addr{ip: ip[:]}
}

// AddrFromSlice returns the address given by the 4- or 16-byte slice ip. For
// any other length it returns the invalid Addr and false. The slice is
// copied.
func AddrFromSlice(ip []byte) (Addr, bool) {
	switch len(ip) {
	case 4, 16:
		return Addr{ip: bytes.Clone(ip)}, true
	}
	return Addr{}, false
}

// IsValid reports whether a is a 4- or 16-byte address, as opposed to the
// zero Addr.
func (a Addr) IsValid() bool {
	return len(a.ip) == 4 || len(a.ip) == 16
}

// Is4 reports whether a is a 4-byte IPv4 address.
func (a Addr) Is4() bool {
	return len(a.ip) == 4
}

// Is6 reports whether a is a 16-byte IPv6 address. This includes IPv4-mapped
// addresses such as ::ffff:198.51.100.1.
func (a Addr) Is6() bool {
	return len(a.ip) == 16
}

// Is4In6 reports whether a is an IPv4-mapped IPv6 address, i.e. a 16-byte
// address whose first ten bytes are zero and next two are 0xff.
func (a Addr) Is4In6() bool {
	return len(a.ip) == 16 && isZero(a.ip[:10]) && a.ip[10] == 0xff && a.ip[11] == 0xff
}

// Zone returns the IPv6 scoped addressing zone, or "" if there is none. A
// 4-byte address never has a zone.
func (a Addr) Zone() string {
	return a.zone
}

// WithZone returns a copy of a with the given zone. A zone is only
// meaningful for a 16-byte address; on any other value WithZone returns a
// unchanged, so a 4-byte address cannot carry a zone by construction.
func (a Addr) WithZone(zone string) Addr {
	if len(a.ip) != 16 {
		return a
	}
	return Addr{ip: a.ip, zone: zone}
}

// Unmap returns the IPv4 address embedded in an IPv4-mapped IPv6 address.
// Any other value is returned unchanged.
func (a Addr) Unmap() Addr {
	if a.Is4In6() {
		return Addr{ip: a.ip[12:]}
	}
	return a
}

// BitLen returns the width of the address in bits: 32 for IPv4, 128 for
// IPv6, and 0 for the invalid Addr.
func (a Addr) BitLen() int {
	switch len(a.ip) {
	case 4:
		return 32
	case 16:
		return 128
	}
	return 0
}

// As4 returns the address as a 4-byte array. It panics if a is not a 4-byte
// address.
func (a Addr) As4() [4]byte {
	if len(a.ip) != 4 {
		panic("As4 called on non-IPv4 address")
	}
	var b [4]byte
	copy(b[:], a.ip)
	return b
}

// As16 returns the address as a 16-byte array. It panics if a is not a
// 16-byte address.
func (a Addr) As16() [16]byte {
	if len(a.ip) != 16 {
		panic("As16 called on non-IPv6 address")
	}
	var b [16]byte
	copy(b[:], a.ip)
	return b
}

// AsSlice returns a copy of the raw address bytes: 4, 16, or nil for the
// invalid Addr.
func (a Addr) AsSlice() []byte {
	return bytes.Clone(a.ip)
}

// Mask returns a with every bit at position bits and beyond zeroed, counting
// from the most significant bit. It fails with a range error if bits is
// outside [0, a.BitLen()]. The zone is preserved.
func (a Addr) Mask(bits int) (Addr, error) {
	if bits < 0 || bits > a.BitLen() {
		return Addr{}, newRangeError("mask length out of range",
			"bits", bits, "bitLen", a.BitLen())
	}
	out := bytes.Clone(a.ip)
	for i := range out {
		switch {
		case bits >= 8:
			bits -= 8
		case bits == 0:
			out[i] = 0
		default:
			out[i] &= ^byte(0) << (8 - bits)
			bits = 0
		}
	}
	return Addr{ip: out, zone: a.zone}, nil
}

// Next returns the address following a, treating the bytes as one big-endian
// unsigned integer. Incrementing the maximum address yields the invalid
// Addr instead of wrapping. The zone is preserved.
func (a Addr) Next() Addr {
	if !a.IsValid() {
		return Addr{}
	}
	out := bytes.Clone(a.ip)
	for i := len(out) - 1; i >= 0; i-- {
		out[i]++
		if out[i] != 0 {
			return Addr{ip: out, zone: a.zone}
		}
	}
	return Addr{}
}

// Prev returns the address preceding a. Decrementing the zero address yields
// the invalid Addr instead of wrapping. The zone is preserved.
func (a Addr) Prev() Addr {
	if !a.IsValid() {
		return Addr{}
	}
	out := bytes.Clone(a.ip)
	for i := len(out) - 1; i >= 0; i-- {
		out[i]--
		if out[i] != 0xff {
			return Addr{ip: out, zone: a.zone}
		}
	}
	return Addr{}
}

// Compare returns -1, 0 or 1 ordering a and b byte-wise as big-endian
// unsigned integers. When the byte lengths differ, the shorter value sorts
// first; in particular the invalid Addr sorts before everything else. Equal
// bytes are ordered by zone.
func (a Addr) Compare(b Addr) int {
	if c := bytes.Compare(a.ip, b.ip); c != 0 {
		return c
	}
	return strings.Compare(a.zone, b.zone)
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
