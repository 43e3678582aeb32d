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
	"strconv"
)

const hexLower = "0123456789abcdef"

// String returns the canonical text form of the address: dotted decimal for
// IPv4 without leading zeros, and lowercase hex hextets for IPv6 with the
// first all-zero hextet run collapsed to ::. An IPv4-mapped address is
// always rendered ::ffff:a.b.c.d, overriding the generic compression. A
// zone is appended as %zone after all other formatting. The invalid Addr
// renders as the empty string.
//
// Note that the compression picks the first zero run, not the longest one,
// for compatibility with the established output of this encoding.
func (a Addr) String() string {
	if !a.IsValid() {
		return ""
	}
	return string(a.AppendTo(nil))
}

// StringExpanded is like String but for IPv6 addresses it always emits all
// eight hextets zero-padded to four hex digits with no compression, for
// unambiguous logging. IPv4 addresses render as with String.
func (a Addr) StringExpanded() string {
	if len(a.ip) != 16 {
		return a.String()
	}
	b := make([]byte, 0, 39+len(a.zone)+1)
	for i := 0; i < 8; i++ {
		if i > 0 {
			b = append(b, ':')
		}
		h := a.hextet(i)
		b = append(b,
			hexLower[h>>12&0xf], hexLower[h>>8&0xf], hexLower[h>>4&0xf], hexLower[h&0xf])
	}
	return string(a.appendZone(b))
}

// AppendTo appends the text encoding of a, as generated by MarshalText, to b
// and returns the extended buffer. The invalid Addr appends nothing.
func (a Addr) AppendTo(b []byte) []byte {
	switch len(a.ip) {
	case 4:
		return appendDotted(b, a.ip)
	case 16:
		return a.appendTo6(b)
	}
	return b
}

func (a Addr) appendTo6(b []byte) []byte {
	if a.Is4In6() {
		b = append(b, "::ffff:"...)
		b = appendDotted(b, a.ip[12:])
		return a.appendZone(b)
	}
	// Collapse the first run of zero hextets. zeroEnd is one past the run.
	zeroStart, zeroEnd := -1, -1
	for i := 0; i < 8; i++ {
		if a.hextet(i) == 0 {
			zeroStart = i
			for zeroEnd = i; zeroEnd < 8 && a.hextet(zeroEnd) == 0; zeroEnd++ {
			}
			break
		}
	}
	for i := 0; i < 8; i++ {
		if i == zeroStart {
			b = append(b, ':', ':')
			i = zeroEnd - 1
			continue
		}
		if i > 0 && i != zeroEnd {
			b = append(b, ':')
		}
		b = strconv.AppendUint(b, uint64(a.hextet(i)), 16)
	}
	return a.appendZone(b)
}

func (a Addr) appendZone(b []byte) []byte {
	if a.zone != "" {
		b = append(b, '%')
		b = append(b, a.zone...)
	}
	return b
}

func appendDotted(b, ip []byte) []byte {
	for i, octet := range ip {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(octet), 10)
	}
	return b
}

// hextet returns the i-th 16-bit group of a 16-byte address.
func (a Addr) hextet(i int) uint16 {
	return uint16(a.ip[2*i])<<8 | uint16(a.ip[2*i+1])
}

// MarshalText implements encoding.TextMarshaler. The encoding is the same as
// returned by String; the invalid Addr encodes as the empty text.
func (a Addr) MarshalText() ([]byte, error) {
	return a.AppendTo(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The address must be in
// the form accepted by ParseAddr, or empty, which decodes to the invalid
// Addr. This is a sanctioned decode-into mutation: it replaces the receiver
// wholesale and must only be used on an exclusively owned value.
func (a *Addr) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	p, err := ParseAddr(string(text))
	if err != nil {
		return err
	}
	*a = p
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is exactly
// the raw 4 or 16 address bytes; the zone is never encoded, so a zoned
// address does not survive a binary round trip. Unlike the textual marshal,
// encoding the invalid Addr is an error.
func (a Addr) MarshalBinary() ([]byte, error) {
	if !a.IsValid() {
		return nil, newCodecError("cannot encode invalid address")
	}
	return bytes.Clone(a.ip), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts only 4-
// or 16-byte input. This is a sanctioned decode-into mutation, see
// UnmarshalText.
func (a *Addr) UnmarshalBinary(data []byte) error {
	p, ok := AddrFromSlice(data)
	if !ok {
		return newCodecError("invalid address length", "len", len(data))
	}
	*a = p
	return nil
}

// Set implements flag.Value interface
func (a *Addr) Set(s string) error {
	p, err := ParseAddr(s)
	if err != nil {
		return err
	}
	*a = p
	return nil
}
