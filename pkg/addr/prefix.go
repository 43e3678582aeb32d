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
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/scionproto/netaddr/pkg/private/serrors"
)

// Prefix is a CIDR network prefix: an Addr plus a prefix length in bits. It
// is valid if and only if the address is valid and the prefix length is in
// [0, BitLen] of the address. The zero value Prefix{} is invalid.
type Prefix struct {
	ip   Addr
	bits int
}

// PrefixFrom returns a Prefix with the given address and prefix length. A
// prefix length outside [0, ip.BitLen()] silently becomes the sentinel -1
// instead of failing; the validating entry point is ParsePrefix.
func PrefixFrom(ip Addr, bits int) Prefix {
	if bits < 0 || bits > ip.BitLen() {
		bits = -1
	}
	return Prefix{ip: ip, bits: bits}
}

// ParsePrefix parses s as an address/bits CIDR prefix. Unlike PrefixFrom, an
// out-of-range prefix length is an error here. A zone is never legal in a
// prefix.
func ParsePrefix(s string) (Prefix, error) {
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return Prefix{}, newFormatError("prefix needs address/bits form", "input", s)
	}
	ip, err := ParseAddr(s[:i])
	if err != nil {
		return Prefix{}, err
	}
	if ip.Zone() != "" {
		return Prefix{}, newFormatError("zone is not legal in a prefix", "input", s)
	}
	bitsStr := s[i+1:]
	if bitsStr == "" {
		return Prefix{}, newSyntaxError("empty prefix length", "input", s)
	}
	for j := 0; j < len(bitsStr); j++ {
		if bitsStr[j] < '0' || bitsStr[j] > '9' {
			return Prefix{}, newSyntaxError("invalid character in prefix length",
				"input", s)
		}
	}
	bits, err := strconv.Atoi(bitsStr)
	if err != nil || bits > ip.BitLen() {
		return Prefix{}, newRangeError("prefix length out of range",
			"bits", bitsStr, "bitLen", ip.BitLen(), "input", s)
	}
	return Prefix{ip: ip, bits: bits}, nil
}

// MustParsePrefix calls ParsePrefix(s) and panics on error. It is intended
// for call sites where a parse failure indicates a programming error, such
// as tests with hard-coded strings.
func MustParsePrefix(s string) Prefix {
	p, err := ParsePrefix(s)
	if err != nil {
		panic(serrors.Wrap("parsing prefix", err, "value", s))
	}
	return p
}

// Addr returns the address of the prefix, not reduced to the network
// address; see Masked.
func (p Prefix) Addr() Addr {
	return p.ip
}

// Bits returns the prefix length, or -1 for the out-of-range sentinel.
func (p Prefix) Bits() int {
	return p.bits
}

// IsValid reports whether the address is valid and the prefix length is in
// range.
func (p Prefix) IsValid() bool {
	return p.ip.IsValid() && p.bits >= 0
}

// Contains reports whether the prefix includes ip, comparing the top Bits()
// bits. An invalid operand or a family mismatch is never contained. The
// zone does not participate.
func (p Prefix) Contains(ip Addr) bool {
	if !p.IsValid() || !ip.IsValid() || len(p.ip.ip) != len(ip.ip) {
		return false
	}
	bits := p.bits
	a, b := p.ip.ip, ip.ip
	for i := 0; i < len(a) && bits > 0; i++ {
		if bits >= 8 {
			if a[i] != b[i] {
				return false
			}
			bits -= 8
			continue
		}
		mask := ^byte(0) << (8 - bits)
		return a[i]&mask == b[i]&mask
	}
	return true
}

// Masked returns the prefix with its address reduced to the network address.
// An invalid prefix yields the invalid Prefix rather than an error.
func (p Prefix) Masked() Prefix {
	if !p.IsValid() {
		return Prefix{}
	}
	ip, _ := p.ip.Mask(p.bits)
	return Prefix{ip: ip, bits: p.bits}
}

// Overlaps reports whether any address is contained in both p and o. Both
// prefixes must be valid and of the same family.
func (p Prefix) Overlaps(o Prefix) bool {
	if !p.IsValid() || !o.IsValid() || p.ip.BitLen() != o.ip.BitLen() {
		return false
	}
	minBits := min(p.bits, o.bits)
	a, _ := p.ip.Mask(minBits)
	b, _ := o.ip.Mask(minBits)
	return bytes.Equal(a.ip, b.ip)
}

// Range returns the first and the last address of the prefix. The
// computation uses exact fixed-width arithmetic over the full address
// width; both ends carry the zone of the prefix address. An invalid prefix
// is an error.
func (p Prefix) Range() (from, to Addr, err error) {
	if !p.IsValid() {
		return Addr{}, Addr{}, serrors.New("range of invalid prefix")
	}
	from, _ = p.ip.Mask(p.bits)
	if from.Is4() {
		base := uint64(binary.BigEndian.Uint32(from.ip))
		last := base + (uint64(1)<<(32-p.bits) - 1)
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(last))
		return from, AddrFrom4(b), nil
	}
	u := uint128From16(from.As16())
	u = u.add(lowBitsMask(128 - p.bits))
	to = AddrFrom16(u.to16()).WithZone(p.ip.Zone())
	return from, to, nil
}

// String returns the address/bits form, or the empty string for an invalid
// prefix.
func (p Prefix) String() string {
	if !p.IsValid() {
		return ""
	}
	return p.ip.String() + "/" + strconv.Itoa(p.bits)
}

// MarshalText implements encoding.TextMarshaler. The encoding is the same as
// returned by String; the invalid Prefix encodes as the empty text.
func (p Prefix) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The prefix must be in
// the form accepted by ParsePrefix, or empty, which decodes to the invalid
// Prefix. This is a sanctioned decode-into mutation, see Addr.UnmarshalText.
func (p *Prefix) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = Prefix{}
		return nil
	}
	parsed, err := ParsePrefix(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Set implements flag.Value interface
func (p *Prefix) Set(s string) error {
	parsed, err := ParsePrefix(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// binary address followed by one byte holding the prefix length. Encoding
// the invalid Prefix is an error.
func (p Prefix) MarshalBinary() ([]byte, error) {
	if !p.IsValid() {
		return nil, newCodecError("cannot encode invalid prefix")
	}
	b := make([]byte, 0, len(p.ip.ip)+1)
	b = append(b, p.ip.ip...)
	return append(b, byte(p.bits)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts only 5-
// or 17-byte input. The trailing prefix-length byte is applied with
// PrefixFrom semantics: a value beyond the address width yields the -1
// sentinel, not an error. This is a sanctioned decode-into mutation.
func (p *Prefix) UnmarshalBinary(data []byte) error {
	if len(data) != 5 && len(data) != 17 {
		return newCodecError("invalid prefix length", "len", len(data))
	}
	ip, _ := AddrFromSlice(data[:len(data)-1])
	*p = PrefixFrom(ip, int(data[len(data)-1]))
	return nil
}
