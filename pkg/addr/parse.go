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
	"strings"

	"github.com/scionproto/netaddr/pkg/private/serrors"
)

// ParseAddr parses s as an IP address. An input containing a colon is parsed
// with the IPv6 grammar, an input containing a dot (and no colon) with the
// IPv4 grammar; anything else is a format error.
//
// The IPv4 grammar is four dot-separated decimal octets in [0, 255]. Leading
// zeros in an octet are accepted and parsed as decimal.
//
// The IPv6 grammar is up to eight colon-separated hextets of 1-4 hex digits,
// with at most one :: run expanding to the zero hextets needed to reach
// eight, an optional trailing dotted quad replacing the final two hextets,
// and an optional non-empty %zone suffix. Inside the embedded dotted quad,
// leading zeros are rejected.
func ParseAddr(s string) (Addr, error) {
	switch {
	case strings.IndexByte(s, ':') >= 0:
		return parseAddr6(s)
	case strings.IndexByte(s, '.') >= 0:
		return parseAddr4(s)
	}
	return Addr{}, newFormatError("unrecognized address shape", "input", s)
}

// MustParseAddr calls ParseAddr(s) and panics on error. It is intended for
// call sites where a parse failure indicates a programming error, such as
// tests with hard-coded strings.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(serrors.Wrap("parsing address", err, "value", s))
	}
	return a
}

func parseAddr4(s string) (Addr, error) {
	fields := strings.Split(s, ".")
	if len(fields) != 4 {
		return Addr{}, newFormatError("IPv4 address needs four fields",
			"fields", len(fields), "input", s)
	}
	var ip [4]byte
	for i, field := range fields {
		if field == "" {
			return Addr{}, newSyntaxError("empty IPv4 field", "input", s)
		}
		val := 0
		for j := 0; j < len(field); j++ {
			c := field[j]
			if c < '0' || c > '9' {
				return Addr{}, newSyntaxError("invalid character in IPv4 field",
					"field", field, "input", s)
			}
			val = val*10 + int(c-'0')
			if val > 255 {
				return Addr{}, newRangeError("IPv4 field out of range",
					"field", field, "input", s)
			}
		}
		ip[i] = byte(val)
	}
	return AddrFrom4(ip), nil
}

func parseAddr6(in string) (Addr, error) {
	s := in
	zone := ""
	if i := strings.IndexByte(s, '%'); i >= 0 {
		s, zone = s[:i], s[i+1:]
		if zone == "" {
			return Addr{}, newFormatError("zone must not be empty", "input", in)
		}
	}
	if s == "" {
		return Addr{}, newFormatError("empty address before zone", "input", in)
	}

	var ip [16]byte
	ellipsis := -1 // byte offset of the :: run, or -1
	n := 0         // bytes of ip filled so far

	if len(s) >= 2 && s[0] == ':' && s[1] == ':' {
		ellipsis = 0
		s = s[2:]
		if len(s) == 0 {
			return AddrFrom16(ip).WithZone(zone), nil
		}
	}

	for n < 16 {
		// A hextet of 1-4 hex digits.
		acc, off := 0, 0
		for ; off < len(s); off++ {
			d, ok := hexDigit(s[off])
			if !ok {
				break
			}
			if off == 4 {
				return Addr{}, newSyntaxError("hextet has too many digits", "input", in)
			}
			acc = acc<<4 | d
		}
		if off == 0 {
			if s[0] == ':' {
				return Addr{}, newStructureError("empty hextet", "input", in)
			}
			return Addr{}, newSyntaxError("invalid character in hextet",
				"char", string(s[0]), "input", in)
		}

		// A trailing dotted quad replaces the final two hextets. It must land
		// in the last four bytes, either because all other slots are
		// exhausted or because the ellipsis makes room.
		if off < len(s) && s[off] == '.' {
			if (ellipsis < 0 && n != 12) || n+4 > 16 {
				return Addr{}, newStructureError(
					"embedded IPv4 not in the final four bytes", "input", in)
			}
			v4, err := parseEmbedded4(s, in)
			if err != nil {
				return Addr{}, err
			}
			copy(ip[n:], v4[:])
			n += 4
			s = ""
			break
		}

		ip[n] = byte(acc >> 8)
		ip[n+1] = byte(acc)
		n += 2

		s = s[off:]
		if len(s) == 0 {
			break
		}
		if s[0] != ':' {
			return Addr{}, newSyntaxError("unexpected character after hextet",
				"char", string(s[0]), "input", in)
		}
		if len(s) == 1 {
			return Addr{}, newStructureError("address ends in a lone colon", "input", in)
		}
		s = s[1:]

		if s[0] == ':' {
			if ellipsis >= 0 {
				return Addr{}, newStructureError("multiple ellipses", "input", in)
			}
			ellipsis = n
			s = s[1:]
			if len(s) == 0 {
				break
			}
		}
	}

	if len(s) != 0 {
		return Addr{}, newStructureError("too many hextets", "input", in)
	}
	if n < 16 {
		if ellipsis < 0 {
			return Addr{}, newStructureError("too few hextets", "input", in)
		}
		// Expand the ellipsis to the exact number of zero bytes needed.
		m := 16 - n
		for i := n - 1; i >= ellipsis; i-- {
			ip[i+m] = ip[i]
		}
		for i := ellipsis + m - 1; i >= ellipsis; i-- {
			ip[i] = 0
		}
	} else if ellipsis >= 0 {
		return Addr{}, newStructureError("ellipsis expands to zero hextets", "input", in)
	}
	return AddrFrom16(ip).WithZone(zone), nil
}

// parseEmbedded4 parses the trailing dotted quad of an IPv6 address. Unlike
// the top-level IPv4 grammar, leading zeros in an octet are rejected here.
func parseEmbedded4(s, in string) ([4]byte, error) {
	var ip [4]byte
	fields := strings.Split(s, ".")
	if len(fields) != 4 {
		return ip, newStructureError("embedded IPv4 needs four fields",
			"fields", len(fields), "input", in)
	}
	for i, field := range fields {
		if field == "" {
			return ip, newStructureError("empty embedded IPv4 field", "input", in)
		}
		if len(field) > 1 && field[0] == '0' {
			return ip, newStructureError("leading zeros in embedded IPv4 field",
				"field", field, "input", in)
		}
		val := 0
		for j := 0; j < len(field); j++ {
			c := field[j]
			if c < '0' || c > '9' {
				return ip, newSyntaxError("invalid character in embedded IPv4 field",
					"field", field, "input", in)
			}
			val = val*10 + int(c-'0')
			if val > 255 {
				return ip, newRangeError("embedded IPv4 field out of range",
					"field", field, "input", in)
			}
		}
		ip[i] = byte(val)
	}
	return ip, nil
}

func hexDigit(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}
