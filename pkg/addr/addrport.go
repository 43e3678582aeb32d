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
	"strconv"
	"strings"

	"github.com/scionproto/netaddr/pkg/private/serrors"
)

// AddrPort is an Addr plus a transport port. It is valid if and only if the
// address is valid; the port has no intrinsic invariant beyond its storage
// width. The zero value AddrPort{} is invalid.
type AddrPort struct {
	ip   Addr
	port uint16
}

// AddrPortFrom returns an AddrPort with the given address and port. The port
// is taken as is; range validation lives in ParseAddrPort, mirroring the
// constructor discipline of the other types.
func AddrPortFrom(ip Addr, port uint16) AddrPort {
	return AddrPort{ip: ip, port: port}
}

// ParseAddrPort parses s as an address-port pair. Three shapes are
// recognized: ip:port with at most one colon, [v6]:port with mandatory
// brackets for any IPv6 literal (a zone is allowed inside the brackets),
// and anything with more than one unbracketed colon is rejected outright,
// even an otherwise unambiguous bare IPv6 host. The port must be in
// [0, 65535].
func ParseAddrPort(s string) (AddrPort, error) {
	var hostStr, portStr string
	if strings.HasPrefix(s, "[") {
		i := strings.LastIndexByte(s, ']')
		if i < 0 {
			return AddrPort{}, newStructureError("missing closing bracket", "input", s)
		}
		hostStr = s[1:i]
		rest := s[i+1:]
		if len(rest) == 0 || rest[0] != ':' {
			return AddrPort{}, newFormatError("missing port", "input", s)
		}
		portStr = rest[1:]
	} else {
		if strings.Count(s, ":") > 1 {
			return AddrPort{}, newStructureError("IPv6 literal must be bracketed",
				"input", s)
		}
		i := strings.LastIndexByte(s, ':')
		if i < 0 {
			return AddrPort{}, newFormatError("missing port", "input", s)
		}
		hostStr, portStr = s[:i], s[i+1:]
	}
	ip, err := ParseAddr(hostStr)
	if err != nil {
		return AddrPort{}, err
	}
	port, err := parsePort(portStr)
	if err != nil {
		return AddrPort{}, err
	}
	return AddrPort{ip: ip, port: port}, nil
}

// MustParseAddrPort calls ParseAddrPort(s) and panics on error. It is
// intended for call sites where a parse failure indicates a programming
// error, such as tests with hard-coded strings.
func MustParseAddrPort(s string) AddrPort {
	p, err := ParseAddrPort(s)
	if err != nil {
		panic(serrors.Wrap("parsing address-port", err, "value", s))
	}
	return p
}

func parsePort(s string) (uint16, error) {
	if s == "" {
		return 0, newFormatError("empty port")
	}
	val := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, newSyntaxError("invalid character in port", "port", s)
		}
		val = val*10 + int(c-'0')
		if val > 65535 {
			return 0, newRangeError("port out of range", "port", s)
		}
	}
	return uint16(val), nil
}

// Addr returns the address part.
func (p AddrPort) Addr() Addr {
	return p.ip
}

// Port returns the port part.
func (p AddrPort) Port() uint16 {
	return p.port
}

// IsValid reports whether the address part is valid. All ports are valid.
func (p AddrPort) IsValid() bool {
	return p.ip.IsValid()
}

// String returns the ip:port form mirroring the grammar of ParseAddrPort,
// bracketing the address only when it is IPv6 and not IPv4-mapped. The
// invalid AddrPort renders as the empty string.
func (p AddrPort) String() string {
	if !p.IsValid() {
		return ""
	}
	port := strconv.Itoa(int(p.port))
	if p.ip.Is6() && !p.ip.Is4In6() {
		return "[" + p.ip.String() + "]:" + port
	}
	return p.ip.String() + ":" + port
}

// MarshalText implements encoding.TextMarshaler. The encoding is the same as
// returned by String; the invalid AddrPort encodes as the empty text.
func (p AddrPort) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input must be in
// the form accepted by ParseAddrPort, or empty, which decodes to the
// invalid AddrPort. This is a sanctioned decode-into mutation, see
// Addr.UnmarshalText.
func (p *AddrPort) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*p = AddrPort{}
		return nil
	}
	parsed, err := ParseAddrPort(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Set implements flag.Value interface
func (p *AddrPort) Set(s string) error {
	parsed, err := ParseAddrPort(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// binary address followed by the port as two bytes in little-endian order.
// Encoding the invalid AddrPort is an error.
func (p AddrPort) MarshalBinary() ([]byte, error) {
	if !p.IsValid() {
		return nil, newCodecError("cannot encode invalid address-port")
	}
	b := make([]byte, len(p.ip.ip)+2)
	copy(b, p.ip.ip)
	binary.LittleEndian.PutUint16(b[len(b)-2:], p.port)
	return b, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It accepts only 6-
// or 18-byte input. This is a sanctioned decode-into mutation.
func (p *AddrPort) UnmarshalBinary(data []byte) error {
	if len(data) != 6 && len(data) != 18 {
		return newCodecError("invalid address-port length", "len", len(data))
	}
	ip, _ := AddrFromSlice(data[:len(data)-2])
	*p = AddrPort{ip: ip, port: binary.LittleEndian.Uint16(data[len(data)-2:])}
	return nil
}
