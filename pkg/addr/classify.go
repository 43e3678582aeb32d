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

// Classification predicates. Each is a pure test over fixed byte ranges; an
// IPv4-mapped IPv6 address is classified by its 16-byte form, not by the
// embedded IPv4 address.

// IsUnspecified reports whether a is the all-zero address, either 0.0.0.0 or
// ::.
func (a Addr) IsUnspecified() bool {
	return a.IsValid() && isZero(a.ip)
}

// IsLoopback reports whether a is a loopback address: 127.0.0.0/8 or ::1.
func (a Addr) IsLoopback() bool {
	switch len(a.ip) {
	case 4:
		return a.ip[0] == 127
	case 16:
		return isZero(a.ip[:15]) && a.ip[15] == 1
	}
	return false
}

// IsMulticast reports whether a is a multicast address: 224.0.0.0/4 or
// ff00::/8.
func (a Addr) IsMulticast() bool {
	switch len(a.ip) {
	case 4:
		return a.ip[0]&0xf0 == 0xe0
	case 16:
		return a.ip[0] == 0xff
	}
	return false
}

// IsInterfaceLocalMulticast reports whether a is an IPv6 interface-local
// multicast address (scope 1). There is no IPv4 equivalent.
func (a Addr) IsInterfaceLocalMulticast() bool {
	return len(a.ip) == 16 && a.ip[0] == 0xff && a.ip[1]&0x0f == 0x01
}

// IsLinkLocalMulticast reports whether a is a link-local multicast address:
// 224.0.0.0/24, or IPv6 multicast with scope 2.
func (a Addr) IsLinkLocalMulticast() bool {
	switch len(a.ip) {
	case 4:
		return a.ip[0] == 224 && a.ip[1] == 0 && a.ip[2] == 0
	case 16:
		return a.ip[0] == 0xff && a.ip[1]&0x0f == 0x02
	}
	return false
}

// IsLinkLocalUnicast reports whether a is a link-local unicast address:
// 169.254.0.0/16 or fe80::/10.
func (a Addr) IsLinkLocalUnicast() bool {
	switch len(a.ip) {
	case 4:
		return a.ip[0] == 169 && a.ip[1] == 254
	case 16:
		return a.ip[0] == 0xfe && a.ip[1]&0xc0 == 0x80
	}
	return false
}

// IsPrivate reports whether a is a private address: 10.0.0.0/8,
// 172.16.0.0/12, 192.168.0.0/16, or the IPv6 unique-local range fc00::/7.
func (a Addr) IsPrivate() bool {
	switch len(a.ip) {
	case 4:
		return a.ip[0] == 10 ||
			(a.ip[0] == 172 && a.ip[1]&0xf0 == 16) ||
			(a.ip[0] == 192 && a.ip[1] == 168)
	case 16:
		return a.ip[0]&0xfe == 0xfc
	}
	return false
}

// IsGlobalUnicast reports whether a is a global unicast address. It is
// defined as the negation of the other special categories for the address
// family, not as a positive check against an allocation table; notably,
// private addresses count as global unicast.
func (a Addr) IsGlobalUnicast() bool {
	return a.IsValid() && !a.IsUnspecified() && !a.IsLoopback() &&
		!a.IsMulticast() && !a.IsLinkLocalUnicast()
}
