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

/*
Package addr contains immutable value types for IP addressing.

An Addr is an IPv4 or IPv6 address, optionally carrying an IPv6 zone. A
Prefix is an Addr plus a prefix length, written in CIDR notation. An
AddrPort is an Addr plus a transport port.

All values are immutable: every transformation returns a new value. The only
sanctioned mutations are the decode-into entry points (UnmarshalText,
UnmarshalBinary, Set), which replace the receiver wholesale and are meant
for deserialization call sites that pre-allocate an empty instance. The
package does no locking; a value fed to a decode-into entry point must be
exclusively owned by the caller.

The package performs no socket I/O, DNS resolution or routing. The text and
binary encodings themselves are the only external interface.
*/
package addr
