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
	"github.com/scionproto/netaddr/pkg/private/serrors"
)

// Every error returned by this package matches exactly one of the sentinels
// below under errors.Is. The categories form a closed set; callers can switch
// on them without fearing new ones.
var (
	// ErrFormat indicates an unrecognized top-level shape, such as an input
	// that is neither IPv4 nor IPv6, or the wrong number of IPv4 fields.
	ErrFormat = serrors.New("addr: invalid format")
	// ErrSyntax indicates a lexical error: an invalid character, or a hextet
	// with too many digits.
	ErrSyntax = serrors.New("addr: invalid character")
	// ErrRange indicates an octet, hextet, port or prefix-length value out of
	// bounds.
	ErrRange = serrors.New("addr: value out of range")
	// ErrStructure indicates a structurally malformed address: multiple
	// ellipses, a misplaced or malformed embedded IPv4, or too few or too
	// many hextets.
	ErrStructure = serrors.New("addr: malformed structure")
	// ErrCodec indicates a binary buffer of the wrong length.
	ErrCodec = serrors.New("addr: bad binary length")
)

func newFormatError(msg string, errCtx ...any) error {
	return serrors.Join(ErrFormat, nil,
		append([]any{"detailMsg", msg}, errCtx...)...)
}

func newSyntaxError(msg string, errCtx ...any) error {
	return serrors.Join(ErrSyntax, nil,
		append([]any{"detailMsg", msg}, errCtx...)...)
}

func newRangeError(msg string, errCtx ...any) error {
	return serrors.Join(ErrRange, nil,
		append([]any{"detailMsg", msg}, errCtx...)...)
}

func newStructureError(msg string, errCtx ...any) error {
	return serrors.Join(ErrStructure, nil,
		append([]any{"detailMsg", msg}, errCtx...)...)
}

func newCodecError(msg string, errCtx ...any) error {
	return serrors.Join(ErrCodec, nil,
		append([]any{"detailMsg", msg}, errCtx...)...)
}
