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

package addr_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scionproto/netaddr/pkg/addr"
)

func TestAddrZeroValue(t *testing.T) {
	var a addr.Addr
	assert.False(t, a.IsValid())
	assert.False(t, a.Is4())
	assert.False(t, a.Is6())
	assert.Equal(t, 0, a.BitLen())
	assert.Equal(t, "", a.String())
	assert.Equal(t, "", a.Zone())
	assert.Nil(t, a.AsSlice())
}

func TestAddrConstructors(t *testing.T) {
	a := addr.AddrFrom4([4]byte{198, 51, 100, 1})
	assert.True(t, a.Is4())
	assert.Equal(t, 32, a.BitLen())
	assert.Equal(t, "198.51.100.1", a.String())

	b := addr.AddrFrom16([16]byte{15: 1})
	assert.True(t, b.Is6())
	assert.Equal(t, 128, b.BitLen())
	assert.Equal(t, "::1", b.String())

	c, ok := addr.AddrFromSlice([]byte{10, 0, 0, 1})
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", c.String())

	_, ok = addr.AddrFromSlice([]byte{1, 2, 3})
	assert.False(t, ok)
	_, ok = addr.AddrFromSlice(nil)
	assert.False(t, ok)
}

func TestAddrWithZone(t *testing.T) {
	v6 := addr.MustParseAddr("fe80::1")
	zoned := v6.WithZone("en0")
	assert.Equal(t, "en0", zoned.Zone())
	assert.Equal(t, "fe80::1%en0", zoned.String())
	// The original value is untouched.
	assert.Equal(t, "", v6.Zone())
	// Clearing works.
	assert.Equal(t, "", zoned.WithZone("").Zone())

	// A 4-byte address can never carry a zone.
	v4 := addr.MustParseAddr("10.0.0.1")
	assert.Equal(t, "", v4.WithZone("en0").Zone())
	assert.Equal(t, 0, v4.WithZone("en0").Compare(v4))
}

func TestAddrUnmap(t *testing.T) {
	mapped := addr.MustParseAddr("::ffff:1.2.3.4")
	require.True(t, mapped.Is4In6())
	un := mapped.Unmap()
	assert.True(t, un.Is4())
	assert.Equal(t, "1.2.3.4", un.String())

	// Non-mapped values are returned unchanged.
	plain := addr.MustParseAddr("2001:db8::1")
	assert.False(t, plain.Is4In6())
	assert.Equal(t, 0, plain.Unmap().Compare(plain))
	v4 := addr.MustParseAddr("1.2.3.4")
	assert.Equal(t, 0, v4.Unmap().Compare(v4))
}

func TestAddrAsArray(t *testing.T) {
	a := addr.MustParseAddr("1.2.3.4")
	assert.Equal(t, [4]byte{1, 2, 3, 4}, a.As4())
	assert.Panics(t, func() { a.As16() })

	b := addr.MustParseAddr("::1")
	assert.Equal(t, [16]byte{15: 1}, b.As16())
	assert.Panics(t, func() { b.As4() })

	assert.Panics(t, func() { addr.Addr{}.As4() })
	assert.Panics(t, func() { addr.Addr{}.As16() })
}

func TestAddrMask(t *testing.T) {
	testCases := map[string]struct {
		in   string
		bits int
		want string
	}{
		"v4 /24":   {in: "192.168.1.42", bits: 24, want: "192.168.1.0"},
		"v4 /12":   {in: "172.17.3.4", bits: 12, want: "172.16.0.0"},
		"v4 /0":    {in: "255.255.255.255", bits: 0, want: "0.0.0.0"},
		"v4 /32":   {in: "10.0.0.1", bits: 32, want: "10.0.0.1"},
		"v6 /32":   {in: "2001:db8:85a3::8a2e:370:7334", bits: 32, want: "2001:db8::"},
		"v6 /0":    {in: "2001:db8::1", bits: 0, want: "::"},
		"v6 /128":  {in: "2001:db8::1", bits: 128, want: "2001:db8::1"},
		"v6 /67":   {in: "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", bits: 67, want: "ffff:ffff:ffff:ffff:e000::"},
		"v6 zoned": {in: "fe80::dead:beef%en0", bits: 64, want: "fe80::%en0"},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			a := addr.MustParseAddr(tc.in)
			masked, err := a.Mask(tc.bits)
			require.NoError(t, err)
			assert.Equal(t, tc.want, masked.String())

			// Masking is idempotent.
			again, err := masked.Mask(tc.bits)
			require.NoError(t, err)
			assert.Equal(t, 0, masked.Compare(again))
		})
	}
}

func TestAddrMaskRangeError(t *testing.T) {
	v4 := addr.MustParseAddr("10.0.0.1")
	_, err := v4.Mask(33)
	assert.ErrorIs(t, err, addr.ErrRange)
	_, err = v4.Mask(-1)
	assert.ErrorIs(t, err, addr.ErrRange)

	v6 := addr.MustParseAddr("::1")
	_, err = v6.Mask(129)
	assert.ErrorIs(t, err, addr.ErrRange)
	_, err = v6.Mask(128)
	assert.NoError(t, err)

	// The invalid Addr has bit length 0, so only Mask(0) is in range.
	_, err = addr.Addr{}.Mask(0)
	assert.NoError(t, err)
	_, err = addr.Addr{}.Mask(1)
	assert.ErrorIs(t, err, addr.ErrRange)
}

func TestAddrNextPrev(t *testing.T) {
	testCases := map[string]string{
		"0.0.0.0":                                "0.0.0.1",
		"0.0.0.255":                              "0.0.1.0",
		"10.255.255.255":                         "11.0.0.0",
		"::":                                     "::1",
		"::ff":                                   "::100",
		"::ffff":                                 "::1:0",
		"2001:db8:ffff:ffff:ffff:ffff:ffff:ffff": "2001:db9::",
	}
	for in, want := range testCases {
		t.Run(in, func(t *testing.T) {
			a := addr.MustParseAddr(in)
			next := a.Next()
			assert.Equal(t, want, next.String())
			assert.Equal(t, 0, next.Prev().Compare(a), "prev(next(a)) != a")
		})
	}
}

func TestAddrNextPrevEnds(t *testing.T) {
	assert.False(t, addr.MustParseAddr("255.255.255.255").Next().IsValid())
	assert.False(t, addr.MustParseAddr("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff").Next().IsValid())
	assert.False(t, addr.MustParseAddr("0.0.0.0").Prev().IsValid())
	assert.False(t, addr.MustParseAddr("::").Prev().IsValid())
	assert.False(t, addr.Addr{}.Next().IsValid())
	assert.False(t, addr.Addr{}.Prev().IsValid())
}

func TestAddrNextPrevZone(t *testing.T) {
	a := addr.MustParseAddr("fe80::1%en0")
	assert.Equal(t, "fe80::2%en0", a.Next().String())
	assert.Equal(t, "fe80::%en0", a.Prev().String())
}

func TestAddrCompare(t *testing.T) {
	// Expected order: the invalid Addr sorts before everything, 0.0.0.0
	// before :: (shorter before longer on equal bytes), bytes decide
	// otherwise, and the zone is the final tiebreaker.
	want := []string{
		"",
		"0.0.0.0",
		"::",
		"::1",
		"::1%a",
		"::1%b",
		"::1:0",
		"1.2.3.4",
		"2001:db8::",
		"100.0.0.0",
		"255.0.0.0",
	}
	addrs := []addr.Addr{
		addr.MustParseAddr("255.0.0.0"),
		addr.MustParseAddr("::1%b"),
		addr.MustParseAddr("1.2.3.4"),
		addr.MustParseAddr("::"),
		addr.MustParseAddr("::1:0"),
		{},
		addr.MustParseAddr("2001:db8::"),
		addr.MustParseAddr("::1"),
		addr.MustParseAddr("0.0.0.0"),
		addr.MustParseAddr("100.0.0.0"),
		addr.MustParseAddr("::1%a"),
	}
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Compare(addrs[j]) < 0 })
	got := make([]string, 0, len(addrs))
	for _, a := range addrs {
		got = append(got, a.String())
	}
	assert.Equal(t, want, got)
}

func TestAddrSet(t *testing.T) {
	var a addr.Addr
	require.NoError(t, a.Set("2001:db8::1"))
	assert.Equal(t, "2001:db8::1", a.String())
	assert.Error(t, a.Set("not-an-address"))
	// The value is left untouched on error.
	assert.Equal(t, "2001:db8::1", a.String())
}
