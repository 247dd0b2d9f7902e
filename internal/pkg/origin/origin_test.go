//go:build unit

package origin_test

import (
	"testing"

	"webmall/internal/pkg/origin"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "plain origin", in: "https://shop.example.com", want: "https://shop.example.com", ok: true},
		{name: "path stripped", in: "https://shop.example.com/cart?x=1", want: "https://shop.example.com", ok: true},
		{name: "port preserved", in: "http://localhost:3000", want: "http://localhost:3000", ok: true},
		{name: "case folded", in: "HTTPS://Shop.Example.COM", want: "https://shop.example.com", ok: true},
		{name: "missing scheme", in: "shop.example.com", ok: false},
		{name: "empty", in: "", ok: false},
		{name: "garbage", in: "::::", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := origin.Normalize(tc.in)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	allowed := []string{
		"https://shop.example.com",
		"http://localhost:3000",
		"not a url", // malformed entries are skipped, not fatal
	}

	assert.True(t, origin.Match("https://shop.example.com/checkout", allowed))
	assert.True(t, origin.Match("http://localhost:3000", allowed))
	assert.False(t, origin.Match("https://evil.example.com", allowed))
	assert.False(t, origin.Match("http://shop.example.com", allowed), "scheme is part of the origin")
	assert.False(t, origin.Match("https://shop.example.com:8443", allowed), "port is part of the origin")
	assert.False(t, origin.Match("::::", allowed))
}

func TestSame(t *testing.T) {
	assert.True(t, origin.Same("https://a.lk/path", "https://a.lk"))
	assert.False(t, origin.Same("https://a.lk", "https://b.lk"))
	assert.False(t, origin.Same("", "https://a.lk"))
}
