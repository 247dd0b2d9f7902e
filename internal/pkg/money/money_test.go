//go:build unit

package money_test

import (
	"testing"

	"webmall/internal/pkg/money"

	"github.com/stretchr/testify/assert"
)

func TestFormatLKR(t *testing.T) {
	cases := map[int64]string{
		0:       "LKR 0",
		999:     "LKR 999",
		1000:    "LKR 1,000",
		25500:   "LKR 25,500",
		1234567: "LKR 1,234,567",
	}
	for in, want := range cases {
		assert.Equal(t, want, money.FormatLKR(in))
	}
}
