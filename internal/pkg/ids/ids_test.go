//go:build unit

package ids_test

import (
	"sort"
	"testing"

	"webmall/internal/pkg/ids"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	seen := make(map[string]bool)
	var minted []string
	for i := 0; i < 100; i++ {
		n := ids.NewOrderNumber()
		require.True(t, ids.IsOrderNumber(n), "minted number should round-trip: %s", n)
		require.False(t, seen[n], "order numbers must be unique")
		seen[n] = true
		minted = append(minted, n)
	}

	assert.True(t, sort.StringsAreSorted(minted), "numbers minted in sequence sort by creation time")
	assert.False(t, ids.IsOrderNumber("ORD-not-a-ulid"))
	assert.False(t, ids.IsOrderNumber("X-01HZZZZZZZZZZZZZZZZZZZZZZZ"))
}
