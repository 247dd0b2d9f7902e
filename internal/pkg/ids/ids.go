package ids

import (
	"crypto/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy = ulid.Monotonic(rand.Reader, 0)
)

// New returns a ULID string; lexicographic order follows creation time.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String()
}

// NewOrderNumber returns a human-quotable order number like ORD-01J....
func NewOrderNumber() string {
	return "ORD-" + New()
}

// IsOrderNumber reports whether s looks like a number minted here.
func IsOrderNumber(s string) bool {
	if !strings.HasPrefix(s, "ORD-") {
		return false
	}
	_, err := ulid.ParseStrict(s[len("ORD-"):])
	return err == nil
}
