package service

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReceiptNoShape(t *testing.T) {
	no := NewReceiptNo()
	assert.True(t, strings.HasPrefix(no, "REC-"))
	assert.Len(t, no, len("REC-")+32)
}

// Receipts created in the same burst must never collide, even inside one
// clock tick.
func TestNewReceiptNoConcurrentUniqueness(t *testing.T) {
	const n = 500

	var mu sync.Mutex
	seen := make(map[string]struct{}, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			no := NewReceiptNo()
			mu.Lock()
			seen[no] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n)
}
