package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryOperations(t *testing.T) {
	m := NewMemory()
	m.Clear()
	assert.Equal(t, 0.0, m.Recall())

	assert.Equal(t, 5.0, m.Add(5))
	assert.InDelta(t, 8.2, m.Add(3.2), 1e-12)
	assert.InDelta(t, 7.2, m.Subtract(1), 1e-12)
	assert.InDelta(t, 7.2, m.Recall(), 1e-12)

	m.Clear()
	assert.Equal(t, 0.0, m.Recall())

	m.Set(42)
	assert.Equal(t, 42.0, m.Recall())
}

func TestMemoryConcurrentAdds(t *testing.T) {
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Add(1)
				m.Subtract(0.5)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 500.0, m.Recall())
}
