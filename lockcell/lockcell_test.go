package lockcell_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DexerMatters/reactivity/lockcell"
)

// a wrapped cell guards storage the caller keeps owning
func TestWrapSharesCallerStorage(t *testing.T) {
	v := 1
	c := lockcell.Wrap(&v)

	assert.Equal(t, 1, c.Load())

	c.Store(2)
	assert.Equal(t, 2, v)

	v = 3
	assert.Equal(t, 3, c.Load())
}

// an owned cell allocates its own storage
func TestOwn(t *testing.T) {
	c := lockcell.Own("a")
	assert.Equal(t, "a", c.Load())

	c.Store("b")
	assert.Equal(t, "b", c.Load())
}

// View reads in place, Mutate writes in place
func TestViewAndMutate(t *testing.T) {
	c := lockcell.Own([]int{1, 2})

	c.Mutate(func(v *[]int) {
		*v = append(*v, 3)
	})

	var n int
	c.View(func(v *[]int) {
		n = len(*v)
	})
	assert.Equal(t, 3, n)
}

// concurrent loads and stores never tear
func TestConcurrentAccess(t *testing.T) {
	c := lockcell.Own(int64(0))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := int64(1); i <= 2000; i++ {
			c.Store(i)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			v := c.Load()
			assert.GreaterOrEqual(t, v, int64(0))
			assert.LessOrEqual(t, v, int64(2000))
		}
	}()
	wg.Wait()

	assert.Equal(t, int64(2000), c.Load())
}
