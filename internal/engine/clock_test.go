package engine

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_NewClock(t *testing.T) {
	c := NewClock(1000)
	assert.Equal(t, int64(1000), c.Now())
	assert.Equal(t, int64(0), c.Elapsed())
	assert.Equal(t, int64(1000), c.Start())
}

func TestClock_PrecastEventsReadAsStart(t *testing.T) {
	c := NewClock(1000)
	c.Advance(999)
	assert.Equal(t, int64(1000), c.Now())
	assert.Equal(t, int64(0), c.Elapsed())
}

func TestClock_Advance(t *testing.T) {
	c := NewClock(0)

	c.Advance(500)
	assert.Equal(t, int64(500), c.Now())

	c.Advance(1500)
	assert.Equal(t, int64(1500), c.Elapsed())
}

func TestClock_NeverMovesBackwards(t *testing.T) {
	c := NewClock(0)
	c.Advance(2000)
	c.Advance(1000)
	assert.Equal(t, int64(2000), c.Now())
}

func TestClock_ThreadSafe(t *testing.T) {
	c := NewClock(0)
	const goroutines = 50

	var wg sync.WaitGroup
	for i := 1; i <= goroutines; i++ {
		wg.Add(1)
		go func(ts int64) {
			defer wg.Done()
			c.Advance(ts)
			_ = c.Elapsed()
		}(int64(i * 100))
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*100), c.Now(), "the maximum advance wins")
}
