package dispatch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDirect_RunsInline(t *testing.T) {
	ran := false
	Direct{}.Post(func() { ran = true })
	assert.True(t, ran)
}

func TestLoop_ExecutesInPostOrder(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})

	go func() {
		l.Run(ctx)
		close(done)
	}()

	for i := 0; i < 100; i++ {
		i := i
		l.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		})
	}
	l.Post(func() { cancel() })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestLoop_DrainsResidueOnShutdown(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	l.Post(func() { ran = true })
	l.Run(ctx)

	assert.True(t, ran, "work posted before shutdown must still run")
}

func TestLoop_CloseWithoutRunDrains(t *testing.T) {
	l := NewLoop()
	ran := false
	l.Post(func() { ran = true })
	l.Close()

	assert.True(t, ran)

	// Posts after close are dropped.
	l.Post(func() { t.Fatal("should not run") })
	l.Close()
}
