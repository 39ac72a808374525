package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinkinyang/zhmclog/handler"
)

func TestGet_SameNameSameLogger(t *testing.T) {
	l1 := Get("registry.same")
	l2 := Get("registry.same")

	assert.Same(t, l1, l2)
	assert.Equal(t, "registry.same", l1.Name())
}

func TestGet_DifferentNames(t *testing.T) {
	assert.NotSame(t, Get("registry.a"), Get("registry.b"))
}

func TestGet_SilentByDefault(t *testing.T) {
	l := Get("registry.silent")

	handlers := l.Handlers()
	require.Len(t, handlers, 1)
	assert.IsType(t, &handler.NullHandler{}, handlers[0])

	// Logging without a consumer-attached handler must be a no-op
	l.Error("nobody hears this")
}

func TestGet_NoDuplicateNullHandlers(t *testing.T) {
	Get("registry.nodup")
	Get("registry.nodup")
	l := Get("registry.nodup")

	assert.Len(t, l.Handlers(), 1,
		"repeated Get must not attach another discard handler")
}

func TestGet_ReattachesAfterHandlerRemoval(t *testing.T) {
	l := Get("registry.reattach")
	for _, h := range l.Handlers() {
		l.RemoveHandler(h)
	}
	require.Empty(t, l.Handlers())

	l = Get("registry.reattach")
	assert.Len(t, l.Handlers(), 1)
}

func TestGet_ConcurrentFirstAccess(t *testing.T) {
	const goroutines = 64

	var wg sync.WaitGroup
	results := make([]*Logger, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Get("registry.concurrent")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
	assert.Len(t, results[0].Handlers(), 1,
		"concurrent first-time access must attach exactly one discard handler")
}
