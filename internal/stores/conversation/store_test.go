package conversation

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptline/relay/pkg/llm"
)

func TestGetOrCreate(t *testing.T) {
	t.Run("first call returns empty transcript", func(t *testing.T) {
		store := NewStore()

		transcript := store.GetOrCreate("session-1")
		require.NotNil(t, transcript)
		assert.Equal(t, 0, transcript.Len())
		assert.Equal(t, "session-1", transcript.SessionID())
	})

	t.Run("returns the same transcript on repeat calls", func(t *testing.T) {
		store := NewStore()

		first := store.GetOrCreate("session-1")
		second := store.GetOrCreate("session-1")
		assert.Same(t, first, second)
	})

	t.Run("empty string is a valid session id", func(t *testing.T) {
		store := NewStore()

		transcript := store.GetOrCreate("")
		require.NotNil(t, transcript)
		assert.Same(t, transcript, store.GetOrCreate(""))
	})

	t.Run("distinct ids never share a transcript", func(t *testing.T) {
		store := NewStore()

		a := store.GetOrCreate("session-a")
		b := store.GetOrCreate("session-b")
		require.NotSame(t, a, b)

		a.Append(llm.RoleUser, "hello")
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 0, b.Len())
	})
}

func TestGetOrCreateConcurrent(t *testing.T) {
	store := NewStore()

	// All goroutines race on first-time creation of the same id
	const workers = 64
	results := make([]*Transcript, workers)

	var start sync.WaitGroup
	var done sync.WaitGroup
	start.Add(1)
	done.Add(workers)

	for i := 0; i < workers; i++ {
		go func(i int) {
			defer done.Done()
			start.Wait()
			results[i] = store.GetOrCreate("contested")
		}(i)
	}

	start.Done()
	done.Wait()

	// Exactly one transcript instance must have been stored
	stored, exists := store.Get("contested")
	require.True(t, exists)
	for i := 0; i < workers; i++ {
		assert.Same(t, stored, results[i], "goroutine %d received a different transcript", i)
	}
	assert.Equal(t, 1, store.Len())
}

func TestConcurrentAppends(t *testing.T) {
	store := NewStore()

	const workers = 32
	const perWorker = 10

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				store.Append("shared", llm.RoleUser, fmt.Sprintf("message %d-%d", i, j))
			}
		}(i)
	}
	wg.Wait()

	transcript, exists := store.Get("shared")
	require.True(t, exists)
	assert.Equal(t, workers*perWorker, transcript.Len())
}

func TestAppend(t *testing.T) {
	store := NewStore()

	t.Run("append grows the transcript by one", func(t *testing.T) {
		store.Append("session-1", llm.RoleUser, "hello")

		transcript := store.GetOrCreate("session-1")
		assert.Equal(t, 1, transcript.Len())

		last, ok := transcript.Last()
		require.True(t, ok)
		assert.Equal(t, llm.RoleUser, last.Role)
		assert.Equal(t, "hello", last.Content)
	})

	t.Run("insertion order is conversation order", func(t *testing.T) {
		store.Append("session-1", llm.RoleAssistant, "hi there")
		store.Append("session-1", llm.RoleUser, "how are you?")

		messages := store.GetOrCreate("session-1").Messages()
		require.Len(t, messages, 3)
		assert.Equal(t, "hello", messages[0].Content)
		assert.Equal(t, "hi there", messages[1].Content)
		assert.Equal(t, "how are you?", messages[2].Content)
	})

	t.Run("messages returns a copy", func(t *testing.T) {
		transcript := store.GetOrCreate("session-1")

		messages := transcript.Messages()
		messages[0].Content = "mutated"

		assert.Equal(t, "hello", transcript.Messages()[0].Content)
	})
}

func TestSessions(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Sessions())

	store.Append("session-a", llm.RoleUser, "first")
	store.Append("session-b", llm.RoleUser, "second")
	store.Append("session-b", llm.RoleAssistant, "third")

	infos := store.Sessions()
	require.Len(t, infos, 2)

	// Most recently updated first
	assert.Equal(t, "session-b", infos[0].SessionID)
	assert.Equal(t, 2, infos[0].MessageCount)
	assert.Equal(t, "session-a", infos[1].SessionID)
	assert.Equal(t, 1, infos[1].MessageCount)
}

func TestEvict(t *testing.T) {
	store := NewStore()

	t.Run("evicting a missing session returns false", func(t *testing.T) {
		assert.False(t, store.Evict("missing"))
	})

	t.Run("evicting an existing session removes it", func(t *testing.T) {
		store.GetOrCreate("session-1")
		require.Equal(t, 1, store.Len())

		assert.True(t, store.Evict("session-1"))
		assert.Equal(t, 0, store.Len())

		_, exists := store.Get("session-1")
		assert.False(t, exists)
	})

	t.Run("a new transcript is created after eviction", func(t *testing.T) {
		first := store.GetOrCreate("session-1")
		store.Evict("session-1")

		second := store.GetOrCreate("session-1")
		assert.NotSame(t, first, second)
	})
}

func TestEvictIdle(t *testing.T) {
	store := NewStore()

	store.Append("old", llm.RoleUser, "stale message")
	time.Sleep(10 * time.Millisecond)
	cutoff := time.Now().UTC()
	time.Sleep(10 * time.Millisecond)
	store.Append("fresh", llm.RoleUser, "recent message")

	evicted := store.EvictIdle(cutoff)
	assert.Equal(t, []string{"old"}, evicted)
	assert.Equal(t, 1, store.Len())

	_, exists := store.Get("fresh")
	assert.True(t, exists)
}
