package cache

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Sessions(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.SetSession(&quiz.Session{ID: "a"})

	s, ok := c.Session("a")
	require.True(t, ok)
	assert.Equal(t, "a", s.ID)
	assert.Equal(t, 1, c.Len())

	assert.True(t, c.DeleteSession("a"))
	assert.False(t, c.DeleteSession("a"))

	_, ok = c.Session("a")
	assert.False(t, ok)
}

func TestCache_Update(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.SetSession(&quiz.Session{ID: "a"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Update("a", func(s *quiz.Session) error {
				s.Cursor++
				return nil
			})
		}()
	}
	wg.Wait()

	s, _ := c.Session("a")
	assert.Equal(t, 50, s.Cursor)

	err := c.Update("missing", func(*quiz.Session) error { return nil })
	require.ErrorIs(t, err, models.ErrSessionNotFound)

	boom := errors.New("boom")
	err = c.Update("a", func(*quiz.Session) error { return boom })
	require.ErrorIs(t, err, boom)
}

func TestCache_Chats(t *testing.T) {
	t.Parallel()

	c := NewCache()
	c.BindChat(10, "a")

	id, ok := c.ChatSession(10)
	require.True(t, ok)
	assert.Equal(t, "a", id)

	c.UnbindChat(10)
	_, ok = c.ChatSession(10)
	assert.False(t, ok)
}

func TestCache_Sweep(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	c := NewCache()
	c.SetSession(&quiz.Session{ID: "old", StartedAt: now.Add(-2 * time.Hour)})
	c.SetSession(&quiz.Session{ID: "fresh", StartedAt: now.Add(-time.Minute)})
	c.BindChat(1, "old")
	c.BindChat(2, "fresh")

	assert.Equal(t, 1, c.Sweep(now.Add(-time.Hour)))
	assert.Equal(t, 1, c.Len())

	_, ok := c.Session("old")
	assert.False(t, ok)
	_, ok = c.ChatSession(1)
	assert.False(t, ok)

	id, ok := c.ChatSession(2)
	require.True(t, ok)
	assert.Equal(t, "fresh", id)

	assert.Zero(t, c.Sweep(now.Add(-time.Hour)))
}
