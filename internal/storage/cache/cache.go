package cache

import (
	"sync"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
)

// Cache holds in-flight quiz sessions by id and the session each chat is taking.
type Cache struct {
	mu       sync.Mutex
	sessions map[string]*quiz.Session
	chats    map[int64]string
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[string]*quiz.Session),
		chats:    make(map[int64]string),
	}
}

func (c *Cache) SetSession(s *quiz.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[s.ID] = s
}

func (c *Cache) Session(id string) (*quiz.Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[id]
	return s, exists
}

// Update runs fn on the session while holding the lock, so two requests
// for the same session cannot advance it at once.
func (c *Cache) Update(id string, fn func(*quiz.Session) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[id]
	if !exists {
		return models.ErrSessionNotFound
	}
	return fn(s)
}

func (c *Cache) DeleteSession(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.sessions[id]
	delete(c.sessions, id)
	return exists
}

// Sweep drops sessions started before cutoff together with the chats bound
// to them, and returns how many sessions it removed.
func (c *Cache) Sweep(cutoff time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for id, s := range c.sessions {
		if s.StartedAt.Before(cutoff) {
			delete(c.sessions, id)
			removed++
		}
	}
	for chatID, id := range c.chats {
		if _, exists := c.sessions[id]; !exists {
			delete(c.chats, chatID)
		}
	}
	return removed
}

func (c *Cache) BindChat(chatID int64, sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chats[chatID] = sessionID
}

func (c *Cache) ChatSession(chatID int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, exists := c.chats[chatID]
	return id, exists
}

func (c *Cache) UnbindChat(chatID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.chats, chatID)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}
