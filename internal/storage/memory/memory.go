// Package memory keeps word pairs and test results in process memory.
package memory

import (
	"context"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
)

type Store struct {
	mu sync.RWMutex

	wordPairs   map[int64]models.WordPair
	testResults map[int64]models.TestResult
	nextWordID  int64
	nextTestID  int64

	now func() time.Time
	rnd *rand.Rand
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithRand(rnd *rand.Rand) Option {
	return func(s *Store) { s.rnd = rnd }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		wordPairs:   make(map[int64]models.WordPair),
		testResults: make(map[int64]models.TestResult),
		nextWordID:  1,
		nextTestID:  1,
		now:         time.Now,
		rnd:         rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) CreateWordPair(_ context.Context, in models.WordPairInput) (models.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pair := models.WordPair{
		ID:                 s.nextWordID,
		GermanWord:         in.GermanWord,
		EnglishTranslation: in.EnglishTranslation,
		Category:           copyString(in.Category),
		CreatedAt:          s.now(),
	}
	s.nextWordID++
	s.wordPairs[pair.ID] = pair

	return clonePair(pair), nil
}

func (s *Store) WordPairs(_ context.Context) ([]models.WordPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedPairs(), nil
}

func (s *Store) WordPairByID(_ context.Context, id int64) (models.WordPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pair, ok := s.wordPairs[id]
	if !ok {
		return models.WordPair{}, models.ErrNotFound
	}
	return clonePair(pair), nil
}

func (s *Store) UpdateWordPair(_ context.Context, id int64, patch models.WordPairPatch) (models.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.wordPairs[id]
	if !ok {
		return models.WordPair{}, models.ErrNotFound
	}

	updated := patch.Apply(clonePair(existing))
	s.wordPairs[id] = updated

	return clonePair(updated), nil
}

func (s *Store) DeleteWordPair(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.wordPairs[id]; !ok {
		return false, nil
	}
	delete(s.wordPairs, id)
	return true, nil
}

func (s *Store) SearchWordPairs(_ context.Context, query, category string) ([]models.WordPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	found := make([]models.WordPair, 0)
	for _, pair := range s.sortedPairs() {
		matchesQuery := strings.Contains(strings.ToLower(pair.GermanWord), q) ||
			strings.Contains(strings.ToLower(pair.EnglishTranslation), q)
		matchesCategory := category == "" || pair.CategoryValue() == category
		if matchesQuery && matchesCategory {
			found = append(found, pair)
		}
	}
	return found, nil
}

// RandomWordPairs draws min(count, total) pairs without replacement using a
// partial Fisher-Yates shuffle over a copy of the collection.
func (s *Store) RandomWordPairs(_ context.Context, count int) ([]models.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool := s.sortedPairs()
	if count <= 0 {
		return []models.WordPair{}, nil
	}
	if count > len(pool) {
		count = len(pool)
	}

	for i := 0; i < count; i++ {
		j := i + s.rnd.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}

func (s *Store) Categories(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, pair := range s.wordPairs {
		c := pair.CategoryValue()
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *Store) CreateTestResult(_ context.Context, in models.TestResultInput) (models.TestResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := models.TestResult{
		ID:             s.nextTestID,
		CorrectAnswers: in.CorrectAnswers,
		TotalQuestions: in.TotalQuestions,
		Duration:       in.Duration,
		Passed:         in.Passed,
		CreatedAt:      s.now(),
	}
	s.nextTestID++
	s.testResults[result.ID] = result

	return result, nil
}

func (s *Store) TestResults(_ context.Context) ([]models.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sortedResults(), nil
}

func (s *Store) RecentTestResults(_ context.Context, limit int) ([]models.TestResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := s.sortedResults()
	if limit < 0 {
		limit = 0
	}
	if limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

// sortedPairs returns copies ordered newest first; ids break timestamp ties.
func (s *Store) sortedPairs() []models.WordPair {
	pairs := make([]models.WordPair, 0, len(s.wordPairs))
	for _, p := range s.wordPairs {
		pairs = append(pairs, clonePair(p))
	}
	sort.Slice(pairs, func(i, j int) bool {
		if !pairs[i].CreatedAt.Equal(pairs[j].CreatedAt) {
			return pairs[i].CreatedAt.After(pairs[j].CreatedAt)
		}
		return pairs[i].ID > pairs[j].ID
	})
	return pairs
}

func (s *Store) sortedResults() []models.TestResult {
	results := make([]models.TestResult, 0, len(s.testResults))
	for _, r := range s.testResults {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		if !results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		}
		return results[i].ID > results[j].ID
	})
	return results
}

func clonePair(p models.WordPair) models.WordPair {
	p.Category = copyString(p.Category)
	return p
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
