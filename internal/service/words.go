package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/pkg/validator"
	"go.uber.org/zap"
)

var ErrTranslatorUnavailable = errors.New("translator unavailable")

type WordRI interface {
	CreateWordPair(ctx context.Context, in models.WordPairInput) (models.WordPair, error)
	WordPairs(ctx context.Context) ([]models.WordPair, error)
	WordPairByID(ctx context.Context, id int64) (models.WordPair, error)
	UpdateWordPair(ctx context.Context, id int64, patch models.WordPairPatch) (models.WordPair, error)
	DeleteWordPair(ctx context.Context, id int64) (bool, error)
	SearchWordPairs(ctx context.Context, query, category string) ([]models.WordPair, error)
	RandomWordPairs(ctx context.Context, count int) ([]models.WordPair, error)
	Categories(ctx context.Context) ([]string, error)
}

type WordS struct {
	translator TranslatorI
	repo       WordRI
	log        *zap.Logger
}

func NewWordService(api TranslatorI, repo WordRI, log *zap.Logger) *WordS {
	return &WordS{
		translator: api,
		repo:       repo,
		log:        log,
	}
}

func (w *WordS) CreateWordPair(ctx context.Context, in models.WordPairInput) (models.WordPair, error) {
	in.GermanWord = strings.TrimSpace(in.GermanWord)
	in.EnglishTranslation = strings.TrimSpace(in.EnglishTranslation)
	in.Category = normalizeCategory(in.Category)

	if err := validator.ValidateStruct(in); err != nil {
		return models.WordPair{}, err
	}

	pair, err := w.repo.CreateWordPair(ctx, in)
	if err != nil {
		w.log.Error("failed to create word pair", zap.String("word", in.GermanWord), zap.Error(err))
		return models.WordPair{}, err
	}
	return pair, nil
}

func (w *WordS) WordPairs(ctx context.Context) ([]models.WordPair, error) {
	pairs, err := w.repo.WordPairs(ctx)
	if err != nil {
		w.log.Error("failed to list word pairs", zap.Error(err))
		return nil, err
	}
	return pairs, nil
}

func (w *WordS) WordPair(ctx context.Context, id int64) (models.WordPair, error) {
	return w.repo.WordPairByID(ctx, id)
}

func (w *WordS) UpdateWordPair(ctx context.Context, id int64, patch models.WordPairPatch) (models.WordPair, error) {
	patch.GermanWord = trimPtr(patch.GermanWord)
	patch.EnglishTranslation = trimPtr(patch.EnglishTranslation)
	patch.Category = trimPtr(patch.Category)

	if err := validator.ValidateStruct(patch); err != nil {
		return models.WordPair{}, err
	}
	if patch.Empty() {
		return w.repo.WordPairByID(ctx, id)
	}

	pair, err := w.repo.UpdateWordPair(ctx, id, patch)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			w.log.Error("failed to update word pair", zap.Int64("id", id), zap.Error(err))
		}
		return models.WordPair{}, err
	}
	return pair, nil
}

// DeleteWordPair reports whether a pair was actually removed.
func (w *WordS) DeleteWordPair(ctx context.Context, id int64) (bool, error) {
	deleted, err := w.repo.DeleteWordPair(ctx, id)
	if err != nil {
		w.log.Error("failed to delete word pair", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return deleted, nil
}

func (w *WordS) SearchWordPairs(ctx context.Context, query, category string) ([]models.WordPair, error) {
	pairs, err := w.repo.SearchWordPairs(ctx, query, strings.TrimSpace(category))
	if err != nil {
		w.log.Error("failed to search word pairs", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	return pairs, nil
}

func (w *WordS) RandomWordPairs(ctx context.Context, count int) ([]models.WordPair, error) {
	if count <= 0 {
		return nil, validator.NewError("count", "gt", "count must be a positive integer")
	}

	pairs, err := w.repo.RandomWordPairs(ctx, count)
	if err != nil {
		w.log.Error("failed to sample word pairs", zap.Int("count", count), zap.Error(err))
		return nil, err
	}
	return pairs, nil
}

func (w *WordS) Categories(ctx context.Context) ([]string, error) {
	categories, err := w.repo.Categories(ctx)
	if err != nil {
		w.log.Error("failed to list categories", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// SuggestTranslations asks the translator for English candidates of a German word.
func (w *WordS) SuggestTranslations(ctx context.Context, word string) ([]string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, validator.NewError("q", "required", "q is required")
	}

	translation, err := w.translator.TranslateDeToEn(ctx, word)
	if err != nil {
		w.log.Warn("failed to translate word", zap.String("word", word), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTranslatorUnavailable, err)
	}
	if translation.Error != "" {
		w.log.Warn("translator refused request", zap.String("word", word), zap.String("details", translation.Error))
		return nil, fmt.Errorf("%w: %s", ErrTranslatorUnavailable, translation.Error)
	}

	return removeDuplicates(append([]string{translation.Text}, translation.Alternatives...)), nil
}

func removeDuplicates(slice []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, item := range slice {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" || seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, item)
	}
	return result
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func normalizeCategory(c *string) *string {
	c = trimPtr(c)
	if c == nil || *c == "" {
		return nil
	}
	return c
}
