package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/wortschatz/internal/models"
)

const wordPairColumns = `id, german_word, english_translation, category, created_at`

type WordsR struct {
	db QueryI
}

func NewWordsRepository(db QueryI) *WordsR {
	return &WordsR{db: db}
}

func (w *WordsR) CreateWordPair(ctx context.Context, in models.WordPairInput) (models.WordPair, error) {
	query := `INSERT INTO word_pairs (german_word, english_translation, category)
		VALUES ($1, $2, $3)
		RETURNING ` + wordPairColumns

	var pair models.WordPair
	err := w.db.GetContext(ctx, &pair, query, in.GermanWord, in.EnglishTranslation, in.Category)
	if err != nil {
		return models.WordPair{}, fmt.Errorf("failed to insert word pair: %w", err)
	}
	return pair, nil
}

func (w *WordsR) WordPairs(ctx context.Context) ([]models.WordPair, error) {
	query := `SELECT ` + wordPairColumns + `
		FROM word_pairs
		ORDER BY created_at DESC, id DESC`

	pairs := make([]models.WordPair, 0)
	if err := w.db.SelectContext(ctx, &pairs, query); err != nil {
		return nil, fmt.Errorf("failed to select word pairs: %w", err)
	}
	return pairs, nil
}

func (w *WordsR) WordPairByID(ctx context.Context, id int64) (models.WordPair, error) {
	query := `SELECT ` + wordPairColumns + ` FROM word_pairs WHERE id = $1`

	var pair models.WordPair
	err := w.db.GetContext(ctx, &pair, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WordPair{}, models.ErrNotFound
		}
		return models.WordPair{}, fmt.Errorf("database error: %w", err)
	}
	return pair, nil
}

func (w *WordsR) UpdateWordPair(ctx context.Context, id int64, patch models.WordPairPatch) (models.WordPair, error) {
	query := `UPDATE word_pairs SET
			german_word = COALESCE($2, german_word),
			english_translation = COALESCE($3, english_translation),
			category = CASE WHEN $4::boolean THEN NULLIF($5, '') ELSE category END
		WHERE id = $1
		RETURNING ` + wordPairColumns

	var pair models.WordPair
	err := w.db.GetContext(ctx, &pair, query,
		id, patch.GermanWord, patch.EnglishTranslation, patch.Category != nil, patch.Category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.WordPair{}, models.ErrNotFound
		}
		return models.WordPair{}, fmt.Errorf("failed to update word pair %d: %w", id, err)
	}
	return pair, nil
}

func (w *WordsR) DeleteWordPair(ctx context.Context, id int64) (bool, error) {
	res, err := w.db.ExecContext(ctx, `DELETE FROM word_pairs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete word pair %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (w *WordsR) SearchWordPairs(ctx context.Context, query, category string) ([]models.WordPair, error) {
	q := `SELECT ` + wordPairColumns + `
		FROM word_pairs
		WHERE (strpos(lower(german_word), lower($1)) > 0 OR strpos(lower(english_translation), lower($1)) > 0)
			AND ($2 = '' OR category = $2)
		ORDER BY created_at DESC, id DESC`

	pairs := make([]models.WordPair, 0)
	if err := w.db.SelectContext(ctx, &pairs, q, query, category); err != nil {
		return nil, fmt.Errorf("failed to search word pairs: %w", err)
	}
	return pairs, nil
}

func (w *WordsR) RandomWordPairs(ctx context.Context, count int) ([]models.WordPair, error) {
	query := `SELECT ` + wordPairColumns + `
		FROM word_pairs
		ORDER BY RANDOM()
		LIMIT $1`

	pairs := make([]models.WordPair, 0)
	if err := w.db.SelectContext(ctx, &pairs, query, count); err != nil {
		return nil, fmt.Errorf("failed to sample word pairs: %w", err)
	}
	return pairs, nil
}

func (w *WordsR) Categories(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT category
		FROM word_pairs
		WHERE category IS NOT NULL AND category <> ''
		ORDER BY category`

	categories := make([]string, 0)
	if err := w.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	return categories, nil
}
