package models

import (
	"time"
)

type WordPair struct {
	ID                 int64     `db:"id" json:"id"`
	GermanWord         string    `db:"german_word" json:"germanWord"`
	EnglishTranslation string    `db:"english_translation" json:"englishTranslation"`
	Category           *string   `db:"category" json:"category"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
}

type WordPairInput struct {
	GermanWord         string  `json:"germanWord" validate:"required,max=200"`
	EnglishTranslation string  `json:"englishTranslation" validate:"required,max=200"`
	Category           *string `json:"category" validate:"omitempty,max=100"`
}

// WordPairPatch holds the fields of an update; nil fields are left as they
// are and an empty category clears it.
type WordPairPatch struct {
	GermanWord         *string `json:"germanWord" validate:"omitempty,min=1,max=200"`
	EnglishTranslation *string `json:"englishTranslation" validate:"omitempty,min=1,max=200"`
	Category           *string `json:"category" validate:"omitempty,max=100"`
}

func (p WordPairPatch) Apply(pair WordPair) WordPair {
	if p.GermanWord != nil {
		pair.GermanWord = *p.GermanWord
	}
	if p.EnglishTranslation != nil {
		pair.EnglishTranslation = *p.EnglishTranslation
	}
	if p.Category != nil {
		if *p.Category == "" {
			pair.Category = nil
		} else {
			category := *p.Category
			pair.Category = &category
		}
	}
	return pair
}

func (p WordPairPatch) Empty() bool {
	return p.GermanWord == nil && p.EnglishTranslation == nil && p.Category == nil
}

// CategoryValue returns the category or "" when the pair has none.
func (w WordPair) CategoryValue() string {
	if w.Category == nil {
		return ""
	}
	return *w.Category
}
