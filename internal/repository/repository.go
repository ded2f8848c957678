package repository

import (
	"context"
	"database/sql"
)

// QueryI is the part of *sqlx.DB the word pair and test result repositories use.
type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Repository serves both the vocabulary and the test result tables over one
// connection, so it satisfies service.RepositoryI like the in-memory store does.
type Repository struct {
	*WordsR
	*QuizR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		WordsR: NewWordsRepository(db),
		QuizR:  NewQuizRepository(db),
	}
}
