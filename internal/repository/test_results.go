package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/wortschatz/internal/models"
)

const testResultColumns = `id, correct_answers, total_questions, duration, passed, created_at`

type QuizR struct {
	db QueryI
}

func NewQuizRepository(db QueryI) *QuizR {
	return &QuizR{
		db: db,
	}
}

func (q *QuizR) CreateTestResult(ctx context.Context, in models.TestResultInput) (models.TestResult, error) {
	query := `
		INSERT INTO test_results (correct_answers, total_questions, duration, passed)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + testResultColumns

	var result models.TestResult
	err := q.db.GetContext(ctx, &result, query, in.CorrectAnswers, in.TotalQuestions, in.Duration, in.Passed)
	if err != nil {
		return models.TestResult{}, fmt.Errorf("failed to insert test result: %w", err)
	}
	return result, nil
}

func (q *QuizR) TestResults(ctx context.Context) ([]models.TestResult, error) {
	query := `SELECT ` + testResultColumns + `
		FROM test_results
		ORDER BY created_at DESC, id DESC`

	results := make([]models.TestResult, 0)
	if err := q.db.SelectContext(ctx, &results, query); err != nil {
		return nil, fmt.Errorf("failed to select test results: %w", err)
	}
	return results, nil
}

func (q *QuizR) RecentTestResults(ctx context.Context, limit int) ([]models.TestResult, error) {
	query := `SELECT ` + testResultColumns + `
		FROM test_results
		ORDER BY created_at DESC, id DESC
		LIMIT $1`

	results := make([]models.TestResult, 0)
	if err := q.db.SelectContext(ctx, &results, query, limit); err != nil {
		return nil, fmt.Errorf("failed to select recent test results: %w", err)
	}
	return results, nil
}
