package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
	"github.com/DanRulev/wortschatz/internal/storage/cache"
	"github.com/DanRulev/wortschatz/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuizRI interface {
	CreateTestResult(ctx context.Context, in models.TestResultInput) (models.TestResult, error)
	TestResults(ctx context.Context) ([]models.TestResult, error)
	RecentTestResults(ctx context.Context, limit int) ([]models.TestResult, error)
}

type AuxiliaryWord interface {
	WordPairs(ctx context.Context) ([]models.WordPair, error)
	RandomWordPairs(ctx context.Context, count int) ([]models.WordPair, error)
}

type QuizS struct {
	repo  QuizRI
	aux   AuxiliaryWord
	cache *cache.Cache
	log   *zap.Logger
	now   func() time.Time
}

func NewQuizService(repo QuizRI, aux AuxiliaryWord, cache *cache.Cache, log *zap.Logger) *QuizS {
	return &QuizS{
		repo:  repo,
		aux:   aux,
		cache: cache,
		log:   log,
		now:   time.Now,
	}
}

// StartQuiz samples a fresh set of words and opens a session for them.
// With fewer than quiz.QuestionCount words it returns models.ErrNotEnoughWords
// and creates nothing.
func (q *QuizS) StartQuiz(ctx context.Context) (*quiz.Session, error) {
	sample, err := q.aux.RandomWordPairs(ctx, quiz.QuestionCount)
	if err != nil {
		q.log.Error("failed to sample words for quiz", zap.Error(err))
		return nil, err
	}

	session, err := quiz.NewSession(uuid.NewString(), sample, q.now())
	if err != nil {
		if errors.Is(err, models.ErrNotEnoughWords) {
			q.log.Info("quiz not started", zap.Int("words", len(sample)), zap.Int("required", quiz.QuestionCount))
			return nil, fmt.Errorf("%w: have %d, need %d", err, len(sample), quiz.QuestionCount)
		}
		return nil, err
	}

	q.cache.SetSession(session)
	q.log.Debug("quiz started", zap.String("session_id", session.ID))

	return session.Clone(), nil
}

func (q *QuizS) Quiz(_ context.Context, id string) (*quiz.Session, error) {
	var snapshot *quiz.Session
	err := q.cache.Update(id, func(s *quiz.Session) error {
		snapshot = s.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (q *QuizS) SubmitAnswer(ctx context.Context, id, answer string) (quiz.Step, error) {
	return q.advance(ctx, id, func(s *quiz.Session) (models.TestAnswer, error) {
		return quiz.Submit(s, answer, q.now())
	})
}

func (q *QuizS) SkipQuestion(ctx context.Context, id string) (quiz.Step, error) {
	return q.advance(ctx, id, func(s *quiz.Session) (models.TestAnswer, error) {
		return quiz.Skip(s, q.now())
	})
}

func (q *QuizS) AbandonQuiz(_ context.Context, id string) error {
	if !q.cache.DeleteSession(id) {
		return models.ErrSessionNotFound
	}
	q.log.Debug("quiz abandoned", zap.String("session_id", id))
	return nil
}

// ExpireSessions drops sessions started more than ttl ago without being
// finished or abandoned.
func (q *QuizS) ExpireSessions(ttl time.Duration) int {
	removed := q.cache.Sweep(q.now().Add(-ttl))
	if removed > 0 {
		q.log.Info("expired stale quiz sessions", zap.Int("removed", removed), zap.Int("active", q.cache.Len()))
	}
	return removed
}

func (q *QuizS) advance(ctx context.Context, id string, move func(*quiz.Session) (models.TestAnswer, error)) (quiz.Step, error) {
	var step quiz.Step
	err := q.cache.Update(id, func(s *quiz.Session) error {
		answer, err := move(s)
		if err != nil {
			return err
		}
		step.Answer = answer
		step.Session = s.Clone()
		return nil
	})
	if err != nil {
		return quiz.Step{}, err
	}

	if !step.Session.Completed() {
		return step, nil
	}

	report, err := q.finish(ctx, step.Session)
	if err != nil {
		return quiz.Step{}, err
	}
	step.Report = report

	return step, nil
}

// finish stores the result of a completed session and drops the session.
func (q *QuizS) finish(ctx context.Context, s *quiz.Session) (*models.Report, error) {
	defer q.cache.DeleteSession(s.ID)

	summary, err := quiz.Summarize(s)
	if err != nil {
		return nil, err
	}

	result, err := q.repo.CreateTestResult(ctx, summary)
	if err != nil {
		q.log.Error("failed to store test result", zap.String("session_id", s.ID), zap.Error(err))
		return nil, err
	}

	q.log.Info("quiz completed",
		zap.String("session_id", s.ID),
		zap.Int("correct", result.CorrectAnswers),
		zap.Int("total", result.TotalQuestions),
		zap.Bool("passed", result.IsPassed()),
	)

	return &models.Report{
		Result:    result,
		Questions: s.Questions,
		Answers:   s.Answers,
	}, nil
}

func (q *QuizS) CreateTestResult(ctx context.Context, in models.TestResultInput) (models.TestResult, error) {
	if err := validator.ValidateStruct(in); err != nil {
		return models.TestResult{}, err
	}

	result, err := q.repo.CreateTestResult(ctx, in)
	if err != nil {
		q.log.Error("failed to create test result", zap.Error(err))
		return models.TestResult{}, err
	}
	return result, nil
}

// TestResults returns the newest limit results, or all of them when limit is 0.
func (q *QuizS) TestResults(ctx context.Context, limit int) ([]models.TestResult, error) {
	if limit < 0 {
		return nil, validator.NewError("limit", "min", "limit must not be negative")
	}

	var (
		results []models.TestResult
		err     error
	)
	if limit == 0 {
		results, err = q.repo.TestResults(ctx)
	} else {
		results, err = q.repo.RecentTestResults(ctx, limit)
	}
	if err != nil {
		q.log.Error("failed to list test results", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	return results, nil
}

func (q *QuizS) Stats(ctx context.Context) (models.Stats, error) {
	words, err := q.aux.WordPairs(ctx)
	if err != nil {
		q.log.Error("failed to count words", zap.Error(err))
		return models.Stats{}, err
	}

	results, err := q.repo.TestResults(ctx)
	if err != nil {
		q.log.Error("failed to load test results", zap.Error(err))
		return models.Stats{}, err
	}

	return computeStats(len(words), results), nil
}

func computeStats(totalWords int, results []models.TestResult) models.Stats {
	stats := models.Stats{
		TotalWords:     totalWords,
		TestsCompleted: len(results),
	}
	for _, r := range results {
		if r.IsPassed() {
			stats.PassedTests++
		}
	}
	if stats.TestsCompleted > 0 {
		stats.SuccessRate = (stats.PassedTests*100 + stats.TestsCompleted/2) / stats.TestsCompleted
	}
	return stats
}
