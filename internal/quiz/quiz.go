// Package quiz grades a quiz session. The functions here keep no state of
// their own: everything lives in the Session the caller owns.
package quiz

import (
	"strings"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
)

const (
	// QuestionCount is both the sample size drawn for a session and the
	// minimum vocabulary size needed to start one.
	QuestionCount = 20
	// MaxWrongAnswers is the most wrong or skipped answers a passed session may have.
	MaxWrongAnswers = 3
)

type Session struct {
	ID          string                `json:"id"`
	Questions   []models.TestQuestion `json:"questions"`
	Answers     []models.TestAnswer   `json:"answers"`
	Cursor      int                   `json:"cursor"`
	StartedAt   time.Time             `json:"startedAt"`
	CompletedAt time.Time             `json:"completedAt"`
}

// NewSession snapshots the sample into questions, keeping the sample order.
func NewSession(id string, sample []models.WordPair, now time.Time) (*Session, error) {
	if len(sample) < QuestionCount {
		return nil, models.ErrNotEnoughWords
	}

	questions := make([]models.TestQuestion, 0, len(sample))
	for _, pair := range sample {
		questions = append(questions, models.TestQuestion{
			ID:            pair.ID,
			GermanWord:    pair.GermanWord,
			CorrectAnswer: pair.EnglishTranslation,
		})
	}

	return &Session{
		ID:        id,
		Questions: questions,
		Answers:   make([]models.TestAnswer, 0, len(questions)),
		StartedAt: now,
	}, nil
}

func (s *Session) Completed() bool {
	return s.Cursor >= len(s.Questions)
}

func (s *Session) Current() (models.TestQuestion, bool) {
	if s.Completed() {
		return models.TestQuestion{}, false
	}
	return s.Questions[s.Cursor], true
}

// Clone returns a copy that shares no slices with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Questions = append([]models.TestQuestion(nil), s.Questions...)
	c.Answers = append([]models.TestAnswer(nil), s.Answers...)
	return &c
}

func (s *Session) Progress() (answered, total int) {
	return len(s.Answers), len(s.Questions)
}

// Submit grades answer against the current question and moves on.
func Submit(s *Session, answer string, now time.Time) (models.TestAnswer, error) {
	question, ok := s.Current()
	if !ok {
		return models.TestAnswer{}, models.ErrQuizCompleted
	}

	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return models.TestAnswer{}, models.ErrEmptyAnswer
	}

	return record(s, models.TestAnswer{
		QuestionID:    question.ID,
		UserAnswer:    trimmed,
		IsCorrect:     Matches(trimmed, question.CorrectAnswer),
		CorrectAnswer: question.CorrectAnswer,
	}, now), nil
}

// Skip counts the current question as wrong.
func Skip(s *Session, now time.Time) (models.TestAnswer, error) {
	question, ok := s.Current()
	if !ok {
		return models.TestAnswer{}, models.ErrQuizCompleted
	}

	return record(s, models.TestAnswer{
		QuestionID:    question.ID,
		CorrectAnswer: question.CorrectAnswer,
	}, now), nil
}

func record(s *Session, answer models.TestAnswer, now time.Time) models.TestAnswer {
	s.Answers = append(s.Answers, answer)
	s.Cursor++
	if s.Completed() {
		s.CompletedAt = now
	}
	return answer
}

// Matches compares case-insensitively after trimming surrounding whitespace.
func Matches(answer, correct string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == strings.ToLower(strings.TrimSpace(correct))
}

// Grade returns 1 for a pass and 0 for a session that needs a retake.
func Grade(correct, total int) int {
	if total-correct <= MaxWrongAnswers {
		return 1
	}
	return 0
}

func Summarize(s *Session) (models.TestResultInput, error) {
	if !s.Completed() {
		return models.TestResultInput{}, models.ErrQuizNotCompleted
	}

	correct := 0
	for _, a := range s.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	total := len(s.Answers)

	duration := int(s.CompletedAt.Sub(s.StartedAt) / time.Second)
	if duration < 0 {
		duration = 0
	}

	return models.TestResultInput{
		CorrectAnswers: correct,
		TotalQuestions: total,
		Duration:       duration,
		Passed:         Grade(correct, total),
	}, nil
}

// Step is the outcome of one submit or skip. Report is set once the
// session is completed and its result stored.
type Step struct {
	Answer  models.TestAnswer
	Session *Session
	Report  *models.Report
}
