package models

import "time"

type TestResult struct {
	ID             int64     `db:"id" json:"id"`
	CorrectAnswers int       `db:"correct_answers" json:"correctAnswers"`
	TotalQuestions int       `db:"total_questions" json:"totalQuestions"`
	Duration       int       `db:"duration" json:"duration"`
	Passed         int       `db:"passed" json:"passed"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}

type TestResultInput struct {
	CorrectAnswers int `json:"correctAnswers" validate:"min=0,ltefield=TotalQuestions"`
	TotalQuestions int `json:"totalQuestions" validate:"min=0"`
	Duration       int `json:"duration" validate:"min=0"`
	Passed         int `json:"passed" validate:"oneof=0 1"`
}

func (r TestResult) IsPassed() bool {
	return r.Passed == 1
}

// Accuracy is the share of correct answers in percent, rounded.
func (r TestResult) Accuracy() int {
	if r.TotalQuestions == 0 {
		return 0
	}
	return (r.CorrectAnswers*100 + r.TotalQuestions/2) / r.TotalQuestions
}

type TestQuestion struct {
	ID            int64  `json:"id"`
	GermanWord    string `json:"germanWord"`
	CorrectAnswer string `json:"correctAnswer"`
}

type TestAnswer struct {
	QuestionID    int64  `json:"questionId"`
	UserAnswer    string `json:"userAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Report is what a finished quiz hands back: the stored result plus its detail.
type Report struct {
	Result    TestResult     `json:"testResult"`
	Questions []TestQuestion `json:"questions"`
	Answers   []TestAnswer   `json:"answers"`
}

type Stats struct {
	TotalWords     int `json:"totalWords"`
	TestsCompleted int `json:"testsCompleted"`
	PassedTests    int `json:"passedTests"`
	SuccessRate    int `json:"successRate"`
}
