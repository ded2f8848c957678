package api

import (
	"net/http"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
	"github.com/DanRulev/wortschatz/pkg/validator"
)

// questionView hides the expected answer of the question being asked.
type questionView struct {
	ID         int64  `json:"id"`
	GermanWord string `json:"germanWord"`
}

type sessionView struct {
	ID        string        `json:"id"`
	Question  *questionView `json:"question,omitempty"`
	Position  int           `json:"position"`
	Total     int           `json:"total"`
	Completed bool          `json:"completed"`
	StartedAt time.Time     `json:"startedAt"`
}

type stepView struct {
	Answer  models.TestAnswer `json:"answer"`
	Session sessionView       `json:"session"`
	Report  *models.Report    `json:"report,omitempty"`
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// testResultRequest tells a missing count apart from a zero one.
type testResultRequest struct {
	CorrectAnswers *int `json:"correctAnswers" validate:"required,min=0"`
	TotalQuestions *int `json:"totalQuestions" validate:"required,min=0"`
	Duration       *int `json:"duration" validate:"required,min=0"`
	Passed         *int `json:"passed" validate:"required,oneof=0 1"`
}

func (req testResultRequest) input() models.TestResultInput {
	return models.TestResultInput{
		CorrectAnswers: *req.CorrectAnswers,
		TotalQuestions: *req.TotalQuestions,
		Duration:       *req.Duration,
		Passed:         *req.Passed,
	}
}

func newSessionView(s *quiz.Session) sessionView {
	answered, total := s.Progress()
	view := sessionView{
		ID:        s.ID,
		Position:  answered,
		Total:     total,
		Completed: s.Completed(),
		StartedAt: s.StartedAt,
	}
	if q, ok := s.Current(); ok {
		view.Question = &questionView{ID: q.ID, GermanWord: q.GermanWord}
	}
	return view
}

func newStepView(step quiz.Step) stepView {
	return stepView{
		Answer:  step.Answer,
		Session: newSessionView(step.Session),
		Report:  step.Report,
	}
}

func (s *Server) handleStartQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.service.StartQuiz(r.Context())
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, newSessionView(session))
	}
}

func (s *Server) handleGetQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := s.service.Quiz(r.Context(), r.PathValue("id"))
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, newSessionView(session))
	}
}

func (s *Server) handleSubmitAnswer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req answerRequest
		if err := decodeJSON(w, r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}

		step, err := s.service.SubmitAnswer(r.Context(), r.PathValue("id"), req.Answer)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, newStepView(step))
	}
}

func (s *Server) handleSkipQuestion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		step, err := s.service.SkipQuestion(r.Context(), r.PathValue("id"))
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, newStepView(step))
	}
}

func (s *Server) handleAbandonQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.service.AbandonQuiz(r.Context(), r.PathValue("id")); err != nil {
			s.respondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleCreateTestResult() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req testResultRequest
		if err := decodeJSON(w, r, &req); err != nil {
			s.respondError(w, r, err)
			return
		}
		if err := validator.ValidateStruct(req); err != nil {
			s.respondError(w, r, err)
			return
		}

		result, err := s.service.CreateTestResult(r.Context(), req.input())
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, result)
	}
}

func (s *Server) handleListTestResults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryLimit(r)
		if err != nil {
			s.respondError(w, r, err)
			return
		}

		results, err := s.service.TestResults(r.Context(), limit)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, results)
	}
}

func (s *Server) handleStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.service.Stats(r.Context())
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
