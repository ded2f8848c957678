// Package api exposes the vocabulary and quiz services as a JSON HTTP API.
package api

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/quiz"
	"go.uber.org/zap"
)

type ServiceI interface {
	CreateWordPair(ctx context.Context, in models.WordPairInput) (models.WordPair, error)
	WordPairs(ctx context.Context) ([]models.WordPair, error)
	WordPair(ctx context.Context, id int64) (models.WordPair, error)
	UpdateWordPair(ctx context.Context, id int64, patch models.WordPairPatch) (models.WordPair, error)
	DeleteWordPair(ctx context.Context, id int64) (bool, error)
	SearchWordPairs(ctx context.Context, query, category string) ([]models.WordPair, error)
	RandomWordPairs(ctx context.Context, count int) ([]models.WordPair, error)
	Categories(ctx context.Context) ([]string, error)
	SuggestTranslations(ctx context.Context, word string) ([]string, error)

	StartQuiz(ctx context.Context) (*quiz.Session, error)
	Quiz(ctx context.Context, id string) (*quiz.Session, error)
	SubmitAnswer(ctx context.Context, id, answer string) (quiz.Step, error)
	SkipQuestion(ctx context.Context, id string) (quiz.Step, error)
	AbandonQuiz(ctx context.Context, id string) error
	CreateTestResult(ctx context.Context, in models.TestResultInput) (models.TestResult, error)
	TestResults(ctx context.Context, limit int) ([]models.TestResult, error)
	Stats(ctx context.Context) (models.Stats, error)
}

// Server routes API requests to the services.
type Server struct {
	service ServiceI
	router  *http.ServeMux
	handler http.Handler
	log     *zap.Logger
	timeout time.Duration
}

type Option func(*Server)

// WithRequestTimeout bounds the context every handler runs with.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) { s.timeout = d }
}

func NewServer(service ServiceI, log *zap.Logger, opts ...Option) *Server {
	s := &Server{
		service: service,
		router:  http.NewServeMux(),
		log:     log,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	s.handler = s.logRequests(s.recoverPanics(s.withTimeout(s.router)))
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.HandleFunc("GET /healthz", s.handleHealth())

	s.router.HandleFunc("GET /api/word-pairs", s.handleListWordPairs())
	s.router.HandleFunc("POST /api/word-pairs", s.handleCreateWordPair())
	s.router.HandleFunc("GET /api/word-pairs/search", s.handleSearchWordPairs())
	s.router.HandleFunc("GET /api/word-pairs/categories", s.handleCategories())
	s.router.HandleFunc("GET /api/word-pairs/random/{count}", s.handleRandomWordPairs())
	s.router.HandleFunc("GET /api/word-pairs/{id}", s.handleGetWordPair())
	s.router.HandleFunc("PUT /api/word-pairs/{id}", s.handleUpdateWordPair())
	s.router.HandleFunc("PATCH /api/word-pairs/{id}", s.handleUpdateWordPair())
	s.router.HandleFunc("DELETE /api/word-pairs/{id}", s.handleDeleteWordPair())
	s.router.HandleFunc("GET /api/translations", s.handleTranslations())

	s.router.HandleFunc("POST /api/test-results", s.handleCreateTestResult())
	s.router.HandleFunc("GET /api/test-results", s.handleListTestResults())
	s.router.HandleFunc("GET /api/stats", s.handleStats())

	s.router.HandleFunc("POST /api/quizzes", s.handleStartQuiz())
	s.router.HandleFunc("GET /api/quizzes/{id}", s.handleGetQuiz())
	s.router.HandleFunc("POST /api/quizzes/{id}/answers", s.handleSubmitAnswer())
	s.router.HandleFunc("POST /api/quizzes/{id}/skip", s.handleSkipQuestion())
	s.router.HandleFunc("DELETE /api/quizzes/{id}", s.handleAbandonQuiz())
}

func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Debug("request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Server) withTimeout(next http.Handler) http.Handler {
	if s.timeout <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rv := recover(); rv != nil {
				if rv == http.ErrAbortHandler {
					panic(rv)
				}
				s.log.Error("panic while handling request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Any("panic", rv),
					zap.ByteString("stack", debug.Stack()),
				)
				respondJSON(w, http.StatusInternalServerError, errorResponse{Message: msgInternal})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
