package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/service"
	"github.com/DanRulev/wortschatz/pkg/validator"
	"go.uber.org/zap"
)

const (
	maxBodyBytes = 1 << 20
	msgInternal  = "internal server error"
)

type errorResponse struct {
	Message string                 `json:"message"`
	Errors  []validator.FieldError `json:"errors,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorResponse{Message: msg})
}

// respondError maps service errors onto status codes. Anything it does not
// recognise is logged and reported as 500 without detail.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validator.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Message: "validation failed", Errors: verr.Fields})
	case errors.Is(err, models.ErrEmptyAnswer):
		respondMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound), errors.Is(err, models.ErrSessionNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrNotEnoughWords), errors.Is(err, models.ErrQuizCompleted):
		respondMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrTranslatorUnavailable):
		respondMessage(w, http.StatusBadGateway, service.ErrTranslatorUnavailable.Error())
	default:
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respondMessage(w, http.StatusInternalServerError, msgInternal)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return validator.NewError("body", "required", "request body is required")
		}
		return validator.NewError("body", "json", "request body is not valid JSON")
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, validator.NewError("id", "gt", "id must be a positive integer")
	}
	return id, nil
}

// queryLimit reads ?limit=; a missing value means no limit.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, validator.NewError("limit", "min", "limit must be a non-negative integer")
	}
	return limit, nil
}
