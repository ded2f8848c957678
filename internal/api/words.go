package api

import (
	"net/http"
	"strconv"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/pkg/validator"
)

func (s *Server) handleListWordPairs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pairs, err := s.service.WordPairs(r.Context())
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, pairs)
	}
}

func (s *Server) handleCreateWordPair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.WordPairInput
		if err := decodeJSON(w, r, &in); err != nil {
			s.respondError(w, r, err)
			return
		}

		pair, err := s.service.CreateWordPair(r.Context(), in)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusCreated, pair)
	}
}

func (s *Server) handleGetWordPair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.respondError(w, r, err)
			return
		}

		pair, err := s.service.WordPair(r.Context(), id)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, pair)
	}
}

func (s *Server) handleUpdateWordPair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.respondError(w, r, err)
			return
		}

		var patch models.WordPairPatch
		if err := decodeJSON(w, r, &patch); err != nil {
			s.respondError(w, r, err)
			return
		}

		pair, err := s.service.UpdateWordPair(r.Context(), id, patch)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, pair)
	}
}

func (s *Server) handleDeleteWordPair() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			s.respondError(w, r, err)
			return
		}

		deleted, err := s.service.DeleteWordPair(r.Context(), id)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		if !deleted {
			s.respondError(w, r, models.ErrNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) handleSearchWordPairs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		pairs, err := s.service.SearchWordPairs(r.Context(), q.Get("q"), q.Get("category"))
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, pairs)
	}
}

func (s *Server) handleRandomWordPairs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := strconv.Atoi(r.PathValue("count"))
		if err != nil {
			s.respondError(w, r, validator.NewError("count", "gt", "count must be a positive integer"))
			return
		}

		pairs, err := s.service.RandomWordPairs(r.Context(), count)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, pairs)
	}
}

func (s *Server) handleCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := s.service.Categories(r.Context())
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, categories)
	}
}

func (s *Server) handleTranslations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		suggestions, err := s.service.SuggestTranslations(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		respondJSON(w, http.StatusOK, map[string][]string{"suggestions": suggestions})
	}
}
