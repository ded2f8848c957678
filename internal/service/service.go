package service

import (
	"context"

	"github.com/DanRulev/wortschatz/internal/models"
	"github.com/DanRulev/wortschatz/internal/storage/cache"
	"go.uber.org/zap"
)

type TranslatorI interface {
	TranslateDeToEn(ctx context.Context, text string) (models.TranslationResult, error)
}

type RepositoryI interface {
	WordRI
	QuizRI
}

type Service struct {
	*WordS
	*QuizS
}

func InitServices(api TranslatorI, repo RepositoryI, cache *cache.Cache, log *zap.Logger) *Service {
	return &Service{
		WordS: NewWordService(api, repo, log),
		QuizS: NewQuizService(repo, repo, cache, log),
	}
}
