package client

import (
	"context"
	"errors"

	"github.com/DanRulev/wortschatz/internal/config"
	"github.com/DanRulev/wortschatz/internal/models"
	"go.uber.org/zap"
)

type translator interface {
	TranslateDeToEn(ctx context.Context, text string) (models.TranslationResult, error)
}

// Clients asks the translators in order and returns the first usable answer.
type Clients struct {
	translators []translator
	log         *zap.Logger
}

func InitClients(cfg config.TranslatorConfig, log *zap.Logger) *Clients {
	return &Clients{
		translators: []translator{
			NewMyMemoryAPI(cfg.BaseURL, cfg.Timeout),
			NewDictionaryAPI(cfg.DictionaryURL, cfg.Timeout),
		},
		log: log,
	}
}

// TranslateDeToEn returns the first usable translation. Otherwise the last
// refusal wins over errors, so callers can show why nothing was found.
func (c *Clients) TranslateDeToEn(ctx context.Context, text string) (models.TranslationResult, error) {
	var (
		refusal models.TranslationResult
		lastErr error
	)
	for _, t := range c.translators {
		res, err := t.TranslateDeToEn(ctx, text)
		switch {
		case err != nil:
			c.log.Debug("translator failed", zap.String("word", text), zap.Error(err))
			lastErr = err
		case res.Error != "":
			c.log.Debug("translator refused", zap.String("word", text), zap.String("details", res.Error))
			refusal = res
		default:
			return res, nil
		}
		if ctx.Err() != nil {
			break
		}
	}

	if refusal.Error != "" {
		return refusal, nil
	}
	if lastErr != nil {
		return models.TranslationResult{}, lastErr
	}
	return models.TranslationResult{}, errors.New("no translator configured")
}
