package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanRulev/wortschatz/internal/models"
)

const defaultMyMemoryURL = "https://api.mymemory.translated.net"

type MyMemoryAPI struct {
	baseURL string
	client  *http.Client
}

func NewMyMemoryAPI(baseURL string, timeout time.Duration) *MyMemoryAPI {
	if baseURL == "" {
		baseURL = defaultMyMemoryURL
	}
	return &MyMemoryAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (m *MyMemoryAPI) TranslateDeToEn(ctx context.Context, text string) (models.TranslationResult, error) {
	url := fmt.Sprintf(
		"%s/get?q=%s&langpair=%s",
		m.baseURL, url.QueryEscape(text), url.QueryEscape("de|en"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.TranslationResult{}, err
	}
	resp, err := m.client.Do(req)
	if err != nil {
		return models.TranslationResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TranslationResult{}, fmt.Errorf("translator responded with status %d", resp.StatusCode)
	}

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TranslationResult{}, fmt.Errorf("failed to decode translation: %w", err)
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.TranslationResult{
			Error: data.ResponseBody.ResponseDetails,
		}, nil
	}

	var alternatives []string
	for _, m := range data.Matches {
		if m.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, m.Translation)
		}
	}

	return models.TranslationResult{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Source:       "de",
		Target:       "en",
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}
