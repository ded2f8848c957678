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

const defaultDictionaryURL = "https://ftapi.pythonanywhere.com"

// DictionaryAPI looks words up in the ftapi dictionary service.
type DictionaryAPI struct {
	baseURL string
	client  *http.Client
}

func NewDictionaryAPI(baseURL string, timeout time.Duration) *DictionaryAPI {
	if baseURL == "" {
		baseURL = defaultDictionaryURL
	}
	return &DictionaryAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (d *DictionaryAPI) TranslateDeToEn(ctx context.Context, text string) (models.TranslationResult, error) {
	q := url.Values{}
	q.Set("sl", "de")
	q.Set("dl", "en")
	q.Set("text", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+"/translate?"+q.Encode(), nil)
	if err != nil {
		return models.TranslationResult{}, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return models.TranslationResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TranslationResult{}, fmt.Errorf("dictionary responded with status %d", resp.StatusCode)
	}

	var data models.DictionaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TranslationResult{}, fmt.Errorf("failed to translate word %q: %w", text, err)
	}

	if data.DestinationText == "" {
		return models.TranslationResult{Error: "no translation found"}, nil
	}

	var alternatives []string
	for _, alt := range data.Translations.PossibleTranslations {
		if alt != data.DestinationText {
			alternatives = append(alternatives, alt)
		}
	}

	return models.TranslationResult{
		Text:         data.DestinationText,
		Source:       "de",
		Target:       "en",
		Alternatives: alternatives,
	}, nil
}
