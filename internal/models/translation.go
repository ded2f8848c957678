package models

type MyMemoryResponse struct {
	ResponseBody struct {
		TranslatedText  string  `json:"translatedText"`
		Match           float64 `json:"match"`
		ResponseStatus  int     `json:"responseStatus"`
		ResponseDetails string  `json:"responseDetails"`
	} `json:"responseData"`

	Matches []struct {
		Translation string `json:"translation"`
	} `json:"matches"`
}

type TranslationResult struct {
	Text         string   `json:"text"`
	Match        float64  `json:"match"`
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Reliable     bool     `json:"reliable"`
	Alternatives []string `json:"alternatives"`
	Error        string   `json:"error,omitempty"`
}

type DictionaryResponse struct {
	SourceText      string `json:"source-text"`
	DestinationText string `json:"destination-text"`
	Translations    struct {
		PossibleTranslations []string `json:"possible-translations"`
	} `json:"translations"`
}
