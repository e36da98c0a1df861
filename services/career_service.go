package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
)

// FallbackReply is returned whenever the AI provider cannot be reached.
// The client treats it as a normal reply.
const FallbackReply = "AI is updating. Keep focused on your goals!"

// CareerConfig holds the Gemini connection settings.
type CareerConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// CareerService proxies career-guidance prompts to the hosted Gemini API.
type CareerService struct {
	config     *CareerConfig
	httpClient *http.Client
}

var (
	careerService *CareerService
	careerOnce    sync.Once
)

// GetCareerService returns the shared CareerService configured from the
// environment.
func GetCareerService() *CareerService {
	careerOnce.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Println("WARNING: GEMINI_API_KEY is empty, career guidance will use the fallback reply")
		}

		baseURL := os.Getenv("GEMINI_API_URL")
		if baseURL == "" {
			baseURL = "https://generativelanguage.googleapis.com/v1"
		}

		careerService = NewCareerService(&CareerConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   "gemini-2.5-flash",
		})
	})
	return careerService
}

func NewCareerService(config *CareerConfig) *CareerService {
	return &CareerService{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// BuildPrompt produces the short mentor prompt sent to the model.
func BuildPrompt(name, query, lang string) string {
	language := "English"
	if lang == "hi" {
		language = "Hindi"
	}
	return fmt.Sprintf("Professional career mentor advice for %s. Topic: %s. Max 30 words. Motivational. Language: %s.",
		name, query, language)
}

// Advise asks the model for guidance. Any failure collapses into the static
// fallback reply so the caller never sees an error.
func (cs *CareerService) Advise(name, query, lang string) string {
	reply, err := cs.generate(BuildPrompt(name, query, lang))
	if err != nil {
		fmt.Printf("career guidance error: %v\n", err)
		return FallbackReply
	}
	return reply
}

func (cs *CareerService) generate(prompt string) (string, error) {
	req := generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		cs.config.BaseURL, cs.config.Model, cs.config.APIKey)
	httpReq, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := cs.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	return strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), nil
}
