package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"Klutterbox/internal/config"
	"Klutterbox/internal/dto"
	"Klutterbox/internal/helpers"
)

const maxSuggestions = 10

const visionPrompt = `You help catalog household items stored in labeled boxes. Identify distinct items in the image.
Return JSON with key "items" as an array of up to 10 objects.
Each object must have: name (3-6 words, singular), description (<= 20 words).`

// VisionService wraps the external vision capability. It never fails a
// request: when the capability is unavailable, misconfigured or errors out,
// it falls back to a single suggestion named after the uploaded file.
type VisionService interface {
	SuggestItems(imagePath, mimeType, originalName string) []dto.SuggestionDTO
}

type VisionServiceImpl struct {
	configuration config.Configuration
	logService    LogService
	client        *http.Client
}

func NewVisionService(configuration *config.Configuration, logService LogService) VisionService {
	return &VisionServiceImpl{
		configuration: *configuration,
		logService:    logService,
		client: &http.Client{
			Timeout: time.Duration(configuration.Vision.TimeoutSeconds) * time.Second,
		},
	}
}

func (s *VisionServiceImpl) SuggestItems(imagePath, mimeType, originalName string) []dto.SuggestionDTO {
	fallbackName := helpers.BaseNameWithoutExt(originalName)
	if fallbackName == "" {
		fallbackName = helpers.BaseNameWithoutExt(imagePath)
	}
	fallback := []dto.SuggestionDTO{{Name: fallbackName}}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return fallback
	}

	suggestions, err := s.requestSuggestions(apiKey, imagePath, mimeType)
	if err != nil {
		s.logService.Log.WithField("error", err.Error()).Warn("vision suggest failed, falling back")
		return fallback
	}
	if len(suggestions) == 0 {
		return fallback
	}
	return suggestions
}

type chatRequest struct {
	Model          string          `json:"model"`
	Temperature    float64         `json:"temperature"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (s *VisionServiceImpl) requestSuggestions(apiKey, imagePath, mimeType string) ([]dto.SuggestionDTO, error) {
	imageBytes, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, err
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(imageBytes))

	body, err := json.Marshal(chatRequest{
		Model:       s.configuration.Vision.Model,
		Temperature: s.configuration.Vision.Temperature,
		Messages: []chatMessage{
			{Role: "system", Content: "You are a helpful assistant."},
			{Role: "user", Content: []contentPart{
				{Type: "text", Text: visionPrompt},
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
			}},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, buildChatURL(s.configuration.Vision.BaseURL), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vision API returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse vision response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("no choices in vision response")
	}

	var payload struct {
		Items []dto.SuggestionDTO `json:"items"`
	}
	if err := json.Unmarshal([]byte(parsed.Choices[0].Message.Content), &payload); err != nil {
		return nil, fmt.Errorf("parse suggestions: %w", err)
	}

	suggestions := make([]dto.SuggestionDTO, 0, len(payload.Items))
	for _, item := range payload.Items {
		if item.Name == "" {
			continue
		}
		suggestions = append(suggestions, item)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions, nil
}

func buildChatURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if strings.HasSuffix(baseURL, "/chat/completions") {
		return baseURL
	}
	return baseURL + "/chat/completions"
}
