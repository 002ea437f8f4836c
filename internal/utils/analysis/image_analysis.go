package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"GiveBridge-Backend/internal/utils"
)

const defaultHTTPTimeout = 30 * time.Second

type (
	// ImageAnalyzer describes an item photo in a short sentence so NGOs can
	// triage donations without opening every image.
	ImageAnalyzer interface {
		AnalyzeImage(ctx context.Context, imageURL string) (string, error)
	}

	geminiAnalyzer struct {
		httpClient *http.Client
		baseURL    string
	}
)

func NewGeminiAnalyzer() ImageAnalyzer {
	return NewGeminiAnalyzerWithOptions("", nil)
}

// NewGeminiAnalyzerWithOptions allows overriding the base URL and HTTP client
// (used for tests).
func NewGeminiAnalyzerWithOptions(baseURL string, httpClient *http.Client) ImageAnalyzer {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta/models"
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &geminiAnalyzer{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

func (g *geminiAnalyzer) AnalyzeImage(ctx context.Context, imageURL string) (string, error) {
	prompt := fmt.Sprintf(
		"You are reviewing a photo of an item offered for donation, available at %s. "+
			"Describe the item and its apparent condition in one short sentence. "+
			"Do not include any explanations or text beyond that sentence.",
		imageURL,
	)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.2,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	geminiURL := fmt.Sprintf(
		"%s/%s:generateContent?key=%s",
		g.baseURL,
		utils.GetConfig("GEMINI_MODEL"),
		utils.GetConfig("GEMINI_API_KEY"),
	)

	req, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API returned no candidates")
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}
