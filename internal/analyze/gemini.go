package analyze

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

type GeminiProvider struct {
	client     *genai.Client
	indicators []string
}

// NewGeminiProvider creates a Gemini-backed analyzer constrained to the
// given indicator vocabulary.
func NewGeminiProvider(ctx context.Context, apiKey string, indicators []string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:     client,
		indicators: indicators,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return geminiModel
}

func (p *GeminiProvider) AnalyzeFace(ctx context.Context, imageData []byte) (*Detection, error) {
	resizedData, err := ResizeImage(imageData, maxImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to resize image: %w", err)
	}

	systemPrompt := buildFaceAnalysisPrompt(p.indicators)

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: systemPrompt + "\n\nAnalyze the skin in this photo."},
				{InlineData: &genai.Blob{Data: resizedData, MIMEType: "image/jpeg"}},
			},
		},
	}

	resp, err := p.client.Models.GenerateContent(ctx, geminiModel, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini API error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, errors.New("no response from Gemini")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		content += part.Text
	}

	detection, err := parseDetection(content, p.indicators)
	if err != nil {
		return nil, fmt.Errorf("failed to parse detection JSON: %w (response: %s)", err, content)
	}

	return detection, nil
}
