package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/recommend"
	"github.com/kozaktomas/skin-advisor/internal/scan"
)

// API is a typed HTTP client for the advisor endpoints.
type API struct {
	baseURL string
	client  *http.Client
}

// NewAPI creates a client for an advisor instance at baseURL.
func NewAPI(baseURL string) *API {
	return &API{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{},
	}
}

// StartQuiz fetches the opening question.
func (a *API) StartQuiz(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/quiz/start", nil)
	if err != nil {
		return "", fmt.Errorf("could not create request: %w", err)
	}

	var result struct {
		Question string `json:"question"`
	}
	if err := a.do(req, &result); err != nil {
		return "", err
	}
	return result.Question, nil
}

// Scan uploads a face photo and returns the detected issues and questions.
func (a *API) Scan(ctx context.Context, filename string, imageData []byte) (*scan.Result, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("could not create form file: %w", err)
	}
	if _, err := part.Write(imageData); err != nil {
		return nil, fmt.Errorf("could not write form file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("could not finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/scan", body)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result scan.Result
	if err := a.do(req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Recommend submits issues and answers and returns the matched products.
func (a *API) Recommend(ctx context.Context, request recommend.Request) ([]catalog.Product, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/recommend", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var products []catalog.Product
	if err := a.do(req, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// do sends the request and unmarshals a 200 response into result. Error
// responses are turned into Go errors carrying the server's message.
func (a *API) do(req *http.Request, result any) error {
	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, readErrorMessage(body))
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("could not unmarshal response: %w", err)
	}
	return nil
}

// readErrorMessage extracts the error envelope message, falling back to the
// raw body when the response is not the usual JSON shape.
func readErrorMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return string(body)
}
