package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kozaktomas/skin-advisor/internal/analyze"
	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/config"
)

// errUpstream simulates an unavailable analysis backend.
var errUpstream = errors.New("analysis backend unavailable")

// failingProvider always errors.
type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }

func (failingProvider) AnalyzeFace(_ context.Context, _ []byte) (*analyze.Detection, error) {
	return nil, errUpstream
}

// testRules loads the embedded mapping rules.
func testRules(t *testing.T) *config.RulesConfig {
	t.Helper()
	return &config.Load().Rules
}

// testCatalog builds a small catalog through the JSON loader.
func testCatalog(t *testing.T, products []catalog.Product) *catalog.Catalog {
	t.Helper()
	data, err := json.Marshal(products)
	if err != nil {
		t.Fatalf("failed to marshal products: %v", err)
	}
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write products: %v", err)
	}
	c, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	return c
}

// encodeTestImage produces a solid-color JPEG for upload tests.
func encodeTestImage(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := range 16 {
		for y := range 16 {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// multipartBody builds a multipart request body with a single file field.
func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	writer.Close()
	return body, writer.FormDataContentType()
}

// parseJSONResponse parses a JSON response body into the target type.
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code.
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message.
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
