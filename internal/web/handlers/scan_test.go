package handlers

import (
	"bytes"
	"image/color"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/kozaktomas/skin-advisor/internal/analyze"
	"github.com/kozaktomas/skin-advisor/internal/scan"
)

func newScanHandler(t *testing.T, provider analyze.Provider) *ScanHandler {
	t.Helper()
	return NewScanHandler(scan.NewScanner(provider, testRules(t)))
}

func TestScanHandler_Success(t *testing.T) {
	handler := newScanHandler(t, analyze.NewHeuristicProvider())

	body, contentType := multipartBody(t, "file", "face.jpg", encodeTestImage(t, color.Black))
	req := httptest.NewRequest("POST", "/scan", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	handler.Scan(recorder, req)

	assertStatusCode(t, recorder, 200)

	var result scan.Result
	parseJSONResponse(t, recorder, &result)

	// Dark image: dullness from the heuristic plus the always-on issues.
	for _, want := range []string{"dullness", "dryness", "acne"} {
		if !slices.Contains(result.Issues, want) {
			t.Errorf("expected issue %q in %v", want, result.Issues)
		}
	}
	if len(result.Questions) == 0 {
		t.Error("expected follow-up questions")
	}

	seen := map[string]bool{}
	for _, q := range result.Questions {
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestScanHandler_MissingFileField(t *testing.T) {
	handler := newScanHandler(t, analyze.NewHeuristicProvider())

	body, contentType := multipartBody(t, "photo", "face.jpg", encodeTestImage(t, color.Black))
	req := httptest.NewRequest("POST", "/scan", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	handler.Scan(recorder, req)

	assertStatusCode(t, recorder, 400)
	assertJSONError(t, recorder, "file field is required")
}

func TestScanHandler_NonImagePayload(t *testing.T) {
	handler := newScanHandler(t, analyze.NewHeuristicProvider())

	body, contentType := multipartBody(t, "file", "face.jpg", []byte("not an image at all"))
	req := httptest.NewRequest("POST", "/scan", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	handler.Scan(recorder, req)

	assertStatusCode(t, recorder, 400)
	assertJSONError(t, recorder, "uploaded file is not a valid image")
}

func TestScanHandler_NotMultipart(t *testing.T) {
	handler := newScanHandler(t, analyze.NewHeuristicProvider())

	req := httptest.NewRequest("POST", "/scan", bytes.NewReader([]byte("plain body")))
	recorder := httptest.NewRecorder()

	handler.Scan(recorder, req)

	assertStatusCode(t, recorder, 400)
}

func TestScanHandler_UpstreamFailure(t *testing.T) {
	handler := newScanHandler(t, failingProvider{})

	body, contentType := multipartBody(t, "file", "face.jpg", encodeTestImage(t, color.White))
	req := httptest.NewRequest("POST", "/scan", body)
	req.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()

	handler.Scan(recorder, req)

	assertStatusCode(t, recorder, 502)
	assertJSONError(t, recorder, "face analysis failed")
}
