package handlers

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/recommend"
)

func newRecommendHandler(t *testing.T) *RecommendHandler {
	t.Helper()
	c := testCatalog(t, []catalog.Product{
		{ID: "p1", Name: "Hydra Cream", Image: "/img/p1.jpg", URL: "https://shop.example.com/p1", ConcernTags: []string{"dryness"}},
		{ID: "p2", Name: "Clear Gel", Image: "/img/p2.jpg", URL: "https://shop.example.com/p2", ConcernTags: []string{"acne"}},
	})
	return NewRecommendHandler(recommend.NewRecommender(c, testRules(t), 5))
}

func TestRecommendHandler_Success(t *testing.T) {
	handler := newRecommendHandler(t)

	body := `{"issues": ["dryness"], "answers": {"q1": "Never"}}`
	req := httptest.NewRequest("POST", "/recommend", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.Recommend(recorder, req)

	assertStatusCode(t, recorder, 200)

	var products []catalog.Product
	parseJSONResponse(t, recorder, &products)

	if len(products) != 1 || products[0].ID != "p1" {
		t.Errorf("expected [p1], got %+v", products)
	}
	if products[0].Name == "" || products[0].URL == "" {
		t.Error("expected full product records in response")
	}
}

func TestRecommendHandler_NoMatchesReturnsEmptyList(t *testing.T) {
	handler := newRecommendHandler(t)

	body := `{"issues": ["wrinkles"], "answers": {}}`
	req := httptest.NewRequest("POST", "/recommend", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.Recommend(recorder, req)

	assertStatusCode(t, recorder, 200)

	if got := recorder.Body.String(); got != "[]\n" {
		t.Errorf("expected empty JSON array, got %q", got)
	}
}

func TestRecommendHandler_MissingFieldsToleratedAsEmpty(t *testing.T) {
	handler := newRecommendHandler(t)

	req := httptest.NewRequest("POST", "/recommend", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.Recommend(recorder, req)

	assertStatusCode(t, recorder, 200)
}

func TestRecommendHandler_MalformedBody(t *testing.T) {
	handler := newRecommendHandler(t)

	req := httptest.NewRequest("POST", "/recommend", bytes.NewReader([]byte(`{"issues": [`)))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	handler.Recommend(recorder, req)

	assertStatusCode(t, recorder, 400)
	assertJSONError(t, recorder, errInvalidRequestBody)
}
