package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/kozaktomas/skin-advisor/internal/recommend"
)

// RecommendHandler matches catalogue products against scan results and
// follow-up answers.
type RecommendHandler struct {
	recommender *recommend.Recommender
}

func NewRecommendHandler(recommender *recommend.Recommender) *RecommendHandler {
	return &RecommendHandler{recommender: recommender}
}

// Recommend handles POST /recommend with a JSON body of issues and answers.
// An empty product list is a normal response, not an error.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req recommend.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	products := h.recommender.Recommend(req)
	respondJSON(w, http.StatusOK, products)
}
