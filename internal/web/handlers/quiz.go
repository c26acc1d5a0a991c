package handlers

import (
	"net/http"

	"github.com/kozaktomas/skin-advisor/internal/quiz"
)

// QuizHandler serves the consultation opening question.
type QuizHandler struct {
	service *quiz.Service
}

func NewQuizHandler(service *quiz.Service) *QuizHandler {
	return &QuizHandler{service: service}
}

// Start returns the fixed opening question.
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"question": h.service.OpeningQuestion(),
	})
}
