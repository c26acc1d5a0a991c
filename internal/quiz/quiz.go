// Package quiz serves the fixed opening question of the consultation.
package quiz

import "github.com/kozaktomas/skin-advisor/internal/config"

// Service returns the opening question. It is stateless and never fails.
type Service struct {
	question string
}

// NewService creates a quiz service from the mapping rules.
func NewService(rules *config.RulesConfig) *Service {
	return &Service{question: rules.Quiz.OpeningQuestion}
}

// OpeningQuestion returns the prompt shown before the face scan.
func (s *Service) OpeningQuestion() string {
	return s.question
}
