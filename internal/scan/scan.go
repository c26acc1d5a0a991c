// Package scan turns an uploaded face photo into detected skin issues and
// a tailored follow-up questionnaire, using the mapping rules to translate
// raw analyzer indicators into the public issue vocabulary.
package scan

import (
	"context"
	"errors"
	"fmt"

	"github.com/kozaktomas/skin-advisor/internal/analyze"
	"github.com/kozaktomas/skin-advisor/internal/config"
	"github.com/kozaktomas/skin-advisor/internal/constants"
)

// ErrInvalidImage marks uploads that are missing or cannot be decoded.
// Callers map it to a client error rather than an upstream failure.
var ErrInvalidImage = errors.New("invalid image")

// Question is one follow-up question returned to the client.
// Select questions carry Options; text and number questions do not.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
}

// Result is the outcome of one scan: detected issues plus the questions
// that refine recommendations for them. Nothing is stored server-side.
type Result struct {
	Issues    []string   `json:"issues"`
	Questions []Question `json:"questions"`
}

// Scanner runs the analysis backend and applies the mapping rules.
type Scanner struct {
	provider analyze.Provider
	rules    *config.RulesConfig
}

func NewScanner(provider analyze.Provider, rules *config.RulesConfig) *Scanner {
	return &Scanner{
		provider: provider,
		rules:    rules,
	}
}

// Scan analyzes a face image and maps the detection to issues and
// follow-up questions. The mapping is deterministic: issues follow rule
// order and each issue contributes at most one question.
func (s *Scanner) Scan(ctx context.Context, imageData []byte) (*Result, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidImage)
	}
	// Validate the upload before involving the backend so a garbage payload
	// never counts as an upstream failure.
	if _, err := analyze.DecodeImage(imageData); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	detection, err := s.provider.AnalyzeFace(ctx, imageData)
	if err != nil {
		return nil, fmt.Errorf("face analysis failed: %w", err)
	}

	return s.mapDetection(detection), nil
}

// mapDetection applies the rules to a detection result.
func (s *Scanner) mapDetection(detection *analyze.Detection) *Result {
	threshold := s.rules.ConfidenceThreshold
	if threshold == 0 {
		threshold = constants.DefaultConfidenceThreshold
	}

	matched := make(map[string]struct{})
	for _, ind := range detection.Indicators {
		if ind.Confidence >= threshold {
			matched[ind.Name] = struct{}{}
		}
	}

	result := &Result{
		Issues:    []string{},
		Questions: []Question{},
	}

	seenIssues := make(map[string]struct{})
	seenQuestions := make(map[string]struct{})
	for _, rule := range s.rules.Issues {
		if _, dup := seenIssues[rule.Name]; dup {
			continue
		}
		if !rule.Always && !anyIndicatorMatched(rule.Indicators, matched) {
			continue
		}
		seenIssues[rule.Name] = struct{}{}
		result.Issues = append(result.Issues, rule.Name)

		q, ok := s.rules.QuestionForIssue(rule.Name)
		if !ok {
			continue
		}
		if _, dup := seenQuestions[q.ID]; dup {
			continue
		}
		seenQuestions[q.ID] = struct{}{}
		result.Questions = append(result.Questions, Question{
			ID:      q.ID,
			Text:    q.Text,
			Type:    q.Type,
			Options: q.Options,
		})
	}

	return result
}

func anyIndicatorMatched(indicators []string, matched map[string]struct{}) bool {
	for _, name := range indicators {
		if _, ok := matched[name]; ok {
			return true
		}
	}
	return false
}
