// Package client implements the consultation flow for Go callers: a pure
// phase state machine plus a typed HTTP client for the advisor API. The
// consult CLI drives both; tests exercise the transitions without any UI.
package client

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/scan"
)

// Phase is one step of the linear consultation flow.
type Phase string

const (
	PhaseStart    Phase = "start"
	PhaseScan     Phase = "scan"
	PhaseFollowup Phase = "followup"
	PhaseResults  Phase = "results"
)

// State carries everything the client knows mid-consultation. It only ever
// moves forward; transitions return a new value and never mutate the input,
// so a failed network call simply keeps the previous state.
type State struct {
	Phase      Phase
	Concern    string
	ScanResult *scan.Result
	Answers    map[string]string
	Products   []catalog.Product
}

// NewState returns the initial state of a consultation.
func NewState() State {
	return State{Phase: PhaseStart}
}

// SubmitConcern records the typed skin concern and advances to the scan
// phase. No network call is involved in this transition.
func SubmitConcern(s State, concern string) (State, error) {
	if s.Phase != PhaseStart {
		return s, phaseError(s.Phase, PhaseStart)
	}
	if concern == "" {
		return s, errors.New("concern must not be empty")
	}
	s.Concern = concern
	s.Phase = PhaseScan
	return s, nil
}

// ApplyScanResult stores a successful scan response and advances to the
// follow-up phase.
func ApplyScanResult(s State, result *scan.Result) (State, error) {
	if s.Phase != PhaseScan {
		return s, phaseError(s.Phase, PhaseScan)
	}
	if result == nil {
		return s, errors.New("scan result must not be nil")
	}
	s.ScanResult = result
	s.Answers = map[string]string{}
	s.Phase = PhaseFollowup
	return s, nil
}

// AnswerQuestion records one follow-up answer. The question must come from
// the scan response of this consultation, and select questions only accept
// listed options.
func (s State) AnswerQuestion(id, value string) (State, error) {
	if s.Phase != PhaseFollowup {
		return s, phaseError(s.Phase, PhaseFollowup)
	}

	var question *scan.Question
	for i := range s.ScanResult.Questions {
		if s.ScanResult.Questions[i].ID == id {
			question = &s.ScanResult.Questions[i]
			break
		}
	}
	if question == nil {
		return s, fmt.Errorf("unknown question id %q", id)
	}
	if len(question.Options) > 0 && !slices.Contains(question.Options, value) {
		return s, fmt.Errorf("answer %q is not an option of question %q", value, id)
	}

	answers := maps.Clone(s.Answers)
	answers[id] = value
	s.Answers = answers
	return s, nil
}

// ApplyRecommendations stores the recommended products and advances to the
// final results phase.
func ApplyRecommendations(s State, products []catalog.Product) (State, error) {
	if s.Phase != PhaseFollowup {
		return s, phaseError(s.Phase, PhaseFollowup)
	}
	s.Products = products
	s.Phase = PhaseResults
	return s, nil
}

func phaseError(got, want Phase) error {
	return fmt.Errorf("transition requires phase %q, current phase is %q", want, got)
}
