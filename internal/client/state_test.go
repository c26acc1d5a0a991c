package client

import (
	"testing"

	"github.com/kozaktomas/skin-advisor/internal/catalog"
	"github.com/kozaktomas/skin-advisor/internal/scan"
)

func scanResult() *scan.Result {
	return &scan.Result{
		Issues: []string{"dryness", "acne"},
		Questions: []scan.Question{
			{ID: "q1", Text: "How often do you moisturize?", Type: "select", Options: []string{"Never", "Sometimes", "Daily"}},
			{ID: "q2", Text: "Are your breakouts occasional or frequent?", Type: "select", Options: []string{"Occasional", "Frequent", "Severe"}},
		},
	}
}

func followupState(t *testing.T) State {
	t.Helper()
	s, err := SubmitConcern(NewState(), "dry skin")
	if err != nil {
		t.Fatalf("SubmitConcern failed: %v", err)
	}
	s, err = ApplyScanResult(s, scanResult())
	if err != nil {
		t.Fatalf("ApplyScanResult failed: %v", err)
	}
	return s
}

func TestNewState_StartsAtStart(t *testing.T) {
	if NewState().Phase != PhaseStart {
		t.Error("expected initial phase to be start")
	}
}

func TestSubmitConcern_AdvancesToScan(t *testing.T) {
	s, err := SubmitConcern(NewState(), "dry skin")
	if err != nil {
		t.Fatalf("SubmitConcern failed: %v", err)
	}
	if s.Phase != PhaseScan {
		t.Errorf("expected scan phase, got %s", s.Phase)
	}
	if s.Concern != "dry skin" {
		t.Errorf("concern not recorded: %q", s.Concern)
	}
}

func TestSubmitConcern_EmptyRejected(t *testing.T) {
	s, err := SubmitConcern(NewState(), "")
	if err == nil {
		t.Fatal("expected error for empty concern")
	}
	if s.Phase != PhaseStart {
		t.Error("failed transition must not change phase")
	}
}

func TestSubmitConcern_WrongPhase(t *testing.T) {
	s := followupState(t)

	if _, err := SubmitConcern(s, "oops"); err == nil {
		t.Fatal("expected error when submitting concern outside start phase")
	}
}

func TestApplyScanResult_AdvancesToFollowup(t *testing.T) {
	s := followupState(t)

	if s.Phase != PhaseFollowup {
		t.Errorf("expected followup phase, got %s", s.Phase)
	}
	if s.ScanResult == nil || len(s.ScanResult.Questions) != 2 {
		t.Error("scan result not recorded")
	}
}

func TestApplyScanResult_RequiresScanPhase(t *testing.T) {
	if _, err := ApplyScanResult(NewState(), scanResult()); err == nil {
		t.Fatal("expected error when applying scan result in start phase")
	}
}

func TestApplyScanResult_NilRejected(t *testing.T) {
	s, _ := SubmitConcern(NewState(), "dry skin")
	if _, err := ApplyScanResult(s, nil); err == nil {
		t.Fatal("expected error for nil scan result")
	}
}

func TestAnswerQuestion_RecordsAnswer(t *testing.T) {
	s := followupState(t)

	s, err := s.AnswerQuestion("q1", "Never")
	if err != nil {
		t.Fatalf("AnswerQuestion failed: %v", err)
	}
	if s.Answers["q1"] != "Never" {
		t.Errorf("answer not recorded: %v", s.Answers)
	}
	if s.Phase != PhaseFollowup {
		t.Error("answering must not change phase")
	}
}

func TestAnswerQuestion_UnknownID(t *testing.T) {
	s := followupState(t)

	if _, err := s.AnswerQuestion("q999", "Never"); err == nil {
		t.Fatal("expected error for unknown question id")
	}
	if _, ok := s.Answers["q999"]; ok {
		t.Error("failed answer must not be recorded")
	}
}

func TestAnswerQuestion_InvalidOption(t *testing.T) {
	s := followupState(t)

	if _, err := s.AnswerQuestion("q1", "Constantly"); err == nil {
		t.Fatal("expected error for unlisted select option")
	}
}

func TestAnswerQuestion_DoesNotMutatePreviousState(t *testing.T) {
	s := followupState(t)

	next, err := s.AnswerQuestion("q1", "Never")
	if err != nil {
		t.Fatalf("AnswerQuestion failed: %v", err)
	}
	if len(s.Answers) != 0 {
		t.Error("previous state was mutated")
	}
	if next.Answers["q1"] != "Never" {
		t.Error("new state missing the answer")
	}
}

func TestApplyRecommendations_AdvancesToResults(t *testing.T) {
	s := followupState(t)

	products := []catalog.Product{{ID: "p1", Name: "Hydra Cream"}}
	s, err := ApplyRecommendations(s, products)
	if err != nil {
		t.Fatalf("ApplyRecommendations failed: %v", err)
	}
	if s.Phase != PhaseResults {
		t.Errorf("expected results phase, got %s", s.Phase)
	}
	if len(s.Products) != 1 {
		t.Error("products not recorded")
	}
}

func TestApplyRecommendations_EmptyListIsFine(t *testing.T) {
	s := followupState(t)

	s, err := ApplyRecommendations(s, nil)
	if err != nil {
		t.Fatalf("ApplyRecommendations failed: %v", err)
	}
	if s.Phase != PhaseResults {
		t.Error("empty recommendation list must still finish the flow")
	}
}

func TestNoBackwardTransitions(t *testing.T) {
	s := followupState(t)
	s, err := ApplyRecommendations(s, nil)
	if err != nil {
		t.Fatalf("ApplyRecommendations failed: %v", err)
	}

	if _, err := SubmitConcern(s, "again"); err == nil {
		t.Error("expected error re-entering start from results")
	}
	if _, err := ApplyScanResult(s, scanResult()); err == nil {
		t.Error("expected error re-entering scan from results")
	}
	if _, err := ApplyRecommendations(s, nil); err == nil {
		t.Error("expected error re-applying recommendations from results")
	}
}
