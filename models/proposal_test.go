package models

import "testing"

func TestProposalStatus_Valid(t *testing.T) {
	valid := []ProposalStatus{
		StatusDraft, StatusSubmitted, StatusAnalyzing, StatusQAPending,
		StatusQACompleted, StatusEvaluated, StatusAccepted, StatusRejected, StatusOnHold,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}

	for _, s := range []ProposalStatus{"", "unknown", "DRAFT"} {
		if s.Valid() {
			t.Errorf("expected %s to be invalid", s)
		}
	}
}

func TestProposalStatus_Transitions(t *testing.T) {
	cases := []struct {
		from    ProposalStatus
		to      ProposalStatus
		allowed bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusSubmitted, StatusAnalyzing, true},
		{StatusSubmitted, StatusEvaluated, true},
		{StatusAnalyzing, StatusQAPending, true},
		{StatusAnalyzing, StatusEvaluated, true},
		{StatusQAPending, StatusQACompleted, true},
		{StatusQACompleted, StatusEvaluated, true},
		{StatusEvaluated, StatusAccepted, true},
		{StatusEvaluated, StatusRejected, true},
		{StatusEvaluated, StatusOnHold, true},
		{StatusOnHold, StatusAccepted, true},
		{StatusOnHold, StatusRejected, true},

		// 逆行・飛び越し・決着後の変更はすべて不正
		{StatusSubmitted, StatusDraft, false},
		{StatusDraft, StatusAccepted, false},
		{StatusSubmitted, StatusAccepted, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusEvaluated, false},
		{StatusDraft, StatusDraft, false},
	}

	for _, c := range cases {
		if got := c.from.CanTransitionTo(c.to); got != c.allowed {
			t.Errorf("%s -> %s: got %v, want %v", c.from, c.to, got, c.allowed)
		}
	}
}

func TestProposalStatus_IsActive(t *testing.T) {
	active := []ProposalStatus{StatusSubmitted, StatusAnalyzing, StatusQAPending, StatusQACompleted, StatusEvaluated}
	for _, s := range active {
		if !s.IsActive() {
			t.Errorf("expected %s to be active", s)
		}
	}

	inactive := []ProposalStatus{StatusDraft, StatusAccepted, StatusRejected, StatusOnHold}
	for _, s := range inactive {
		if s.IsActive() {
			t.Errorf("expected %s to be inactive", s)
		}
	}
}
