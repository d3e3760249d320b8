package services

import (
	"testing"

	"github.com/skandpro/insurcomm_backend/models"
)

func TestCompute(t *testing.T) {
	policy := &models.PolicyEntry{
		PolicyNo:   "POL-001",
		ODPremium:  1000,
		NetPremium: 900,
	}

	tests := []struct {
		name       string
		rule       *models.RuleItem
		wantAmount float64
		wantCalcOn string
		wantStatus string
	}{
		{
			name:       "percent on od premium",
			rule:       &models.RuleItem{Percent: 10},
			wantAmount: 100,
			wantCalcOn: models.BasisOD,
			wantStatus: models.StatusCalculated,
		},
		{
			name:       "percent on net premium",
			rule:       &models.RuleItem{Percent: 10, OnNet: true},
			wantAmount: 90,
			wantCalcOn: models.BasisNet,
			wantStatus: models.StatusCalculated,
		},
		{
			name:       "fixed amount on top of percent",
			rule:       &models.RuleItem{Percent: 5, Fixed: 25},
			wantAmount: 75,
			wantCalcOn: models.BasisOD,
			wantStatus: models.StatusCalculated,
		},
		{
			name:       "fixed only",
			rule:       &models.RuleItem{Fixed: 150},
			wantAmount: 150,
			wantCalcOn: models.BasisOD,
			wantStatus: models.StatusCalculated,
		},
		{
			name:       "no matching rule",
			rule:       nil,
			wantAmount: 0,
			wantCalcOn: models.BasisNA,
			wantStatus: models.StatusNoRule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.rule, policy)
			if got.Amount != tt.wantAmount {
				t.Errorf("Compute() amount = %v, want %v", got.Amount, tt.wantAmount)
			}
			if got.CalcOn != tt.wantCalcOn {
				t.Errorf("Compute() calcOn = %q, want %q", got.CalcOn, tt.wantCalcOn)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Compute() status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.PolicyNo != policy.PolicyNo {
				t.Errorf("Compute() policyNo = %q, want %q", got.PolicyNo, policy.PolicyNo)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"exact half rounds up", 0.125, 0.13},
		{"below half rounds down", 10.004, 10.00},
		{"above half rounds up", 10.006, 10.01},
		{"whole number unchanged", 100, 100},
		{"two decimals unchanged", 154.32, 154.32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := round2(tt.input); got != tt.want {
				t.Errorf("round2(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeRoundsAmount(t *testing.T) {
	// 333.35 * 15% = 50.0025, which settles to 50.00.
	policy := &models.PolicyEntry{ODPremium: 333.35}
	got := Compute(&models.RuleItem{Percent: 15}, policy)
	if got.Amount != 50.00 {
		t.Errorf("Compute() amount = %v, want 50.00", got.Amount)
	}
}

func TestComputeMissingPremiums(t *testing.T) {
	got := Compute(&models.RuleItem{Percent: 10, OnNet: true}, &models.PolicyEntry{})
	if got.Amount != 0 {
		t.Errorf("Compute() amount = %v, want 0 for missing premiums", got.Amount)
	}
	if got.Status != models.StatusCalculated {
		t.Errorf("Compute() status = %q, want %q", got.Status, models.StatusCalculated)
	}
}
