package services

import (
	"testing"

	"github.com/skandpro/insurcomm_backend/models"
)

func motorPolicy() *models.PolicyEntry {
	return &models.PolicyEntry{
		InsCompany:  "HDFC",
		Product:     "GCV",
		PolicyType:  "Comprehensive",
		VehicleName: "Tata Ace",
		Fuel:        "Diesel",
		VehicleNo:   "DL10AB1234",
		CcKwGvw:     "1498 CC",
		NCB:         "20%",
		ODPremium:   1000,
		NetPremium:  900,
	}
}

func TestScoreRule(t *testing.T) {
	schema, _ := SchemaForLine(models.LineMotor)
	policy := motorPolicy()

	tests := []struct {
		name      string
		rule      models.RuleItem
		wantScore float64
		wantOK    bool
	}{
		{
			name:      "company and product match with wildcard fuel",
			rule:      models.RuleItem{Company: "HDFC", Product: "GCV", Fuel: "All"},
			wantScore: 100 + 1 + 1 + 500 + 1 + 1,
			wantOK:    true,
		},
		{
			name:      "all wildcards",
			rule:      models.RuleItem{},
			wantScore: 6,
			wantOK:    true,
		},
		{
			name:   "company mismatch disqualifies",
			rule:   models.RuleItem{Company: "ICICI"},
			wantOK: false,
		},
		{
			name:      "specific fuel outweighs product",
			rule:      models.RuleItem{Fuel: "Diesel"},
			wantScore: 1 + 1 + 1 + 1 + 1000 + 1,
			wantOK:    true,
		},
		{
			name:      "specific rto earns the bonus",
			rule:      models.RuleItem{RTO: "DL10"},
			wantScore: 1 + 1 + 1 + 1 + 1 + RTOBonus,
			wantOK:    true,
		},
		{
			name:   "wrong rto disqualifies",
			rule:   models.RuleItem{RTO: "MH12"},
			wantOK: false,
		},
		{
			name:   "cc below range disqualifies",
			rule:   models.RuleItem{CCRange: "1500-Max"},
			wantOK: false,
		},
		{
			name:   "cc above range disqualifies",
			rule:   models.RuleItem{CCRange: "0-1200"},
			wantOK: false,
		},
		{
			name:      "cc inside range passes",
			rule:      models.RuleItem{CCRange: "0-1500"},
			wantScore: 6,
			wantOK:    true,
		},
		{
			name:   "ncb outside range disqualifies",
			rule:   models.RuleItem{NCBRange: "25-50"},
			wantOK: false,
		},
		{
			name:      "wildcard ranges are open",
			rule:      models.RuleItem{CCRange: "0-Max", NCBRange: "All"},
			wantScore: 6,
			wantOK:    true,
		},
		{
			name:      "malformed upper bound leaves the range open",
			rule:      models.RuleItem{CCRange: "1000-abc"},
			wantScore: 6,
			wantOK:    true,
		},
		{
			name:   "full vehicle number in the rto field disqualifies",
			rule:   models.RuleItem{RTO: "DL10AB1234"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := scoreRule(&tt.rule, policy, schema)
			if ok != tt.wantOK {
				t.Fatalf("scoreRule() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && score != tt.wantScore {
				t.Errorf("scoreRule() score = %v, want %v", score, tt.wantScore)
			}
		})
	}
}

func TestSelectBestRule(t *testing.T) {
	schema, _ := SchemaForLine(models.LineMotor)
	policy := motorPolicy()

	t.Run("more specific rule wins", func(t *testing.T) {
		items := []models.RuleItem{
			{Company: "HDFC", Percent: 5},
			{Company: "HDFC", Fuel: "Diesel", Percent: 8},
		}
		got := SelectBestRule(items, policy, schema)
		if got == nil {
			t.Fatal("SelectBestRule() = nil, want a match")
		}
		if got.Percent != 8 {
			t.Errorf("SelectBestRule() picked percent %v, want 8", got.Percent)
		}
	})

	t.Run("specific rto outranks every field combination", func(t *testing.T) {
		items := []models.RuleItem{
			{Company: "HDFC", Product: "GCV", Fuel: "Diesel", Percent: 5},
			{RTO: "DL10", Percent: 9},
		}
		got := SelectBestRule(items, policy, schema)
		if got == nil || got.Percent != 9 {
			t.Fatalf("SelectBestRule() = %+v, want the RTO rule", got)
		}
	})

	t.Run("disqualified rules never win", func(t *testing.T) {
		items := []models.RuleItem{
			{Company: "ICICI", Product: "GCV", Fuel: "Diesel", Percent: 20},
			{Percent: 3},
		}
		got := SelectBestRule(items, policy, schema)
		if got == nil || got.Percent != 3 {
			t.Fatalf("SelectBestRule() = %+v, want the wildcard rule", got)
		}
	})

	t.Run("nothing survives", func(t *testing.T) {
		items := []models.RuleItem{
			{Company: "ICICI"},
			{CCRange: "2000-Max"},
		}
		if got := SelectBestRule(items, policy, schema); got != nil {
			t.Errorf("SelectBestRule() = %+v, want nil", got)
		}
	})

	t.Run("empty candidate list", func(t *testing.T) {
		if got := SelectBestRule(nil, policy, schema); got != nil {
			t.Errorf("SelectBestRule(nil) = %+v, want nil", got)
		}
	})

	t.Run("ties go to input order", func(t *testing.T) {
		items := []models.RuleItem{
			{Company: "HDFC", Percent: 4},
			{Company: "HDFC", Percent: 7},
		}
		got := SelectBestRule(items, policy, schema)
		if got == nil || got.Percent != 4 {
			t.Fatalf("SelectBestRule() picked %+v, want the first of the tied rules", got)
		}
		// Same candidates, same order, same pick.
		again := SelectBestRule(items, policy, schema)
		if again == nil || again.Percent != got.Percent {
			t.Errorf("SelectBestRule() is not deterministic: %+v then %+v", got, again)
		}
	})
}

func TestSelectBestRuleHealthLine(t *testing.T) {
	schema, _ := SchemaForLine(models.LineHealth)
	policy := &models.PolicyEntry{
		InsCompany: "Star Health",
		PolicyType: "Family Floater",
		Product:    "Optima",
		SumAssured: 500000,
	}

	items := []models.RuleItem{
		{Company: "Star Health", PremiumRange: "0-300000", Percent: 10},
		{Company: "Star Health", PremiumRange: "300001-Max", Percent: 12},
	}
	got := SelectBestRule(items, policy, schema)
	if got == nil || got.Percent != 12 {
		t.Fatalf("SelectBestRule() = %+v, want the high sum-assured slab", got)
	}
}
