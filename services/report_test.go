package services

import (
	"context"
	"errors"
	"testing"

	"github.com/skandpro/insurcomm_backend/models"
)

func TestGenerateDealerReport(t *testing.T) {
	dealers := &fakeRuleStore{sets: []*models.RuleSet{
		storedSet("Sharma Motors", models.OwnerKindDealer, models.LineMotor, "2026-03-01",
			models.RuleItem{Company: "HDFC", Product: "GCV", Fuel: "All", Percent: 10}),
	}}
	policies := &fakePolicyStore{policies: []models.PolicyEntry{
		{
			PolicyNo:   "POL-001",
			DealerName: "Sharma Motors",
			InsCompany: "HDFC",
			Product:    "GCV",
			Fuel:       "Diesel",
			ODPremium:  1000,
			NetPremium: 900,
		},
		{
			PolicyNo:   "POL-002",
			DealerName: "Sharma Motors",
			InsCompany: "ICICI",
			ODPremium:  2000,
		},
		{
			PolicyNo:   "POL-003",
			DealerName: "Gupta Motors",
			InsCompany: "HDFC",
			ODPremium:  500,
		},
	}}
	svc := NewReportService(policies, newTestRuleService(dealers, nil, nil), nil)

	results, err := svc.GenerateDealerReport(context.Background(), models.ReportRequest{
		Line:    models.LineMotor,
		Dealers: []string{"Sharma Motors", "Gupta Motors"},
		ToDate:  "2026-04-01",
	})
	if err != nil {
		t.Fatalf("GenerateDealerReport() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("GenerateDealerReport() returned %d rows, want one per policy (3)", len(results))
	}

	byPolicy := map[string]models.CommissionResult{}
	for _, r := range results {
		byPolicy[r.PolicyNo] = r
	}

	matched := byPolicy["POL-001"]
	if matched.Status != models.StatusCalculated {
		t.Errorf("POL-001 status = %q, want %q", matched.Status, models.StatusCalculated)
	}
	if matched.Amount != 100 {
		t.Errorf("POL-001 amount = %v, want 100", matched.Amount)
	}
	if matched.CalcOn != models.BasisOD {
		t.Errorf("POL-001 calcOn = %q, want %q", matched.CalcOn, models.BasisOD)
	}
	if matched.OwnerName != "Sharma Motors" {
		t.Errorf("POL-001 ownerName = %q, want the policy's dealer", matched.OwnerName)
	}

	noMatch := byPolicy["POL-002"]
	if noMatch.Status != models.StatusNoRule {
		t.Errorf("POL-002 status = %q, want %q", noMatch.Status, models.StatusNoRule)
	}
	if noMatch.Amount != 0 || noMatch.CalcOn != models.BasisNA {
		t.Errorf("POL-002 row = %+v, want a zero NA row", noMatch)
	}

	// A dealer with no rule set at all still yields report rows.
	noRules := byPolicy["POL-003"]
	if noRules.Status != models.StatusNoRule {
		t.Errorf("POL-003 status = %q, want %q", noRules.Status, models.StatusNoRule)
	}
}

func TestGeneratePartnerReport(t *testing.T) {
	partners := &fakeRuleStore{sets: []*models.RuleSet{
		storedSet("Agrawal Insurance", models.OwnerKindPartner, models.LineMotor, "2026-03-01",
			models.RuleItem{Company: "HDFC", Percent: 5, OnNet: true}),
	}}
	policies := &fakePolicyStore{policies: []models.PolicyEntry{
		{
			PolicyNo:    "POL-010",
			PartnerName: "Agrawal Insurance",
			InsCompany:  "HDFC",
			NetPremium:  900,
			ODPremium:   1000,
		},
	}}
	svc := NewReportService(policies, newTestRuleService(nil, partners, nil), nil)

	results, err := svc.GeneratePartnerReport(context.Background(), models.ReportRequest{
		Line:    models.LineMotor,
		Partner: "Agrawal Insurance",
		ToDate:  "2026-04-01",
	})
	if err != nil {
		t.Fatalf("GeneratePartnerReport() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("GeneratePartnerReport() returned %d rows, want 1", len(results))
	}
	if results[0].Amount != 45 || results[0].CalcOn != models.BasisNet {
		t.Errorf("row = %+v, want 5%% of net premium", results[0])
	}
}

func TestGenerateReportValidation(t *testing.T) {
	svc := NewReportService(&fakePolicyStore{}, newTestRuleService(nil, nil, nil), nil)
	ctx := context.Background()

	if _, err := svc.GenerateDealerReport(ctx, models.ReportRequest{Line: "marine"}); !errors.Is(err, ErrValidation) {
		t.Errorf("GenerateDealerReport(unknown line) error = %v, want ErrValidation", err)
	}
	if _, err := svc.GeneratePartnerReport(ctx, models.ReportRequest{Line: models.LineMotor}); !errors.Is(err, ErrValidation) {
		t.Errorf("GeneratePartnerReport(no partner) error = %v, want ErrValidation", err)
	}
}

func TestGenerateReportStoreError(t *testing.T) {
	policies := &fakePolicyStore{err: errors.New("connection reset")}
	svc := NewReportService(policies, newTestRuleService(nil, nil, nil), nil)

	if _, err := svc.GenerateDealerReport(context.Background(), models.ReportRequest{Line: models.LineMotor}); err == nil {
		t.Error("GenerateDealerReport() error = nil, want the store error")
	}
}
