package services

import (
	"context"
	"testing"

	"github.com/skandpro/insurcomm_backend/models"
)

func TestResolverResolve(t *testing.T) {
	store := &fakeRuleStore{sets: []*models.RuleSet{
		storedSet("Sharma Motors", models.OwnerKindDealer, models.LineMotor, "2026-01-01",
			models.RuleItem{Company: "HDFC", Percent: 10}),
		storedSet("Sharma Motors", models.OwnerKindDealer, models.LineMotor, "2026-03-01",
			models.RuleItem{Company: "HDFC", Percent: 12}),
		storedSet("Sharma Motors", models.OwnerKindDealer, models.LineHealth, "2026-02-01",
			models.RuleItem{Company: "Star Health", Percent: 8}),
	}}
	resolver := NewResolver(store)

	tests := []struct {
		name        string
		owner       string
		line        string
		asOf        string
		wantPercent float64
		wantNil     bool
	}{
		{"exact date preferred", "Sharma Motors", models.LineMotor, "2026-03-01", 12, false},
		{"falls back to latest on or before", "Sharma Motors", models.LineMotor, "2026-02-15", 10, false},
		{"later as-of picks later set", "Sharma Motors", models.LineMotor, "2026-06-01", 12, false},
		{"owner name is case insensitive", "  SHARMA MOTORS ", models.LineMotor, "2026-06-01", 12, false},
		{"lines are independent", "Sharma Motors", models.LineHealth, "2026-06-01", 8, false},
		{"nothing before as-of", "Sharma Motors", models.LineMotor, "2025-12-31", 0, true},
		{"unknown owner", "Gupta Motors", models.LineMotor, "2026-06-01", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := resolver.Resolve(context.Background(), tt.owner, tt.line, day(tt.asOf))
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if tt.wantNil {
				if set != nil {
					t.Fatalf("Resolve() = %+v, want nil", set)
				}
				return
			}
			if set == nil {
				t.Fatal("Resolve() = nil, want a set")
			}
			if set.Items[0].Percent != tt.wantPercent {
				t.Errorf("Resolve() percent = %v, want %v", set.Items[0].Percent, tt.wantPercent)
			}
		})
	}
}

func TestResolverLatest(t *testing.T) {
	store := &fakeRuleStore{sets: []*models.RuleSet{
		storedSet("Sharma Motors", models.OwnerKindDealer, models.LineMotor, "2026-01-01",
			models.RuleItem{Percent: 10}),
		storedSet("Sharma Motors", models.OwnerKindDealer, models.LineMotor, "2026-03-01",
			models.RuleItem{Percent: 12}),
	}}
	resolver := NewResolver(store)

	set, err := resolver.Latest(context.Background(), "Sharma Motors", models.LineMotor)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if set == nil || set.Items[0].Percent != 12 {
		t.Fatalf("Latest() = %+v, want the 2026-03-01 set", set)
	}

	set, err = resolver.Latest(context.Background(), "Nobody", models.LineMotor)
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if set != nil {
		t.Errorf("Latest() = %+v, want nil for unknown owner", set)
	}
}
