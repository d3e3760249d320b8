package services

import (
	"testing"

	"github.com/skandpro/insurcomm_backend/models"
)

func TestSchemaForLine(t *testing.T) {
	tests := []struct {
		line string
		ok   bool
	}{
		{models.LineMotor, true},
		{models.LineHealth, true},
		{models.LineLife, true},
		{models.LineNonMotor, true},
		{"Motor", true},
		{" MOTOR ", true},
		{"marine", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if _, ok := SchemaForLine(tt.line); ok != tt.ok {
				t.Errorf("SchemaForLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
		})
	}
}

func TestCriteriaKeyCanonicalization(t *testing.T) {
	schema, _ := SchemaForLine(models.LineMotor)

	// The wildcard spellings clients use interchangeably must produce the
	// same key, or re-entered rows would duplicate instead of merging.
	a := models.RuleItem{Company: "HDFC", Fuel: "", CCRange: "", NCBRange: ""}
	b := models.RuleItem{Company: "hdfc ", Fuel: "All", CCRange: "0-Max", NCBRange: "all"}
	if schema.CriteriaKey(&a) != schema.CriteriaKey(&b) {
		t.Errorf("equivalent criteria produced different keys:\n%q\n%q", schema.CriteriaKey(&a), schema.CriteriaKey(&b))
	}

	c := models.RuleItem{Company: "HDFC", Fuel: "Diesel"}
	if schema.CriteriaKey(&a) == schema.CriteriaKey(&c) {
		t.Error("distinct criteria produced the same key")
	}

	d := models.RuleItem{Company: "HDFC", PA: true}
	if schema.CriteriaKey(&a) == schema.CriteriaKey(&d) {
		t.Error("PA flag not part of the key")
	}
}

func TestMergeKeyScopesByDealer(t *testing.T) {
	schema, _ := SchemaForLine(models.LineMotor)

	a := models.RuleItem{DealerName: "Sharma Motors", Company: "HDFC"}
	b := models.RuleItem{DealerName: "Gupta Motors", Company: "HDFC"}
	if schema.MergeKey(&a) == schema.MergeKey(&b) {
		t.Error("items shadowing different dealers merged into one key")
	}

	c := models.RuleItem{DealerName: " sharma motors ", Company: "HDFC"}
	if schema.MergeKey(&a) != schema.MergeKey(&c) {
		t.Error("dealer name casing changed the merge key")
	}
}
