// services/schema.go
package services

import (
	"strconv"
	"strings"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

// RTOBonus is the score a rule earns when its specific RTO code matches the
// policy's registration prefix. It sits above every field weight so an RTO
// match always outranks any combination of other matches.
const RTOBonus = 2000

// FieldWeight binds one scored criterion to its weight and to the accessors
// that read it from a rule and from a policy.
type FieldWeight struct {
	Name        string
	Weight      float64
	RuleValue   func(*models.RuleItem) string
	PolicyValue func(*models.PolicyEntry) string
}

// RangeField is a hard numeric gate: the policy value must fall inside the
// rule's parsed range or the rule is disqualified outright.
type RangeField struct {
	Name        string
	RuleRange   func(*models.RuleItem) string
	PolicyValue func(*models.PolicyEntry) float64
}

// RuleSchema parameterizes the generic rule engine for one product line.
// The four lines share one resolver/selector/propagator; only the field
// lists differ.
type RuleSchema struct {
	Line     string
	Fields   []FieldWeight
	Ranges   []RangeField
	MatchRTO bool
}

// Weight bands are deliberately non-overlapping: wildcards contribute 1 each,
// so no sum of lower-weight matches can ever outrank one additional match at
// the next band up. The weighted sum encodes a strict specificity order.
var motorSchema = RuleSchema{
	Line:     models.LineMotor,
	MatchRTO: true,
	Fields: []FieldWeight{
		{"company", 100, func(r *models.RuleItem) string { return r.Company }, func(p *models.PolicyEntry) string { return p.InsCompany }},
		{"coverage", 150, func(r *models.RuleItem) string { return r.Coverage }, func(p *models.PolicyEntry) string { return p.PolicyType }},
		{"vehicleModel", 200, func(r *models.RuleItem) string { return r.VehicleModel }, func(p *models.PolicyEntry) string { return p.VehicleName }},
		{"product", 500, func(r *models.RuleItem) string { return r.Product }, func(p *models.PolicyEntry) string { return p.Product }},
		{"fuel", 1000, func(r *models.RuleItem) string { return r.Fuel }, func(p *models.PolicyEntry) string { return p.Fuel }},
	},
	Ranges: []RangeField{
		{"cc", func(r *models.RuleItem) string { return r.CCRange }, func(p *models.PolicyEntry) float64 { return utils.NumericValue(p.CcKwGvw) }},
		{"ncb", func(r *models.RuleItem) string { return r.NCBRange }, func(p *models.PolicyEntry) float64 { return utils.NumericValue(p.NCB) }},
	},
}

var healthSchema = RuleSchema{
	Line: models.LineHealth,
	Fields: []FieldWeight{
		{"company", 100, func(r *models.RuleItem) string { return r.Company }, func(p *models.PolicyEntry) string { return p.InsCompany }},
		{"policyType", 150, func(r *models.RuleItem) string { return r.Coverage }, func(p *models.PolicyEntry) string { return p.PolicyType }},
		{"product", 500, func(r *models.RuleItem) string { return r.Product }, func(p *models.PolicyEntry) string { return p.Product }},
	},
	Ranges: []RangeField{
		{"sumAssured", func(r *models.RuleItem) string { return r.PremiumRange }, func(p *models.PolicyEntry) float64 { return p.SumAssured }},
	},
}

var lifeSchema = RuleSchema{
	Line: models.LineLife,
	Fields: []FieldWeight{
		{"company", 100, func(r *models.RuleItem) string { return r.Company }, func(p *models.PolicyEntry) string { return p.InsCompany }},
		{"termPpt", 150, func(r *models.RuleItem) string { return r.TermPpt }, func(p *models.PolicyEntry) string { return p.TermPpt }},
		{"planName", 500, func(r *models.RuleItem) string { return r.PlanName }, func(p *models.PolicyEntry) string { return p.PlanName }},
	},
}

var nonMotorSchema = RuleSchema{
	Line: models.LineNonMotor,
	Fields: []FieldWeight{
		{"company", 100, func(r *models.RuleItem) string { return r.Company }, func(p *models.PolicyEntry) string { return p.InsCompany }},
		{"policyType", 150, func(r *models.RuleItem) string { return r.Coverage }, func(p *models.PolicyEntry) string { return p.PolicyType }},
		{"product", 500, func(r *models.RuleItem) string { return r.Product }, func(p *models.PolicyEntry) string { return p.Product }},
	},
	Ranges: []RangeField{
		{"premium", func(r *models.RuleItem) string { return r.PremiumRange }, func(p *models.PolicyEntry) float64 { return p.Premium }},
	},
}

var schemasByLine = map[string]*RuleSchema{
	models.LineMotor:    &motorSchema,
	models.LineHealth:   &healthSchema,
	models.LineLife:     &lifeSchema,
	models.LineNonMotor: &nonMotorSchema,
}

// SchemaForLine returns the rule schema for a product line.
func SchemaForLine(line string) (*RuleSchema, bool) {
	s, ok := schemasByLine[utils.Normalize(line)]
	return s, ok
}

// CriteriaKey builds the canonical match key of a rule item: every schema
// field plus the range strings and boolean flags, with all "match anything"
// spellings collapsed to one sentinel. Two items with equal keys describe
// the same criterion and merge into one row.
func (s *RuleSchema) CriteriaKey(item *models.RuleItem) string {
	parts := make([]string, 0, len(s.Fields)+len(s.Ranges)+3)
	for _, f := range s.Fields {
		parts = append(parts, utils.CanonicalField(f.RuleValue(item)))
	}
	if s.MatchRTO {
		parts = append(parts, utils.CanonicalField(item.RTO))
	}
	for _, r := range s.Ranges {
		parts = append(parts, utils.CanonicalField(r.RuleRange(item)))
	}
	parts = append(parts, strconv.FormatBool(item.PA), strconv.FormatBool(item.WithoutAddon))
	return strings.Join(parts, "|")
}

// MergeKey scopes the criteria key to the dealer whose rule the item shadows,
// so two partners' copies of different dealers' otherwise-identical rules
// never collapse into each other.
func (s *RuleSchema) MergeKey(item *models.RuleItem) string {
	return utils.Normalize(item.DealerName) + "|" + s.CriteriaKey(item)
}
