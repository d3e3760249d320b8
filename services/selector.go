// services/selector.go
package services

import (
	"strings"

	"github.com/skandpro/insurcomm_backend/models"
	"github.com/skandpro/insurcomm_backend/utils"
)

// scoreRule scores one rule against a policy under a schema. The second
// return is false when the rule is disqualified: a policy value outside a
// range gate, a failed specific-RTO check, or any hard field mismatch.
func scoreRule(rule *models.RuleItem, policy *models.PolicyEntry, schema *RuleSchema) (float64, bool) {
	for _, rng := range schema.Ranges {
		min, max := utils.ParseRange(rng.RuleRange(rule))
		v := rng.PolicyValue(policy)
		if v < min || v > max {
			return 0, false
		}
	}

	total := 0.0
	if schema.MatchRTO {
		rRTO := utils.NormalizeRTO(rule.RTO)
		if rRTO != "" && rRTO != "all" {
			if !strings.Contains(utils.RTOPrefix(policy.VehicleNo), rRTO) {
				return 0, false
			}
			total += RTOBonus
		} else {
			total++
		}
	}

	for _, f := range schema.Fields {
		s := utils.ScoreField(f.RuleValue(rule), f.PolicyValue(policy), f.Weight)
		if s < 0 {
			return 0, false
		}
		total += s
	}
	return total, true
}

// SelectBestRule filters disqualified candidates, scores the survivors and
// returns the highest-scoring one, or nil when nothing survives. Ties go to
// the earliest candidate in input order: the loop only replaces the current
// best on a strictly greater score, which keeps the pick deterministic for a
// given stored item order.
func SelectBestRule(items []models.RuleItem, policy *models.PolicyEntry, schema *RuleSchema) *models.RuleItem {
	bestIdx := -1
	bestScore := 0.0

	for i := range items {
		score, ok := scoreRule(&items[i], policy, schema)
		if !ok {
			continue
		}
		if bestIdx == -1 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestIdx == -1 {
		return nil
	}
	return &items[bestIdx]
}
