// utils/match.go
package utils

import (
	"math"
	"strconv"
	"strings"
)

// Normalize lowercases and trims a criterion value for comparison.
func Normalize(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// IsWildcard reports whether a rule value matches anything.
// Empty and "All" are equivalent.
func IsWildcard(v string) bool {
	n := Normalize(v)
	return n == "" || n == "all"
}

// ParseRange parses a numeric range expression like "0-100", "1500-Max",
// "All" or "0-2000%". Malformed input degrades to the open range (0, +Inf)
// instead of failing; a missing or "Max" upper bound means +Inf.
func ParseRange(s string) (min, max float64) {
	n := strings.ReplaceAll(Normalize(s), "%", "")
	if n == "" || n == "all" {
		return 0, math.Inf(1)
	}

	parts := strings.SplitN(n, "-", 2)
	min = ParseFloat(strings.TrimSpace(parts[0]))
	if len(parts) < 2 {
		return min, math.Inf(1)
	}
	// An upper bound that does not parse ("Max", "", garbage) means unbounded.
	// A malformed bound must never produce an empty range that disqualifies
	// every policy.
	upper, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return min, math.Inf(1)
	}
	return min, upper
}

// ScoreField scores one rule criterion against a policy value.
// Wildcard rules contribute 1, an exact (case-insensitive) match contributes
// the field's weight, and a mismatch returns -1 which disqualifies the rule.
func ScoreField(ruleVal, policyVal string, weight float64) float64 {
	if IsWildcard(ruleVal) {
		return 1
	}
	if Normalize(ruleVal) == Normalize(policyVal) {
		return weight
	}
	return -1
}

// NormalizeRTO reduces an RTO code to its lowercase alphanumeric characters,
// e.g. "DL-10" -> "dl10". The full value is kept: a rule holding a whole
// vehicle number instead of an RTO code must fail the prefix containment
// check, not silently match on its leading characters.
func NormalizeRTO(v string) string {
	var b strings.Builder
	for _, r := range Normalize(v) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RTOPrefix extracts the registration-office prefix of a vehicle number: the
// first four alphanumeric characters, e.g. "DL-10 AB 1234" -> "dl10".
func RTOPrefix(v string) string {
	s := NormalizeRTO(v)
	if len(s) > 4 {
		s = s[:4]
	}
	return s
}

// NumericValue extracts the numeric portion of a mixed value like "1498 CC"
// or "20%". Missing or non-numeric input yields 0.
func NumericValue(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return ParseFloat(b.String())
}

// CanonicalField maps the interchangeable "match anything" spellings of a
// criterion ("", "All", "0-Max", "null") to one sentinel so that match keys
// built from different clients compare equal.
func CanonicalField(v string) string {
	n := strings.ReplaceAll(Normalize(v), "%", "")
	if n == "" || n == "all" || n == "0-max" || n == "null" {
		return "*"
	}
	return n
}
