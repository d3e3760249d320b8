// services/calculator.go
package services

import (
	"math"

	"github.com/skandpro/insurcomm_backend/models"
)

// round2 rounds half-up to two decimals.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// Compute turns a matched rule and a policy's premiums into one report row.
// A nil rule yields a well-formed "No Rule" row with a zero amount; the
// calculation itself never fails. Missing premium values count as zero.
func Compute(matched *models.RuleItem, policy *models.PolicyEntry) models.CommissionResult {
	result := models.CommissionResult{
		PolicyID:     policy.ID,
		PolicyDate:   policy.OdStartDate,
		EntryDate:    policy.CreatedAt,
		PolicyNo:     policy.PolicyNo,
		VehicleNo:    policy.VehicleNo,
		CustomerName: policy.CustomerName,
		Product:      policy.Product,
		InsCompany:   policy.InsCompany,
		VehicleName:  policy.VehicleName,
		Fuel:         policy.Fuel,
		Premium:      policy.Premium,
		NetPremium:   policy.NetPremium,
		ODPremium:    policy.ODPremium,
		CalcOn:       models.BasisNA,
		Status:       models.StatusNoRule,
	}

	if matched == nil {
		return result
	}

	base := policy.ODPremium
	result.CalcOn = models.BasisOD
	if matched.OnNet {
		base = policy.NetPremium
		result.CalcOn = models.BasisNet
	}

	result.Percent = matched.Percent
	result.Fixed = matched.Fixed
	result.Amount = round2(base*matched.Percent/100 + matched.Fixed)
	result.Status = models.StatusCalculated
	return result
}
