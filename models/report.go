// models/report.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Commission result statuses
const (
	StatusCalculated = "Calculated"
	StatusNoRule     = "No Rule"
)

// Calculation bases
const (
	BasisOD  = "OD"
	BasisNet = "NET"
	BasisNA  = "NA"
)

// CommissionResult is one report row: a policy plus the commission the
// matched rule yields for it. Status is "No Rule" when nothing matched.
type CommissionResult struct {
	PolicyID     primitive.ObjectID `json:"id"`
	PolicyDate   *time.Time         `json:"policyDate,omitempty"`
	EntryDate    time.Time          `json:"entryDate"`
	OwnerName    string             `json:"ownerName"`
	PolicyNo     string             `json:"policyNo"`
	VehicleNo    string             `json:"vehicleNo,omitempty"`
	CustomerName string             `json:"customerName"`
	Product      string             `json:"product"`
	InsCompany   string             `json:"insCompany"`
	VehicleName  string             `json:"vehicleName,omitempty"`
	Fuel         string             `json:"fuel,omitempty"`
	Premium      float64            `json:"premium,omitempty"`
	NetPremium   float64            `json:"netPremium"`
	ODPremium    float64            `json:"odPremium"`
	CalcOn       string             `json:"calcOn"`
	Percent      float64            `json:"commPercent"`
	Fixed        float64            `json:"fixed"`
	Amount       float64            `json:"commAmt"`
	Status       string             `json:"status"`
}

// RenewalsRequest filters the upcoming-renewals listing: policies whose cover
// ends inside the date window, optionally scoped to one dealer, partner or
// insurance company.
type RenewalsRequest struct {
	Line     string `json:"line" query:"line"`
	Dealer   string `json:"dealer,omitempty" query:"dealer"`
	Partner  string `json:"partner,omitempty" query:"partner"`
	Company  string `json:"company,omitempty" query:"company"`
	FromDate string `json:"fromDate,omitempty" query:"fromDate"` // YYYY-MM-DD
	ToDate   string `json:"toDate,omitempty" query:"toDate"`
}

// ReportRequest filters a commission report run. Exactly one of Dealers or
// Partner scopes the run; Line selects the engine schema.
type ReportRequest struct {
	Line           string   `json:"line" validate:"required"`
	Dealers        []string `json:"dealers,omitempty"`
	Partner        string   `json:"partner,omitempty"`
	Companies      []string `json:"companies,omitempty"`
	FromDate       string   `json:"fromDate,omitempty"` // YYYY-MM-DD
	ToDate         string   `json:"toDate,omitempty"`
	Search         string   `json:"search,omitempty"`
	DateFilterType string   `json:"dateFilterType,omitempty"` // policyDate (default) or entryDate
}
