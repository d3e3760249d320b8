// models/policy.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PolicyEntry is one issued insurance policy. Motor fields stay empty for
// health/life/nonmotor entries.
type PolicyEntry struct {
	ID            primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Line          string              `json:"line" bson:"line"`
	PolicyNo      string              `json:"policyNo" bson:"policyNo"`
	InsuranceYear string              `json:"insuranceYear" bson:"insuranceYear"`
	CustomerID    *primitive.ObjectID `json:"customerId,omitempty" bson:"customerId,omitempty"`
	CustomerName  string              `json:"customerName,omitempty" bson:"customerName,omitempty"`
	DealerName    string              `json:"dealerName,omitempty" bson:"dealerName,omitempty"`
	PartnerName   string              `json:"partnerName,omitempty" bson:"partnerName,omitempty"`

	InsCompany string `json:"insCompany" bson:"insCompany"`
	Product    string `json:"product" bson:"product"`
	PolicyType string `json:"policyType,omitempty" bson:"policyType,omitempty"` // coverage: Comprehensive/ThirdParty
	PlanName   string `json:"planName,omitempty" bson:"planName,omitempty"`
	TermPpt    string `json:"termPpt,omitempty" bson:"termPpt,omitempty"`

	// Vehicle details (motor)
	VehicleNo    string `json:"vehicleNo,omitempty" bson:"vehicleNo,omitempty"`
	VehicleName  string `json:"vehicleName,omitempty" bson:"vehicleName,omitempty"`
	VehicleClass string `json:"vehicleClass,omitempty" bson:"vehicleClass,omitempty"`
	Fuel         string `json:"fuel,omitempty" bson:"fuel,omitempty"`
	EngineNo     string `json:"engineNo,omitempty" bson:"engineNo,omitempty"`
	ChassisNo    string `json:"chassisNo,omitempty" bson:"chassisNo,omitempty"`
	CcKwGvw      string `json:"ccKwGvw,omitempty" bson:"ccKwGvw,omitempty"`
	NCB          string `json:"ncb,omitempty" bson:"ncb,omitempty"`

	// Finance
	IDV        float64 `json:"idv,omitempty" bson:"idv,omitempty"`
	Premium    float64 `json:"premium,omitempty" bson:"premium,omitempty"`
	ODPremium  float64 `json:"odPremium" bson:"odPremium"`
	NetPremium float64 `json:"netPremium" bson:"netPremium"`
	SumAssured float64 `json:"sumAssured,omitempty" bson:"sumAssured,omitempty"`

	PolicyIssueDate *time.Time `json:"policyIssueDate,omitempty" bson:"policyIssueDate,omitempty"`
	OdStartDate     *time.Time `json:"odStartDate,omitempty" bson:"odStartDate,omitempty"`
	OdEndDate       *time.Time `json:"odEndDate,omitempty" bson:"odEndDate,omitempty"`
	TpStartDate     *time.Time `json:"tpStartDate,omitempty" bson:"tpStartDate,omitempty"`
	TpEndDate       *time.Time `json:"tpEndDate,omitempty" bson:"tpEndDate,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// SavePolicyRequest carries a policy entry plus inline new-customer details.
type SavePolicyRequest struct {
	PolicyEntry
	CustomerMobile string `json:"customerMobile,omitempty"`
	CustomerEmail  string `json:"customerEmail,omitempty"`
	Address        string `json:"address,omitempty"`
}
