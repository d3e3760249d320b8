// models/rule.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner kinds for commission rule sets
const (
	OwnerKindDealer  = "dealer"
	OwnerKindPartner = "partner"
)

// Product lines supported by the rule engine
const (
	LineMotor    = "motor"
	LineHealth   = "health"
	LineLife     = "life"
	LineNonMotor = "nonmotor"
)

// RuleItem is one matchable commission criterion plus its payout definition.
// It carries the superset of fields across all product lines; the line's
// schema decides which fields participate in matching.
type RuleItem struct {
	// Partner-owned items track which dealer's rule they shadow and the
	// dealer percent ceiling captured at entry time.
	DealerName    string  `json:"dealerName,omitempty" bson:"dealerName,omitempty"`
	DealerPercent float64 `json:"dealerPercent,omitempty" bson:"dealerPercent,omitempty"`

	Company      string `json:"company" bson:"company"`
	Product      string `json:"product" bson:"product"`
	Coverage     string `json:"coverage,omitempty" bson:"coverage,omitempty"`
	VehicleModel string `json:"vehicleModel,omitempty" bson:"vehicleModel,omitempty"`
	Fuel         string `json:"fuel,omitempty" bson:"fuel,omitempty"`
	RTO          string `json:"rto,omitempty" bson:"rto,omitempty"`

	// Life line fields
	PlanName string `json:"planName,omitempty" bson:"planName,omitempty"`
	TermPpt  string `json:"termPpt,omitempty" bson:"termPpt,omitempty"`

	PA           bool `json:"pa" bson:"pa"`
	WithoutAddon bool `json:"withoutAddon" bson:"withoutAddon"`

	// Range criteria, each "min-max" or "All"
	CCRange      string `json:"ccRange,omitempty" bson:"ccRange,omitempty"`
	NCBRange     string `json:"ncbRange,omitempty" bson:"ncbRange,omitempty"`
	PremiumRange string `json:"premiumRange,omitempty" bson:"premiumRange,omitempty"`

	// Payout
	OnNet   bool    `json:"onNet" bson:"onNet"`
	Percent float64 `json:"percent" bson:"percent"`
	Fixed   float64 `json:"fixed" bson:"fixed"`

	// One-shot command flag: consumed by the propagator, always persisted false.
	ApplyToAllPartners bool `json:"applyToAllPartners" bson:"applyToAllPartners"`
}

// RuleSet is the effective-dated rule document for one owner, one product line.
// At most one set exists per (ownerKey, line, effectiveDate).
type RuleSet struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OwnerKey      string             `json:"ownerKey" bson:"ownerKey"`
	OwnerName     string             `json:"ownerName" bson:"ownerName"`
	OwnerKind     string             `json:"ownerKind" bson:"ownerKind"`
	Line          string             `json:"line" bson:"line"`
	EffectiveDate time.Time          `json:"effectiveDate" bson:"effectiveDate"`
	Items         []RuleItem         `json:"items" bson:"items"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// SaveRulesRequest is the payload for dealer and partner rule saves.
type SaveRulesRequest struct {
	OwnerName string     `json:"ownerName" validate:"required"`
	Line      string     `json:"line" validate:"required"`
	Date      string     `json:"date" validate:"required"` // YYYY-MM-DD
	Items     []RuleItem `json:"items" validate:"required,min=1"`
}

// DeleteRulesRequest removes one owner's rule set for a specific day.
type DeleteRulesRequest struct {
	OwnerName string `json:"ownerName" validate:"required"`
	Line      string `json:"line" validate:"required"`
	Date      string `json:"date" validate:"required"`
}

// PartnerRuleView is one row of the merged dealer-rules-plus-partner-overrides
// view returned by the partner rules GET endpoint.
type PartnerRuleView struct {
	RuleItem `bson:",inline"`
	IsSaved  bool `json:"isSaved"`
}
