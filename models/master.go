// models/master.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Master is one row of master data: dealers, partners, insurance companies,
// products, vehicle models and so on, discriminated by Type.
type Master struct {
	ID     primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type   string             `json:"type" bson:"type"`
	SNo    int                `json:"sNo" bson:"sNo"`
	Name   string             `json:"name" bson:"name"`
	Mobile string             `json:"mobile,omitempty" bson:"mobile,omitempty"`
	Email  string             `json:"email,omitempty" bson:"email,omitempty"`
	Status string             `json:"status" bson:"status"` // "Active" or "Inactive"
	Date   string             `json:"date,omitempty" bson:"date,omitempty"`

	// Extra fields that differ per master type
	Meta map[string]interface{} `json:"meta,omitempty" bson:"meta,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// MasterRequest is the create/update payload for master records.
type MasterRequest struct {
	Type   string                 `json:"type" validate:"required"`
	Name   string                 `json:"name" validate:"required"`
	Mobile string                 `json:"mobile,omitempty"`
	Email  string                 `json:"email,omitempty"`
	Status string                 `json:"status,omitempty"`
	Meta   map[string]interface{} `json:"meta,omitempty"`
}
