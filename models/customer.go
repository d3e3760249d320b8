// models/customer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer model
type Customer struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	SNo       int                `json:"sNo" bson:"sNo"`
	Name      string             `json:"name" bson:"name"`
	Mobile    string             `json:"mobile" bson:"mobile"`
	Email     string             `json:"email,omitempty" bson:"email,omitempty"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
