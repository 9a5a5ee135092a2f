package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Asset struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID     primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Name         string             `bson:"name" json:"name"`
	Type         string             `bson:"type" json:"type"` // LAPTOP, MONITOR, PHONE, FURNITURE, SOFTWARE, OTHER
	SerialNumber string             `bson:"serialNumber" json:"serialNumber"`
	Status       string             `bson:"status" json:"status"` // AVAILABLE, ASSIGNED, IN_REPAIR, RETIRED
	PurchaseDate time.Time          `bson:"purchaseDate" json:"purchaseDate"`
	PurchaseCost float64            `bson:"purchaseCost" json:"purchaseCost"`
	AssignedTo   *PersonRef         `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
