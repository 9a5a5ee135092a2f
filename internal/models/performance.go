package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Goal struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID  primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Employee  *PersonRef         `bson:"employee" json:"employee"`
	Title     string             `bson:"title" json:"title"`
	Status    string             `bson:"status" json:"status"` // NOT_STARTED, IN_PROGRESS, COMPLETED, CANCELLED
	Progress  float64            `bson:"progress" json:"progress"`
	Weight    float64            `bson:"weight" json:"weight"`
	DueDate   time.Time          `bson:"dueDate" json:"dueDate"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID      primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Employee      *PersonRef         `bson:"employee" json:"employee"`
	Reviewer      *PersonRef         `bson:"reviewer" json:"reviewer"`
	Period        string             `bson:"period" json:"period"` // e.g. "2026-H1"
	OverallRating float64            `bson:"overallRating" json:"overallRating"`
	Status        string             `bson:"status" json:"status"` // DRAFT, SUBMITTED, ACKNOWLEDGED
	SubmittedAt   *time.Time         `bson:"submittedAt,omitempty" json:"submittedAt,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
