package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrainingEnrollment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID       primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Employee       *PersonRef         `bson:"employee" json:"employee"`
	Title          string             `bson:"title" json:"title"`
	Category       string             `bson:"category" json:"category"`
	Status         string             `bson:"status" json:"status"` // ENROLLED, IN_PROGRESS, COMPLETED, DROPPED
	CompletionRate float64            `bson:"completionRate" json:"completionRate"`
	StartDate      time.Time          `bson:"startDate" json:"startDate"`
	EndDate        *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
