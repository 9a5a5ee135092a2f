package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LeaveStatusPending   = "PENDING"
	LeaveStatusApproved  = "APPROVED"
	LeaveStatusRejected  = "REJECTED"
	LeaveStatusCancelled = "CANCELLED"
)

type Leave struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID     primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Employee     *PersonRef         `bson:"employee" json:"employee"`
	Type         string             `bson:"type" json:"type"`
	Status       string             `bson:"status" json:"status"`
	StartDate    time.Time          `bson:"startDate" json:"startDate"`
	EndDate      time.Time          `bson:"endDate" json:"endDate"`
	Days         float64            `bson:"days" json:"days"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
	DecidedBy    string             `bson:"decidedBy,omitempty" json:"decidedBy,omitempty"`
	DecidedAt    *time.Time         `bson:"decidedAt,omitempty" json:"decidedAt,omitempty"`
	DecisionNote string             `bson:"decisionNote,omitempty" json:"decisionNote,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
