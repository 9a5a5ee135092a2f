package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobApplication is one candidate in the recruitment pipeline.
type JobApplication struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID       primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	CandidateName  string             `bson:"candidateName" json:"candidateName"`
	Email          string             `bson:"email" json:"email"`
	Stage          string             `bson:"stage" json:"stage"` // APPLIED, SCREENING, INTERVIEW, OFFER, HIRED, REJECTED
	AppliedAt      time.Time          `bson:"appliedAt" json:"appliedAt"`
	ExpectedSalary float64            `bson:"expectedSalary" json:"expectedSalary"`
	Rating         float64            `bson:"rating" json:"rating"`
	Job            *JobRef            `bson:"job,omitempty" json:"job,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
