package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EmployeeStatusActive     = "ACTIVE"
	EmployeeStatusOnLeave    = "ON_LEAVE"
	EmployeeStatusTerminated = "TERMINATED"
)

type Employee struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID       primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	EmployeeCode   string             `bson:"employeeCode" json:"employeeCode"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Email          string             `bson:"email" json:"email"`
	Phone          string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status         string             `bson:"status" json:"status"`
	EmploymentType string             `bson:"employmentType" json:"employmentType"`
	JoinDate       time.Time          `bson:"joinDate" json:"joinDate"`
	Salary         float64            `bson:"salary" json:"salary"`
	Department     *DepartmentRef     `bson:"department,omitempty" json:"department,omitempty"`
	Designation    *DesignationRef    `bson:"designation,omitempty" json:"designation,omitempty"`
	Manager        *PersonRef         `bson:"manager,omitempty" json:"manager,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Ref returns the denormalized reference embedded into dependent documents.
func (e *Employee) Ref() *PersonRef {
	return &PersonRef{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Department: e.Department,
	}
}
