package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payroll struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID    primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Employee    *PersonRef         `bson:"employee" json:"employee"`
	Month       int                `bson:"month" json:"month"`
	Year        int                `bson:"year" json:"year"`
	PaymentDate *time.Time         `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	BasicSalary float64            `bson:"basicSalary" json:"basicSalary"`
	Allowances  float64            `bson:"allowances" json:"allowances"`
	Deductions  float64            `bson:"deductions" json:"deductions"`
	NetSalary   float64            `bson:"netSalary" json:"netSalary"`
	Status      string             `bson:"status" json:"status"` // DRAFT, PROCESSED, PAID
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
