package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Expense struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID     primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Employee     *PersonRef         `bson:"employee" json:"employee"`
	Title        string             `bson:"title" json:"title"`
	Category     string             `bson:"category" json:"category"` // TRAVEL, MEALS, SUPPLIES, EQUIPMENT, OTHER
	Amount       float64            `bson:"amount" json:"amount"`
	Status       string             `bson:"status" json:"status"` // SUBMITTED, APPROVED, REJECTED, REIMBURSED
	ExpenseDate  time.Time          `bson:"expenseDate" json:"expenseDate"`
	Reimbursable bool               `bson:"reimbursable" json:"reimbursable"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
