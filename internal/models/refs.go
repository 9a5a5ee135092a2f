package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Denormalized reference subdocuments. Relations are embedded at write time
// so reports can traverse them with plain dot paths; the owning services are
// responsible for keeping the copies current.

type DepartmentRef struct {
	ID   primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}

type DesignationRef struct {
	ID   primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	Name string             `bson:"name" json:"name"`
}

// PersonRef points at an employee (or reviewer/manager) with enough
// denormalized detail for report projection.
type PersonRef struct {
	ID         primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	FirstName  string             `bson:"firstName" json:"firstName"`
	LastName   string             `bson:"lastName" json:"lastName"`
	Department *DepartmentRef     `bson:"department,omitempty" json:"department,omitempty"`
}

type JobRef struct {
	ID         primitive.ObjectID `bson:"id,omitempty" json:"id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Department *DepartmentRef     `bson:"department,omitempty" json:"department,omitempty"`
}
