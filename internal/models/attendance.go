package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AttendanceStatusPresent = "PRESENT"
	AttendanceStatusAbsent  = "ABSENT"
	AttendanceStatusLate    = "LATE"
	AttendanceStatusHalfDay = "HALF_DAY"
	AttendanceStatusOnLeave = "ON_LEAVE"
)

type Attendance struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TenantID      primitive.ObjectID `bson:"tenantId" json:"tenantId"`
	Employee      *PersonRef         `bson:"employee" json:"employee"`
	Date          time.Time          `bson:"date" json:"date"`
	Status        string             `bson:"status" json:"status"`
	CheckIn       *time.Time         `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckOut      *time.Time         `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	WorkHours     float64            `bson:"workHours" json:"workHours"`
	OvertimeHours float64            `bson:"overtimeHours" json:"overtimeHours"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}
