package attendance

import (
	"context"
	"errors"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/database"
	"go-hrm/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrAttendanceNotFound = errors.New("attendance record not found")

type AttendanceRepository interface {
	Create(ctx context.Context, att *models.Attendance) error
	GetByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, day time.Time) (*models.Attendance, error)
	List(ctx context.Context, filters map[string]interface{}, from, to *time.Time, limit, offset int64) ([]models.Attendance, error)
	Update(ctx context.Context, att *models.Attendance) error
}

type AttendanceRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewAttendanceRepository(mongodb *database.MongodbDB) AttendanceRepository {
	return &AttendanceRepositoryImpl{
		Collection: mongodb.DB.Collection("attendance"),
	}
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, error) {
	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, errors.New("tenant not resolved in request context")
	}
	return primitive.ObjectIDFromHex(tenantID)
}

func (r *AttendanceRepositoryImpl) Create(ctx context.Context, att *models.Attendance) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	att.TenantID = tenant

	res, err := r.Collection.InsertOne(ctx, att)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		att.ID = oid
	}
	return nil
}

// GetByEmployeeAndDate finds the record covering the calendar day of the
// given instant.
func (r *AttendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID primitive.ObjectID, day time.Time) (*models.Attendance, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	var att models.Attendance
	err = r.Collection.FindOne(ctx, bson.M{
		"tenantId":    tenant,
		"employee.id": employeeID,
		"date":        bson.M{"$gte": start, "$lt": end},
	}).Decode(&att)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAttendanceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *AttendanceRepositoryImpl) List(ctx context.Context, filters map[string]interface{}, from, to *time.Time, limit, offset int64) ([]models.Attendance, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := bson.M{"tenantId": tenant}
	for k, v := range filters {
		if str, ok := v.(string); ok && str == "" {
			continue
		}
		query[k] = v
	}
	if from != nil || to != nil {
		dateRange := bson.M{}
		if from != nil {
			dateRange["$gte"] = *from
		}
		if to != nil {
			dateRange["$lte"] = *to
		}
		query["date"] = dateRange
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var records []models.Attendance
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *AttendanceRepositoryImpl) Update(ctx context.Context, att *models.Attendance) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": att.ID, "tenantId": tenant}, att)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrAttendanceNotFound
	}
	return nil
}
