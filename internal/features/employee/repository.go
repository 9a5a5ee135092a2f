package employee

import (
	"context"
	"errors"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/database"
	"go-hrm/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrDuplicateEmployeeCode = errors.New("employee code already in use")
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp *models.Employee) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Employee, int64, error)
	Update(ctx context.Context, emp *models.Employee) error
	SetStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

type EmployeeRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewEmployeeRepository(mongodb *database.MongodbDB) EmployeeRepository {
	return &EmployeeRepositoryImpl{
		Collection: mongodb.DB.Collection("employees"),
	}
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, error) {
	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, errors.New("tenant not resolved in request context")
	}
	return primitive.ObjectIDFromHex(tenantID)
}

func (r *EmployeeRepositoryImpl) Create(ctx context.Context, emp *models.Employee) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	emp.TenantID = tenant

	count, err := r.Collection.CountDocuments(ctx, bson.M{"tenantId": tenant, "employeeCode": emp.EmployeeCode})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmployeeCode
	}

	res, err := r.Collection.InsertOne(ctx, emp)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		emp.ID = oid
	}
	return nil
}

func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var emp models.Employee
	err = r.Collection.FindOne(ctx, bson.M{"_id": id, "tenantId": tenant}).Decode(&emp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepositoryImpl) List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Employee, int64, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}

	query := bson.M{"tenantId": tenant}
	for k, v := range filters {
		if str, ok := v.(string); ok && str == "" {
			continue
		}
		query[k] = v
	}

	total, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	var employees []models.Employee
	if err = cursor.All(ctx, &employees); err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (r *EmployeeRepositoryImpl) Update(ctx context.Context, emp *models.Employee) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	count, err := r.Collection.CountDocuments(ctx, bson.M{
		"tenantId":     tenant,
		"employeeCode": emp.EmployeeCode,
		"_id":          bson.M{"$ne": emp.ID},
	})
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmployeeCode
	}

	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": emp.ID, "tenantId": tenant}, emp)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepositoryImpl) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	res, err := r.Collection.UpdateOne(ctx,
		bson.M{"_id": id, "tenantId": tenant},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrEmployeeNotFound
	}
	return nil
}
