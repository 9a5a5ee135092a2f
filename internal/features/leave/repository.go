package leave

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

var ErrLeaveNotFound = errors.New("leave request not found")

type LeaveRepository interface {
	Create(ctx context.Context, leave *models.Leave) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error)
	List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Leave, error)
	Update(ctx context.Context, leave *models.Leave) error
}

type LeaveRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewLeaveRepository(mongodb *database.MongodbDB) LeaveRepository {
	return &LeaveRepositoryImpl{
		Collection: mongodb.DB.Collection("leaves"),
	}
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, error) {
	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, errors.New("tenant not resolved in request context")
	}
	return primitive.ObjectIDFromHex(tenantID)
}

func (r *LeaveRepositoryImpl) Create(ctx context.Context, leave *models.Leave) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	leave.TenantID = tenant

	res, err := r.Collection.InsertOne(ctx, leave)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		leave.ID = oid
	}
	return nil
}

func (r *LeaveRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Leave, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var leave models.Leave
	err = r.Collection.FindOne(ctx, bson.M{"_id": id, "tenantId": tenant}).Decode(&leave)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrLeaveNotFound
	}
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *LeaveRepositoryImpl) List(ctx context.Context, filters map[string]interface{}, limit, offset int64) ([]models.Leave, error) {
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

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var leaves []models.Leave
	if err = cursor.All(ctx, &leaves); err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *LeaveRepositoryImpl) Update(ctx context.Context, leave *models.Leave) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": leave.ID, "tenantId": tenant}, leave)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrLeaveNotFound
	}
	return nil
}
