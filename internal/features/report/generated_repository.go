package report

import (
	"context"
	"errors"
	"time"

	"go-hrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GeneratedRepository persists materialized report runs.
type GeneratedRepository interface {
	Insert(ctx context.Context, report *GeneratedReport) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*GeneratedReport, error)
	List(ctx context.Context, templateID primitive.ObjectID, limit, offset int64) ([]GeneratedReport, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type GeneratedRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewGeneratedRepository(mongodb *database.MongodbDB) GeneratedRepository {
	return &GeneratedRepositoryImpl{
		Collection: mongodb.DB.Collection("generated_reports"),
	}
}

func (r *GeneratedRepositoryImpl) Insert(ctx context.Context, report *GeneratedReport) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	report.TenantID = tenant

	res, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		report.ID = oid
	}
	return nil
}

func (r *GeneratedRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*GeneratedReport, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var report GeneratedReport
	err = r.Collection.FindOne(ctx, bson.M{"_id": id, "tenantId": tenant}).Decode(&report)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrGeneratedReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// List returns run history newest first. A zero templateID lists runs across
// all templates of the tenant. Row data is projected out; history listings
// only need the run metadata.
func (r *GeneratedRepositoryImpl) List(ctx context.Context, templateID primitive.ObjectID, limit, offset int64) ([]GeneratedReport, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := bson.M{"tenantId": tenant}
	if !templateID.IsZero() {
		query["templateId"] = templateID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "generatedAt", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset).
		SetProjection(bson.M{"data": 0})

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var reports []GeneratedReport
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *GeneratedRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id, "tenantId": tenant})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrGeneratedReportNotFound
	}
	return nil
}

// DeleteExpired removes runs past their retention window. It is called by
// the housekeeping job, not a request, so it is deliberately tenant-wide.
func (r *GeneratedRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.Collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": now}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
