package report

import (
	"context"
	"errors"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TemplateRepository persists report templates. All operations are scoped to
// the tenant resolved from the request context.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *ReportTemplate) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*ReportTemplate, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]ReportTemplate, error)
	Update(ctx context.Context, tpl *ReportTemplate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	SetLastRun(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

type TemplateRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTemplateRepository(mongodb *database.MongodbDB) TemplateRepository {
	return &TemplateRepositoryImpl{
		Collection: mongodb.DB.Collection("report_templates"),
	}
}

func tenantFromContext(ctx context.Context) (primitive.ObjectID, error) {
	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return primitive.NilObjectID, ErrTenantNotResolved
	}
	oid, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return primitive.NilObjectID, ErrTenantNotResolved
	}
	return oid, nil
}

func (r *TemplateRepositoryImpl) Create(ctx context.Context, tpl *ReportTemplate) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	tpl.TenantID = tenant

	taken, err := r.nameTaken(ctx, tenant, tpl.Name, primitive.NilObjectID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateTemplateName
	}

	res, err := r.Collection.InsertOne(ctx, tpl)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		tpl.ID = oid
	}
	return nil
}

func (r *TemplateRepositoryImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*ReportTemplate, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var tpl ReportTemplate
	err = r.Collection.FindOne(ctx, bson.M{"_id": id, "tenantId": tenant}).Decode(&tpl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// List returns templates visible to userID: their own, public ones, and
// system-seeded ones.
func (r *TemplateRepositoryImpl) List(ctx context.Context, userID primitive.ObjectID) ([]ReportTemplate, error) {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := bson.M{
		"tenantId": tenant,
		"$or": []bson.M{
			{"createdBy": userID},
			{"isPublic": true},
			{"isSystem": true},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})

	cursor, err := r.Collection.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	var templates []ReportTemplate
	if err = cursor.All(ctx, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *TemplateRepositoryImpl) Update(ctx context.Context, tpl *ReportTemplate) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}

	taken, err := r.nameTaken(ctx, tenant, tpl.Name, tpl.ID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateTemplateName
	}

	update := bson.M{"$set": bson.M{
		"name":           tpl.Name,
		"description":    tpl.Description,
		"dataSource":     tpl.DataSource,
		"selectedFields": tpl.SelectedFields,
		"filters":        tpl.Filters,
		"sortBy":         tpl.SortBy,
		"aggregations":   tpl.Aggregations,
		"chartType":      tpl.ChartType,
		"chartConfig":    tpl.ChartConfig,
		"isPublic":       tpl.IsPublic,
		"updatedAt":      tpl.UpdatedAt,
	}}

	res, err := r.Collection.UpdateOne(ctx, bson.M{"_id": tpl.ID, "tenantId": tenant}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id, "tenantId": tenant})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *TemplateRepositoryImpl) SetLastRun(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	tenant, err := tenantFromContext(ctx)
	if err != nil {
		return err
	}
	_, err = r.Collection.UpdateOne(ctx,
		bson.M{"_id": id, "tenantId": tenant},
		bson.M{"$set": bson.M{"lastRunAt": at}},
	)
	return err
}

// nameTaken checks name uniqueness within a tenant, excluding exclude when a
// rename keeps the same document.
func (r *TemplateRepositoryImpl) nameTaken(ctx context.Context, tenant primitive.ObjectID, name string, exclude primitive.ObjectID) (bool, error) {
	query := bson.M{"tenantId": tenant, "name": name}
	if !exclude.IsZero() {
		query["_id"] = bson.M{"$ne": exclude}
	}
	count, err := r.Collection.CountDocuments(ctx, query)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
