package report

import (
	"context"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/database"
	"go-hrm/internal/models"
	"go-hrm/pkg/reportquery"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher executes a compiled plan against a data source and returns the
// matching records, bounded by limit.
type Fetcher interface {
	Fetch(ctx context.Context, plan *reportquery.Plan, sortBy []reportquery.Sort, limit int64) ([]bson.M, error)
}

// MongoFetcher is the production adapter. Every query it issues is scoped to
// the caller's tenant; that scope is injected here, after compilation, so no
// caller-supplied filter can widen it.
type MongoFetcher struct {
	DB *mongo.Database
}

func NewMongoFetcher(db *database.MongodbDB) Fetcher {
	return &MongoFetcher{DB: db.DB}
}

func (f *MongoFetcher) Fetch(ctx context.Context, plan *reportquery.Plan, sortBy []reportquery.Sort, limit int64) ([]bson.M, error) {
	info, err := sourceFor(plan.Source)
	if err != nil {
		return nil, err
	}

	query, err := buildQuery(ctx, plan)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetLimit(limit).SetSort(sortDoc(sortBy))

	cursor, err := f.DB.Collection(info.Collection).Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []bson.M
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// buildQuery renders the plan's predicate tree and then layers on the two
// filters the caller can never opt out of: the tenant scope and, for employee
// reports without an explicit status condition, the active-staff default.
func buildQuery(ctx context.Context, plan *reportquery.Plan) (bson.M, error) {
	query, err := plan.Tree.ToBSON()
	if err != nil {
		return nil, err
	}

	tenantID, ok := ctx.Value(common_models.TenantIDKey).(string)
	if !ok || tenantID == "" {
		return nil, ErrTenantNotResolved
	}
	oid, err := primitive.ObjectIDFromHex(tenantID)
	if err != nil {
		return nil, ErrTenantNotResolved
	}
	query["tenantId"] = oid

	if plan.Source == reportquery.SourceEmployees && !plan.Tree.HasField("status") {
		query["status"] = models.EmployeeStatusActive
	}
	return query, nil
}

// sortDoc renders the sort spec, defaulting to reverse-creation order so
// unsorted results stay deterministic.
func sortDoc(sortBy []reportquery.Sort) bson.D {
	if len(sortBy) == 0 {
		return bson.D{{Key: "createdAt", Value: -1}}
	}
	doc := make(bson.D, 0, len(sortBy))
	for _, s := range sortBy {
		dir := 1
		if s.Desc {
			dir = -1
		}
		doc = append(doc, bson.E{Key: s.Field, Value: dir})
	}
	return doc
}
