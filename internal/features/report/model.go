package report

import (
	"time"

	"go-hrm/pkg/reportquery"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Row caps. Hard ceilings, not configuration: they bound latency and memory,
// not correctness.
const (
	PreviewRowLimit = 10
	RunRowLimit     = 1000
)

// GeneratedReportTTL is how long a materialized run is kept before the
// housekeeping purge may remove it.
const GeneratedReportTTL = 30 * 24 * time.Hour

// Aggregation is one summary requested by a template.
type Aggregation struct {
	Field string                      `json:"field" bson:"field"`
	Type  reportquery.AggregationType `json:"type" bson:"type"`
	Label string                      `json:"label,omitempty" bson:"label,omitempty"`
}

// AggregationResult is one computed summary value of a run.
type AggregationResult struct {
	Field string                      `json:"field" bson:"field"`
	Type  reportquery.AggregationType `json:"type" bson:"type"`
	Label string                      `json:"label,omitempty" bson:"label,omitempty"`
	Value float64                     `json:"value" bson:"value"`
}

// ReportTemplate is a saved, reusable report definition.
type ReportTemplate struct {
	ID             primitive.ObjectID      `json:"id" bson:"_id,omitempty"`
	TenantID       primitive.ObjectID      `json:"tenantId" bson:"tenantId"`
	Name           string                  `json:"name" bson:"name"`
	Description    string                  `json:"description,omitempty" bson:"description,omitempty"`
	DataSource     reportquery.DataSource  `json:"dataSource" bson:"dataSource"`
	SelectedFields []string                `json:"selectedFields" bson:"selectedFields"`
	Filters        []reportquery.Filter    `json:"filters,omitempty" bson:"filters,omitempty"`
	SortBy         []reportquery.Sort      `json:"sortBy,omitempty" bson:"sortBy,omitempty"`
	Aggregations   []Aggregation           `json:"aggregations,omitempty" bson:"aggregations,omitempty"`
	ChartType      string                  `json:"chartType,omitempty" bson:"chartType,omitempty"` // bar, line, pie, table
	ChartConfig    map[string]any          `json:"chartConfig,omitempty" bson:"chartConfig,omitempty"`
	IsPublic       bool                    `json:"isPublic" bson:"isPublic"`
	IsSystem       bool                    `json:"isSystem" bson:"isSystem"`
	CreatedBy      primitive.ObjectID      `json:"createdBy" bson:"createdBy"`
	LastRunAt      *time.Time              `json:"lastRunAt,omitempty" bson:"lastRunAt,omitempty"`
	CreatedAt      time.Time               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt" bson:"updatedAt"`
}

// RunParameters are the runtime overrides accepted by a template run.
// Currently a date-range override merged onto the source's primary date
// field; unknown keys in the request body are ignored.
type RunParameters struct {
	StartDate string `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty" bson:"endDate,omitempty"`
}

// GeneratedReport is a persisted, immutable point-in-time run of a template.
// Field metadata is kept only as the field-id list; descriptors are
// re-resolved from the registry when needed.
type GeneratedReport struct {
	ID           primitive.ObjectID     `json:"id" bson:"_id,omitempty"`
	TenantID     primitive.ObjectID     `json:"tenantId" bson:"tenantId"`
	TemplateID   primitive.ObjectID     `json:"templateId" bson:"templateId"`
	TemplateName string                 `json:"templateName" bson:"templateName"`
	DataSource   reportquery.DataSource `json:"dataSource" bson:"dataSource"`
	Parameters   *RunParameters         `json:"parameters,omitempty" bson:"parameters,omitempty"`
	Fields       []string               `json:"fields" bson:"fields"`
	Data         []map[string]any       `json:"data" bson:"data"`
	Summary      []AggregationResult    `json:"summary,omitempty" bson:"summary,omitempty"`
	RowCount     int                    `json:"rowCount" bson:"rowCount"`
	GeneratedBy  primitive.ObjectID     `json:"generatedBy" bson:"generatedBy"`
	GeneratedAt  time.Time              `json:"generatedAt" bson:"generatedAt"`
	ExpiresAt    time.Time              `json:"expiresAt" bson:"expiresAt"`
}

// PreviewRequest is an ad-hoc, unsaved report spec.
type PreviewRequest struct {
	DataSource     reportquery.DataSource `json:"dataSource"`
	SelectedFields []string               `json:"selectedFields"`
	Filters        []reportquery.Filter   `json:"filters,omitempty"`
	SortBy         []reportquery.Sort     `json:"sortBy,omitempty"`
	Limit          int64                  `json:"limit,omitempty"`
}

// PreviewResult is returned by preview; nothing is persisted.
type PreviewResult struct {
	Data      []map[string]any              `json:"data"`
	RowCount  int                           `json:"rowCount"`
	FieldMeta []reportquery.FieldDescriptor `json:"fieldMeta"`
}
