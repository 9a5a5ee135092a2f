package report

import (
	"context"
	"fmt"
	"time"

	common_models "go-hrm/internal/common/models"
	"go-hrm/internal/connectors"
	"go-hrm/internal/features/audit"
	"go-hrm/pkg/reportquery"
	"go-hrm/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// FieldCatalog describes what a report against one data source may use.
type FieldCatalog struct {
	DataSource reportquery.DataSource        `json:"dataSource"`
	Fields     []reportquery.FieldDescriptor `json:"fields"`
}

// CatalogResponse is the full builder catalog: per-source fields plus the
// operator set of every field type.
type CatalogResponse struct {
	Sources   []FieldCatalog                     `json:"sources"`
	Operators map[reportquery.FieldType][]string `json:"operators"`
}

type ReportService interface {
	Catalog(dataSource string) (*CatalogResponse, error)
	Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error)

	CreateTemplate(ctx context.Context, tpl *ReportTemplate) error
	GetTemplate(ctx context.Context, id primitive.ObjectID) (*ReportTemplate, error)
	ListTemplates(ctx context.Context) ([]ReportTemplate, error)
	UpdateTemplate(ctx context.Context, id primitive.ObjectID, tpl *ReportTemplate) (*ReportTemplate, error)
	DeleteTemplate(ctx context.Context, id primitive.ObjectID) error

	Run(ctx context.Context, templateID primitive.ObjectID, params *RunParameters) (*GeneratedReport, error)
	GetGenerated(ctx context.Context, id primitive.ObjectID) (*GeneratedReport, error)
	ListGenerated(ctx context.Context, templateID primitive.ObjectID, page, limit int64) ([]GeneratedReport, error)
	DeleteGenerated(ctx context.Context, id primitive.ObjectID) error
}

type ReportServiceImpl struct {
	Templates TemplateRepository
	Generated GeneratedRepository
	Fetcher   Fetcher
	Audit     audit.AuditService
	Warehouse connectors.WarehouseSink
	Log       *zap.Logger
}

func NewReportService(
	templates TemplateRepository,
	generated GeneratedRepository,
	fetcher Fetcher,
	auditSvc audit.AuditService,
	warehouse connectors.WarehouseSink,
	log *zap.Logger,
) ReportService {
	return &ReportServiceImpl{
		Templates: templates,
		Generated: generated,
		Fetcher:   fetcher,
		Audit:     auditSvc,
		Warehouse: warehouse,
		Log:       log,
	}
}

// Catalog returns the builder catalog for one source, or for all sources
// when dataSource is empty.
func (s *ReportServiceImpl) Catalog(dataSource string) (*CatalogResponse, error) {
	resp := &CatalogResponse{Operators: reportquery.OperatorCatalog()}

	if dataSource != "" {
		fields, err := reportquery.FieldsFor(reportquery.DataSource(dataSource))
		if err != nil {
			return nil, err
		}
		resp.Sources = []FieldCatalog{{DataSource: reportquery.DataSource(dataSource), Fields: fields}}
		return resp, nil
	}

	for _, ds := range reportquery.AllDataSources {
		fields, err := reportquery.FieldsFor(ds)
		if err != nil {
			return nil, err
		}
		resp.Sources = append(resp.Sources, FieldCatalog{DataSource: ds, Fields: fields})
	}
	return resp, nil
}

func (s *ReportServiceImpl) Preview(ctx context.Context, req PreviewRequest) (*PreviewResult, error) {
	plan, err := reportquery.Compile(req.DataSource, req.SelectedFields, req.Filters)
	if err != nil {
		return nil, err
	}
	if err := validateSort(req.DataSource, req.SortBy); err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > PreviewRowLimit {
		limit = PreviewRowLimit
	}

	records, err := s.Fetcher.Fetch(ctx, plan, req.SortBy, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, reportquery.Project(rec, plan.Fields))
	}

	return &PreviewResult{
		Data:      rows,
		RowCount:  len(rows),
		FieldMeta: plan.Fields,
	}, nil
}

func (s *ReportServiceImpl) CreateTemplate(ctx context.Context, tpl *ReportTemplate) error {
	if err := s.validateTemplate(tpl); err != nil {
		return err
	}

	claims, err := claimsFrom(ctx)
	if err != nil {
		return err
	}
	creator, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return fmt.Errorf("invalid user id in claims: %w", err)
	}

	now := time.Now()
	tpl.ID = primitive.NilObjectID
	tpl.CreatedBy = creator
	tpl.IsSystem = false
	tpl.LastRunAt = nil
	tpl.CreatedAt = now
	tpl.UpdatedAt = now

	if err := s.Templates.Create(ctx, tpl); err != nil {
		return err
	}

	if err := s.Audit.LogChange(ctx, common_models.AuditActionCreate, "report_template", tpl.ID.Hex(), map[string]common_models.Change{
		"name": {New: tpl.Name},
	}); err != nil {
		s.Log.Warn("failed to write template audit entry", zap.Error(err))
	}
	return nil
}

func (s *ReportServiceImpl) GetTemplate(ctx context.Context, id primitive.ObjectID) (*ReportTemplate, error) {
	tpl, err := s.Templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReadable(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *ReportServiceImpl) ListTemplates(ctx context.Context) ([]ReportTemplate, error) {
	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in claims: %w", err)
	}
	return s.Templates.List(ctx, userID)
}

// UpdateTemplate replaces the mutable parts of a template. System templates
// never change; others change only for their creator.
func (s *ReportServiceImpl) UpdateTemplate(ctx context.Context, id primitive.ObjectID, tpl *ReportTemplate) (*ReportTemplate, error) {
	existing, err := s.Templates.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkWritable(ctx, existing); err != nil {
		return nil, err
	}
	if err := s.validateTemplate(tpl); err != nil {
		return nil, err
	}

	existing.Name = tpl.Name
	existing.Description = tpl.Description
	existing.DataSource = tpl.DataSource
	existing.SelectedFields = tpl.SelectedFields
	existing.Filters = tpl.Filters
	existing.SortBy = tpl.SortBy
	existing.Aggregations = tpl.Aggregations
	existing.ChartType = tpl.ChartType
	existing.ChartConfig = tpl.ChartConfig
	existing.IsPublic = tpl.IsPublic
	existing.UpdatedAt = time.Now()

	if err := s.Templates.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err := s.Audit.LogChange(ctx, common_models.AuditActionUpdate, "report_template", existing.ID.Hex(), map[string]common_models.Change{
		"name": {New: existing.Name},
	}); err != nil {
		s.Log.Warn("failed to write template audit entry", zap.Error(err))
	}
	return existing, nil
}

func (s *ReportServiceImpl) DeleteTemplate(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.Templates.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkWritable(ctx, existing); err != nil {
		return err
	}
	if err := s.Templates.Delete(ctx, id); err != nil {
		return err
	}
	// The template is gone; a failed audit write must not report otherwise.
	if err := s.Audit.LogChange(ctx, common_models.AuditActionDelete, "report_template", id.Hex(), nil); err != nil {
		s.Log.Warn("failed to write template audit entry", zap.Error(err))
	}
	return nil
}

// Run materializes a template into a persisted GeneratedReport. Runtime
// parameters narrow the template's filters by date; they never widen them.
func (s *ReportServiceImpl) Run(ctx context.Context, templateID primitive.ObjectID, params *RunParameters) (*GeneratedReport, error) {
	tpl, err := s.GetTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	filters, err := mergeParameters(tpl, params)
	if err != nil {
		return nil, err
	}

	plan, err := reportquery.Compile(tpl.DataSource, tpl.SelectedFields, filters)
	if err != nil {
		return nil, err
	}
	if err := validateSort(tpl.DataSource, tpl.SortBy); err != nil {
		return nil, err
	}

	records, err := s.Fetcher.Fetch(ctx, plan, tpl.SortBy, RunRowLimit)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(records))
	for _, rec := range records {
		rows = append(rows, reportquery.Project(rec, plan.Fields))
	}

	summary := make([]AggregationResult, 0, len(tpl.Aggregations))
	for _, agg := range tpl.Aggregations {
		summary = append(summary, AggregationResult{
			Field: agg.Field,
			Type:  agg.Type,
			Label: agg.Label,
			Value: reportquery.Aggregate(records, agg.Field, agg.Type),
		})
	}

	claims, err := claimsFrom(ctx)
	if err != nil {
		return nil, err
	}
	runner, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in claims: %w", err)
	}

	now := time.Now()
	generated := &GeneratedReport{
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		DataSource:   tpl.DataSource,
		Parameters:   params,
		Fields:       tpl.SelectedFields,
		Data:         rows,
		Summary:      summary,
		RowCount:     len(rows),
		GeneratedBy:  runner,
		GeneratedAt:  now,
		ExpiresAt:    now.Add(GeneratedReportTTL),
	}

	if err := s.Generated.Insert(ctx, generated); err != nil {
		return nil, err
	}
	if err := s.Templates.SetLastRun(ctx, tpl.ID, now); err != nil {
		s.Log.Warn("failed to stamp template last run", zap.String("templateId", tpl.ID.Hex()), zap.Error(err))
	}

	if err := s.Audit.LogChange(ctx, common_models.AuditActionRun, "report_template", tpl.ID.Hex(), map[string]common_models.Change{
		"rowCount": {New: fmt.Sprintf("%d", generated.RowCount)},
	}); err != nil {
		s.Log.Warn("failed to write run audit entry", zap.Error(err))
	}

	// Best effort: a warehouse outage must not fail the run.
	if err := s.Warehouse.RecordRun(ctx, connectors.RunRecord{
		TenantID:     generated.TenantID.Hex(),
		TemplateID:   tpl.ID.Hex(),
		TemplateName: tpl.Name,
		DataSource:   string(tpl.DataSource),
		RowCount:     generated.RowCount,
		GeneratedBy:  runner.Hex(),
		GeneratedAt:  now,
	}); err != nil {
		s.Log.Warn("failed to export run to warehouse", zap.Error(err))
	}

	return generated, nil
}

func (s *ReportServiceImpl) GetGenerated(ctx context.Context, id primitive.ObjectID) (*GeneratedReport, error) {
	return s.Generated.GetByID(ctx, id)
}

func (s *ReportServiceImpl) ListGenerated(ctx context.Context, templateID primitive.ObjectID, page, limit int64) ([]GeneratedReport, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.Generated.List(ctx, templateID, limit, (page-1)*limit)
}

func (s *ReportServiceImpl) DeleteGenerated(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.Generated.GetByID(ctx, id)
	if err != nil {
		return err
	}

	claims, err := claimsFrom(ctx)
	if err != nil {
		return err
	}
	if claims.Role != common_models.RoleAdmin && claims.UserID != existing.GeneratedBy.Hex() {
		return ErrAccessDenied
	}

	if err := s.Generated.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Audit.LogChange(ctx, common_models.AuditActionDelete, "generated_report", id.Hex(), nil); err != nil {
		s.Log.Warn("failed to write delete audit entry", zap.Error(err))
	}
	return nil
}

// validateTemplate compiles the template's spec to surface bad fields,
// operators, and values at save time instead of first run.
func (s *ReportServiceImpl) validateTemplate(tpl *ReportTemplate) error {
	if tpl.Name == "" {
		return reportquery.ErrMalformedFilterValue
	}
	if len(tpl.SelectedFields) == 0 {
		return fmt.Errorf("%w: at least one field must be selected", reportquery.ErrInvalidField)
	}
	if _, err := reportquery.Compile(tpl.DataSource, tpl.SelectedFields, tpl.Filters); err != nil {
		return err
	}
	if err := validateSort(tpl.DataSource, tpl.SortBy); err != nil {
		return err
	}
	for _, agg := range tpl.Aggregations {
		if !reportquery.ValidAggregation(agg.Type) {
			return fmt.Errorf("%w: unknown aggregation %q", reportquery.ErrMalformedFilterValue, agg.Type)
		}
		if _, err := reportquery.FieldByID(tpl.DataSource, agg.Field); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportServiceImpl) checkReadable(ctx context.Context, tpl *ReportTemplate) error {
	if tpl.IsPublic || tpl.IsSystem {
		return nil
	}
	claims, err := claimsFrom(ctx)
	if err != nil {
		return err
	}
	if claims.UserID == tpl.CreatedBy.Hex() {
		return nil
	}
	// Hidden, not forbidden: private templates do not leak their existence.
	return ErrTemplateNotFound
}

func (s *ReportServiceImpl) checkWritable(ctx context.Context, tpl *ReportTemplate) error {
	if tpl.IsSystem {
		return ErrSystemTemplateImmutable
	}
	claims, err := claimsFrom(ctx)
	if err != nil {
		return err
	}
	if claims.UserID == tpl.CreatedBy.Hex() {
		return nil
	}
	return ErrAccessDenied
}

func claimsFrom(ctx context.Context) (*utils.UserClaims, error) {
	claims, ok := ctx.Value(utils.UserClaimsKey).(*utils.UserClaims)
	if !ok || claims == nil {
		return nil, ErrTenantNotResolved
	}
	return claims, nil
}

func validateSort(ds reportquery.DataSource, sortBy []reportquery.Sort) error {
	for _, s := range sortBy {
		if _, err := reportquery.FieldByID(ds, s.Field); err != nil {
			return err
		}
	}
	return nil
}

// mergeParameters appends the run's date-range override as filters on the
// source's primary date field.
func mergeParameters(tpl *ReportTemplate, params *RunParameters) ([]reportquery.Filter, error) {
	filters := make([]reportquery.Filter, len(tpl.Filters))
	copy(filters, tpl.Filters)

	if params == nil || (params.StartDate == "" && params.EndDate == "") {
		return filters, nil
	}

	info, err := sourceFor(tpl.DataSource)
	if err != nil {
		return nil, err
	}

	switch {
	case params.StartDate != "" && params.EndDate != "":
		filters = append(filters, reportquery.Filter{
			Field:    info.DateField,
			Operator: reportquery.OpBetween,
			Value:    []any{params.StartDate, params.EndDate},
		})
	case params.StartDate != "":
		filters = append(filters, reportquery.Filter{
			Field:    info.DateField,
			Operator: reportquery.OpGte,
			Value:    params.StartDate,
		})
	default:
		filters = append(filters, reportquery.Filter{
			Field:    info.DateField,
			Operator: reportquery.OpLte,
			Value:    params.EndDate,
		})
	}
	return filters, nil
}
