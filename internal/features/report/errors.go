package report

import "errors"

var (
	// ErrTemplateNotFound covers both absent templates and templates the
	// caller is not allowed to see; callers cannot distinguish the two.
	ErrTemplateNotFound = errors.New("report template not found")

	ErrDuplicateTemplateName   = errors.New("a template with this name already exists")
	ErrSystemTemplateImmutable = errors.New("system templates cannot be modified")
	ErrAccessDenied            = errors.New("only the template owner may do this")
	ErrGeneratedReportNotFound = errors.New("generated report not found")
	ErrTenantNotResolved       = errors.New("tenant not resolved in request context")
)
