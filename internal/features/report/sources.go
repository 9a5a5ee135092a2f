package report

import (
	"go-hrm/pkg/reportquery"
)

// sourceInfo binds a data source to its backing collection and the date
// field runtime date-range parameters apply to.
type sourceInfo struct {
	Collection string
	DateField  string
}

// sourceFor dispatches over the closed data source set. Adding a source
// without extending this switch fails at the first fetch with
// ErrUnknownDataSource rather than silently querying nothing.
func sourceFor(ds reportquery.DataSource) (sourceInfo, error) {
	switch ds {
	case reportquery.SourceEmployees:
		return sourceInfo{Collection: "employees", DateField: "joinDate"}, nil
	case reportquery.SourceAttendance:
		return sourceInfo{Collection: "attendance", DateField: "date"}, nil
	case reportquery.SourceLeave:
		return sourceInfo{Collection: "leaves", DateField: "startDate"}, nil
	case reportquery.SourcePayroll:
		return sourceInfo{Collection: "payrolls", DateField: "paymentDate"}, nil
	case reportquery.SourceGoals:
		return sourceInfo{Collection: "goals", DateField: "dueDate"}, nil
	case reportquery.SourceReviews:
		return sourceInfo{Collection: "reviews", DateField: "submittedAt"}, nil
	case reportquery.SourceTraining:
		return sourceInfo{Collection: "training_enrollments", DateField: "startDate"}, nil
	case reportquery.SourceExpenses:
		return sourceInfo{Collection: "expenses", DateField: "expenseDate"}, nil
	case reportquery.SourceAssets:
		return sourceInfo{Collection: "assets", DateField: "purchaseDate"}, nil
	case reportquery.SourceRecruitment:
		return sourceInfo{Collection: "job_applications", DateField: "appliedAt"}, nil
	default:
		return sourceInfo{}, reportquery.ErrUnknownDataSource
	}
}
