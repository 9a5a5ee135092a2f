package reportquery

// DataSource identifies one of the ten entity groupings exposed to the
// report builder. The set is closed; adapters switch over it exhaustively.
type DataSource string

const (
	SourceEmployees   DataSource = "EMPLOYEES"
	SourceAttendance  DataSource = "ATTENDANCE"
	SourceLeave       DataSource = "LEAVE"
	SourcePayroll     DataSource = "PAYROLL"
	SourceGoals       DataSource = "GOALS"
	SourceReviews     DataSource = "REVIEWS"
	SourceTraining    DataSource = "TRAINING"
	SourceExpenses    DataSource = "EXPENSES"
	SourceAssets      DataSource = "ASSETS"
	SourceRecruitment DataSource = "RECRUITMENT"
)

// AllDataSources lists every recognized data source in display order.
var AllDataSources = []DataSource{
	SourceEmployees,
	SourceAttendance,
	SourceLeave,
	SourcePayroll,
	SourceGoals,
	SourceReviews,
	SourceTraining,
	SourceExpenses,
	SourceAssets,
	SourceRecruitment,
}

type FieldType string

const (
	FieldTypeText       FieldType = "TEXT"
	FieldTypeNumber     FieldType = "NUMBER"
	FieldTypeDate       FieldType = "DATE"
	FieldTypeBoolean    FieldType = "BOOLEAN"
	FieldTypeCurrency   FieldType = "CURRENCY"
	FieldTypePercentage FieldType = "PERCENTAGE"
	FieldTypeEnum       FieldType = "ENUM"
)

// FieldDescriptor describes one reportable field of a data source. ID is a
// dot-delimited path of 1-3 segments; segments beyond the first traverse an
// embedded relation.
type FieldDescriptor struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Type        FieldType `json:"type"`
	Category    string    `json:"category"`
	Options     []string  `json:"options,omitempty"`
}

var registry = map[DataSource][]FieldDescriptor{
	SourceEmployees: {
		{ID: "employeeCode", DisplayName: "Employee Code", Type: FieldTypeText, Category: "Personal"},
		{ID: "firstName", DisplayName: "First Name", Type: FieldTypeText, Category: "Personal"},
		{ID: "lastName", DisplayName: "Last Name", Type: FieldTypeText, Category: "Personal"},
		{ID: "email", DisplayName: "Email", Type: FieldTypeText, Category: "Personal"},
		{ID: "phone", DisplayName: "Phone", Type: FieldTypeText, Category: "Personal"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Job", Options: []string{"ACTIVE", "ON_LEAVE", "TERMINATED"}},
		{ID: "employmentType", DisplayName: "Employment Type", Type: FieldTypeEnum, Category: "Job", Options: []string{"FULL_TIME", "PART_TIME", "CONTRACT", "INTERN"}},
		{ID: "joinDate", DisplayName: "Join Date", Type: FieldTypeDate, Category: "Job"},
		{ID: "salary", DisplayName: "Salary", Type: FieldTypeCurrency, Category: "Compensation"},
		{ID: "department.name", DisplayName: "Department", Type: FieldTypeText, Category: "Job"},
		{ID: "designation.name", DisplayName: "Designation", Type: FieldTypeText, Category: "Job"},
		{ID: "manager.firstName", DisplayName: "Manager First Name", Type: FieldTypeText, Category: "Job"},
		{ID: "manager.lastName", DisplayName: "Manager Last Name", Type: FieldTypeText, Category: "Job"},
	},
	SourceAttendance: {
		{ID: "date", DisplayName: "Date", Type: FieldTypeDate, Category: "Attendance"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Attendance", Options: []string{"PRESENT", "ABSENT", "LATE", "HALF_DAY", "ON_LEAVE"}},
		{ID: "checkIn", DisplayName: "Check In", Type: FieldTypeDate, Category: "Attendance"},
		{ID: "checkOut", DisplayName: "Check Out", Type: FieldTypeDate, Category: "Attendance"},
		{ID: "workHours", DisplayName: "Work Hours", Type: FieldTypeNumber, Category: "Attendance"},
		{ID: "overtimeHours", DisplayName: "Overtime Hours", Type: FieldTypeNumber, Category: "Attendance"},
		{ID: "employee.firstName", DisplayName: "Employee First Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.lastName", DisplayName: "Employee Last Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.department.name", DisplayName: "Department", Type: FieldTypeText, Category: "Employee"},
	},
	SourceLeave: {
		{ID: "type", DisplayName: "Leave Type", Type: FieldTypeEnum, Category: "Leave", Options: []string{"CASUAL", "SICK", "EARNED", "UNPAID", "MATERNITY", "PATERNITY"}},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Leave", Options: []string{"PENDING", "APPROVED", "REJECTED", "CANCELLED"}},
		{ID: "startDate", DisplayName: "Start Date", Type: FieldTypeDate, Category: "Leave"},
		{ID: "endDate", DisplayName: "End Date", Type: FieldTypeDate, Category: "Leave"},
		{ID: "days", DisplayName: "Days", Type: FieldTypeNumber, Category: "Leave"},
		{ID: "reason", DisplayName: "Reason", Type: FieldTypeText, Category: "Leave"},
		{ID: "employee.firstName", DisplayName: "Employee First Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.lastName", DisplayName: "Employee Last Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.department.name", DisplayName: "Department", Type: FieldTypeText, Category: "Employee"},
	},
	SourcePayroll: {
		{ID: "month", DisplayName: "Month", Type: FieldTypeNumber, Category: "Payroll"},
		{ID: "year", DisplayName: "Year", Type: FieldTypeNumber, Category: "Payroll"},
		{ID: "paymentDate", DisplayName: "Payment Date", Type: FieldTypeDate, Category: "Payroll"},
		{ID: "basicSalary", DisplayName: "Basic Salary", Type: FieldTypeCurrency, Category: "Payroll"},
		{ID: "allowances", DisplayName: "Allowances", Type: FieldTypeCurrency, Category: "Payroll"},
		{ID: "deductions", DisplayName: "Deductions", Type: FieldTypeCurrency, Category: "Payroll"},
		{ID: "netSalary", DisplayName: "Net Salary", Type: FieldTypeCurrency, Category: "Payroll"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Payroll", Options: []string{"DRAFT", "PROCESSED", "PAID"}},
		{ID: "employee.firstName", DisplayName: "Employee First Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.lastName", DisplayName: "Employee Last Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.department.name", DisplayName: "Department", Type: FieldTypeText, Category: "Employee"},
	},
	SourceGoals: {
		{ID: "title", DisplayName: "Title", Type: FieldTypeText, Category: "Goal"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Goal", Options: []string{"NOT_STARTED", "IN_PROGRESS", "COMPLETED", "CANCELLED"}},
		{ID: "progress", DisplayName: "Progress", Type: FieldTypePercentage, Category: "Goal"},
		{ID: "weight", DisplayName: "Weight", Type: FieldTypeNumber, Category: "Goal"},
		{ID: "dueDate", DisplayName: "Due Date", Type: FieldTypeDate, Category: "Goal"},
		{ID: "employee.firstName", DisplayName: "Employee First Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.lastName", DisplayName: "Employee Last Name", Type: FieldTypeText, Category: "Employee"},
	},
	SourceReviews: {
		{ID: "period", DisplayName: "Review Period", Type: FieldTypeText, Category: "Review"},
		{ID: "overallRating", DisplayName: "Overall Rating", Type: FieldTypeNumber, Category: "Review"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Review", Options: []string{"DRAFT", "SUBMITTED", "ACKNOWLEDGED"}},
		{ID: "submittedAt", DisplayName: "Submitted At", Type: FieldTypeDate, Category: "Review"},
		{ID: "employee.firstName", DisplayName: "Employee First Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.lastName", DisplayName: "Employee Last Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "reviewer.firstName", DisplayName: "Reviewer First Name", Type: FieldTypeText, Category: "Reviewer"},
		{ID: "reviewer.lastName", DisplayName: "Reviewer Last Name", Type: FieldTypeText, Category: "Reviewer"},
	},
	SourceTraining: {
		{ID: "title", DisplayName: "Training Title", Type: FieldTypeText, Category: "Training"},
		{ID: "category", DisplayName: "Category", Type: FieldTypeText, Category: "Training"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Training", Options: []string{"ENROLLED", "IN_PROGRESS", "COMPLETED", "DROPPED"}},
		{ID: "completionRate", DisplayName: "Completion Rate", Type: FieldTypePercentage, Category: "Training"},
		{ID: "startDate", DisplayName: "Start Date", Type: FieldTypeDate, Category: "Training"},
		{ID: "endDate", DisplayName: "End Date", Type: FieldTypeDate, Category: "Training"},
		{ID: "employee.firstName", DisplayName: "Employee First Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.lastName", DisplayName: "Employee Last Name", Type: FieldTypeText, Category: "Employee"},
	},
	SourceExpenses: {
		{ID: "title", DisplayName: "Title", Type: FieldTypeText, Category: "Expense"},
		{ID: "category", DisplayName: "Category", Type: FieldTypeEnum, Category: "Expense", Options: []string{"TRAVEL", "MEALS", "SUPPLIES", "EQUIPMENT", "OTHER"}},
		{ID: "amount", DisplayName: "Amount", Type: FieldTypeCurrency, Category: "Expense"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Expense", Options: []string{"SUBMITTED", "APPROVED", "REJECTED", "REIMBURSED"}},
		{ID: "expenseDate", DisplayName: "Expense Date", Type: FieldTypeDate, Category: "Expense"},
		{ID: "reimbursable", DisplayName: "Reimbursable", Type: FieldTypeBoolean, Category: "Expense"},
		{ID: "employee.firstName", DisplayName: "Employee First Name", Type: FieldTypeText, Category: "Employee"},
		{ID: "employee.lastName", DisplayName: "Employee Last Name", Type: FieldTypeText, Category: "Employee"},
	},
	SourceAssets: {
		{ID: "name", DisplayName: "Asset Name", Type: FieldTypeText, Category: "Asset"},
		{ID: "type", DisplayName: "Asset Type", Type: FieldTypeEnum, Category: "Asset", Options: []string{"LAPTOP", "MONITOR", "PHONE", "FURNITURE", "SOFTWARE", "OTHER"}},
		{ID: "serialNumber", DisplayName: "Serial Number", Type: FieldTypeText, Category: "Asset"},
		{ID: "status", DisplayName: "Status", Type: FieldTypeEnum, Category: "Asset", Options: []string{"AVAILABLE", "ASSIGNED", "IN_REPAIR", "RETIRED"}},
		{ID: "purchaseDate", DisplayName: "Purchase Date", Type: FieldTypeDate, Category: "Asset"},
		{ID: "purchaseCost", DisplayName: "Purchase Cost", Type: FieldTypeCurrency, Category: "Asset"},
		{ID: "assignedTo.firstName", DisplayName: "Assigned To First Name", Type: FieldTypeText, Category: "Assignment"},
		{ID: "assignedTo.lastName", DisplayName: "Assigned To Last Name", Type: FieldTypeText, Category: "Assignment"},
	},
	SourceRecruitment: {
		{ID: "candidateName", DisplayName: "Candidate Name", Type: FieldTypeText, Category: "Candidate"},
		{ID: "email", DisplayName: "Email", Type: FieldTypeText, Category: "Candidate"},
		{ID: "stage", DisplayName: "Stage", Type: FieldTypeEnum, Category: "Pipeline", Options: []string{"APPLIED", "SCREENING", "INTERVIEW", "OFFER", "HIRED", "REJECTED"}},
		{ID: "appliedAt", DisplayName: "Applied At", Type: FieldTypeDate, Category: "Pipeline"},
		{ID: "expectedSalary", DisplayName: "Expected Salary", Type: FieldTypeCurrency, Category: "Candidate"},
		{ID: "rating", DisplayName: "Rating", Type: FieldTypeNumber, Category: "Pipeline"},
		{ID: "job.title", DisplayName: "Job Title", Type: FieldTypeText, Category: "Job"},
		{ID: "job.department.name", DisplayName: "Department", Type: FieldTypeText, Category: "Job"},
	},
}

// FieldsFor returns the field descriptors of one data source.
func FieldsFor(ds DataSource) ([]FieldDescriptor, error) {
	fields, ok := registry[ds]
	if !ok {
		return nil, unknownDataSource(ds)
	}
	return fields, nil
}

// FieldByID resolves a single field id within a data source.
func FieldByID(ds DataSource, id string) (FieldDescriptor, error) {
	fields, ok := registry[ds]
	if !ok {
		return FieldDescriptor{}, unknownDataSource(ds)
	}
	for _, f := range fields {
		if f.ID == id {
			return f, nil
		}
	}
	return FieldDescriptor{}, invalidField(ds, id)
}
