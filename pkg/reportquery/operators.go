package reportquery

// Filter operator names. These are the wire-level identifiers accepted in
// filter specs; the catalog below fixes which of them apply per field type.
const (
	OpEquals     = "equals"
	OpContains   = "contains"
	OpStartsWith = "startsWith"
	OpEndsWith   = "endsWith"
	OpGt         = "gt"
	OpGte        = "gte"
	OpLt         = "lt"
	OpLte        = "lte"
	OpBetween    = "between"
	OpIn         = "in"
	OpNotIn      = "notIn"
	OpIsEmpty    = "isEmpty"
	OpIsNotEmpty = "isNotEmpty"
)

var operatorCatalog = map[FieldType][]string{
	FieldTypeText:       {OpEquals, OpContains, OpStartsWith, OpEndsWith, OpIsEmpty, OpIsNotEmpty},
	FieldTypeNumber:     {OpEquals, OpGt, OpGte, OpLt, OpLte, OpBetween},
	FieldTypeCurrency:   {OpEquals, OpGt, OpGte, OpLt, OpLte, OpBetween},
	FieldTypePercentage: {OpEquals, OpGt, OpGte, OpLt, OpLte, OpBetween},
	FieldTypeDate:       {OpEquals, OpGt, OpGte, OpLt, OpLte, OpBetween},
	FieldTypeBoolean:    {OpEquals},
	FieldTypeEnum:       {OpEquals, OpIn, OpNotIn},
}

// OperatorsFor returns the ordered set of operators legal for a field type.
// Every registered field type has a non-empty operator set.
func OperatorsFor(ft FieldType) []string {
	return operatorCatalog[ft]
}

// OperatorCatalog returns the full type-to-operators table, used by the
// fields endpoint so clients can build filter UIs without hardcoding.
func OperatorCatalog() map[FieldType][]string {
	out := make(map[FieldType][]string, len(operatorCatalog))
	for ft, ops := range operatorCatalog {
		out[ft] = append([]string(nil), ops...)
	}
	return out
}

func operatorAllowed(ft FieldType, op string) bool {
	for _, allowed := range operatorCatalog[ft] {
		if allowed == op {
			return true
		}
	}
	return false
}
