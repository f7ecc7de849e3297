package logging

// Standardized field names for structured logging. These keep log output
// consistent across parsers and the pipeline so debug traces stay filterable.
const (
	FieldFile     = "file"
	FieldBank     = "bank"
	FieldParser   = "parser"
	FieldCategory = "category"
	FieldCurrency = "currency"
	FieldCount    = "count"
	FieldRaw      = "raw"
	FieldStage    = "stage"
	FieldReason   = "reason"
)
