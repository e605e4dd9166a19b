package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldPath      = "path"
	FieldRecords   = "records"
	FieldDate      = "date"
	FieldName      = "name"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldMonth     = "month"
	FieldYear      = "year"
	FieldGoal      = "goal"
	FieldCommand   = "command"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentCodec   = "codec"
	ComponentReport  = "report"
	ComponentService = "service"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpAdd       = "add"
	OpDelete    = "delete"
	OpLoad      = "load"
	OpSave      = "save"
	OpFilter    = "filter"
	OpTotals    = "totals"
	OpBreakdown = "breakdown"
	OpTrend     = "trend"
	OpGoal      = "goal"
)
