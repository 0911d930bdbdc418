package logging

// Standardized field names for structured logging. These constants keep the
// log output consistent across commands so it stays easy to filter.
const (
	FieldFile       = "file_path"
	FieldCategory   = "category"
	FieldKind       = "kind"
	FieldAmount     = "amount"
	FieldCount      = "count"
	FieldOperation  = "operation"
	FieldReason     = "reason"
	FieldError      = "error"
	FieldRow        = "row"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldFormat     = "format"
	FieldModel      = "model"
)
