package loggers

const (
	FieldApp       = "app"
	FieldComponent = "component"
	FieldRunID     = "run_id"

	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldInputPath  = "input_path"
	FieldOutputPath = "output_path"
	FieldRecords    = "records"
	FieldGroups     = "groups"
	FieldEndpoints  = "endpoints"
)
