package errors

// ErrorCode is the application-level error code returned in error bodies
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1003
	ErrorCode_VALIDATION_FAILED ErrorCode = 1004

	// Call summaries
	ErrorCode_SUMMARY_NOT_FOUND ErrorCode = 2000

	// Database
	ErrorCode_DB_QUERY_FAILED       ErrorCode = 5001
	ErrorCode_DB_TRANSACTION_FAILED ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:           "UNSPECIFIED",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:       "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:     "VALIDATION_FAILED",
	ErrorCode_SUMMARY_NOT_FOUND:     "SUMMARY_NOT_FOUND",
	ErrorCode_DB_QUERY_FAILED:       "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED: "DB_TRANSACTION_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
