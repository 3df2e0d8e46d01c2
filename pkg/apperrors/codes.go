package apperrors

// ErrorCode identifies an error class in API responses.
type ErrorCode string

const (
	// System and unknown failures
	CodeInternalError     ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError     ErrorCode = "DATABASE_ERROR"
	CodeAggregationFailed ErrorCode = "AGGREGATION_FAILED"

	// Common business-logic errors
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication and authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)
