package apperrors

import (
	"net/http"
)

// Factories for recurring domain errors. Repository sentinel errors (e.g.
// gorm.ErrRecordNotFound mapped to a package-level "not found") are wrapped
// here before leaving the service layer.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAggregationFailed reports a rating recomputation failure that happened
// after the review mutation itself was committed. The mutation stands; the
// stored aggregate may be stale until the reconciliation worker catches up.
func ErrAggregationFailed(err error, destinationID string) *AppError {
	return Wrap(err, CodeAggregationFailed, "rating",
		"Rating recomputation failed; the review change was saved", http.StatusInternalServerError).
		WithDetails(map[string]string{"destination_id": destinationID})
}

// ErrInvalidOperation flags a request that is well-formed but not allowed.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrInsufficientPermissions is returned when the caller is authenticated
// but not allowed to perform the operation, e.g. mutating another author's
// review or calling an admin-only endpoint.
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
