package handlers

import (
	"errors"

	"plantillas-crud-api/internal/models"
	"plantillas-crud-api/internal/repositories"
	"plantillas-crud-api/pkg/lambda"
)

// errorKind classifies a failure for logging. Callers always receive the same
// generic 403 envelope.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, lambda.ErrMalformedBody):
		return "malformed_body"
	case errors.Is(err, lambda.ErrMissingPathID):
		return "missing_path_id"
	case models.IsValidationError(err):
		return "validation"
	case errors.Is(err, repositories.ErrConnection):
		return "connection"
	case repositories.IsInvalidID(err):
		return "invalid_id"
	case repositories.IsNotFound(err):
		return "not_found"
	default:
		return "database"
	}
}
