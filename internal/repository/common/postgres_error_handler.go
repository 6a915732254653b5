package common

import (
	"errors"
	"strings"

	apperrors "github.com/Taichi-iskw/webvideo/internal/errors"
	"github.com/jackc/pgx/v5/pgconn"
)

// HandlePostgreSQLError wraps any store failure as a data access error.
// PostgreSQL errors additionally carry a nested AppError describing the
// violated constraint, so callers can branch with apperrors.IsCode.
func HandlePostgreSQLError(err error, operation string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// Connectivity, context or scan failure
		return apperrors.Wrap(err, apperrors.CodeDataAccess, operation)
	}

	return apperrors.Wrap(classifyPgError(pgErr), apperrors.CodeDataAccess, operation)
}

// classifyPgError maps a SQLSTATE to an AppError code
func classifyPgError(pgErr *pgconn.PgError) *apperrors.AppError {
	switch pgErr.Code {
	case "23505": // UNIQUE_VIOLATION
		return handleUniqueViolation(pgErr)

	case "23503": // FOREIGN_KEY_VIOLATION
		return handleForeignKeyViolation(pgErr)

	case "23502": // NOT_NULL_VIOLATION
		return apperrors.Wrap(pgErr, apperrors.CodeInvalidArg, "required field is missing")

	case "23514": // CHECK_VIOLATION
		return apperrors.Wrap(pgErr, apperrors.CodeInvalidArg, "data violates check constraint")

	case "42P01": // UNDEFINED_TABLE
		return apperrors.Wrap(pgErr, apperrors.CodeDataAccess, "database schema error: table not found")

	case "42703": // UNDEFINED_COLUMN
		return apperrors.Wrap(pgErr, apperrors.CodeDataAccess, "database schema error: column not found")

	case "08000", "08003", "08006": // CONNECTION_EXCEPTION variants
		return apperrors.Wrap(pgErr, apperrors.CodeDataAccess, "database connection error")

	case "53300": // TOO_MANY_CONNECTIONS
		return apperrors.Wrap(pgErr, apperrors.CodeDataAccess, "database connection limit reached")

	default:
		message := "database error (PostgreSQL code: " + pgErr.Code + ")"
		return apperrors.Wrap(pgErr, apperrors.CodeDataAccess, message)
	}
}

func handleUniqueViolation(pgErr *pgconn.PgError) *apperrors.AppError {
	constraintName := pgErr.ConstraintName

	switch {
	case strings.Contains(constraintName, "videoimage"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "video image with this ID already exists")
	case strings.Contains(constraintName, "video_name_hash"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "video with this name and hash already exists")
	case strings.Contains(constraintName, "video_pkey"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "video with this ID already exists")
	case strings.Contains(constraintName, "pkey"):
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "resource with this ID already exists")
	default:
		return apperrors.Wrap(pgErr, apperrors.CodeConflict, "resource already exists")
	}
}

func handleForeignKeyViolation(pgErr *pgconn.PgError) *apperrors.AppError {
	constraintName := pgErr.ConstraintName

	switch {
	case strings.Contains(constraintName, "user_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced user does not exist")
	case strings.Contains(constraintName, "role_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced role does not exist")
	case strings.Contains(constraintName, "organization_id"):
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced organization does not exist")
	default:
		return apperrors.Wrap(pgErr, apperrors.CodeDependency, "referenced resource does not exist")
	}
}
