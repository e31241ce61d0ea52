package groomer

import "errors"

var (
	// ErrGroomerNotFound is returned when no groomer matches
	ErrGroomerNotFound = errors.New("groomer.repository: groomer not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("groomer.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("groomer.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("groomer.repository: failed to scan row")
)
