package breed

import "errors"

var (
	// ErrBreedNotFound is returned when no breed matches
	ErrBreedNotFound = errors.New("breed.repository: breed not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("breed.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("breed.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("breed.repository: failed to scan row")
)
