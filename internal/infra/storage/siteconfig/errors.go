package siteconfig

import "errors"

var (
	// ErrConfigNotFound is returned when no active site configuration exists
	ErrConfigNotFound = errors.New("siteconfig.repository: site config not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("siteconfig.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("siteconfig.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("siteconfig.repository: failed to scan row")
)
