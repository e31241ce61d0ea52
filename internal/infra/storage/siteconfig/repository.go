package siteconfig

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
	"github.com/shampooches/GroomingBookingService/pkg/psqlbuilder"
)

// Repository reads salon-wide configuration
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a site config repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActive returns the active site configuration. At most one row is
// active; when none is, callers fall back to the defaults in the domain
// package.
func (r *Repository) GetActive(ctx context.Context) (*domain.SiteConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_name",
		"max_bookings_per_customer_per_day",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("site_config").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.SiteConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.ID,
		&cfg.BusinessName,
		&cfg.MaxBookingsPerCustomerPerDay,
		&cfg.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - scan config: %v", ErrScanRow, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
