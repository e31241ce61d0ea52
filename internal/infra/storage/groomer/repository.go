package groomer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
	"github.com/shampooches/GroomingBookingService/pkg/psqlbuilder"
)

var groomerColumns = []string{
	"id",
	"name",
	"bio",
	"specialties",
	"is_active",
	"display_order",
	"created_at",
	"updated_at",
}

// Repository persists groomers
type Repository struct {
	db DBExecutor
}

// NewRepository creates a groomer repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a groomer by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	g, err := scanGroomer(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrGroomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan groomer: %v", ErrScanRow, err)
	}

	return g, nil
}

// ListActive returns active groomers in display order
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Groomer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(groomerColumns...).
		From("groomers").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("display_order ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	groomers := make([]*domain.Groomer, 0)
	for rows.Next() {
		g, err := scanGroomer(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		groomers = append(groomers, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return groomers, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGroomer(row rowScanner) (*domain.Groomer, error) {
	var g domain.Groomer
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&g.ID,
		&g.Name,
		&g.Bio,
		&g.Specialties,
		&g.IsActive,
		&g.DisplayOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	g.CreatedAt = createdAt.Time
	g.UpdatedAt = updatedAt.Time

	return &g, nil
}
