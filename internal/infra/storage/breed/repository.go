package breed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
	"github.com/shampooches/GroomingBookingService/pkg/psqlbuilder"
)

var breedColumns = []string{
	"id",
	"name",
	"base_price",
	"start_weight",
	"weight_increment",
	"increment_price",
	"typical_weight_min",
	"typical_weight_max",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository persists breeds
type Repository struct {
	db DBExecutor
}

// NewRepository creates a breed repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new breed
func (r *Repository) Create(ctx context.Context, b *domain.Breed) (*domain.Breed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("breeds").
		Columns(
			"name",
			"base_price",
			"start_weight",
			"weight_increment",
			"increment_price",
			"typical_weight_min",
			"typical_weight_max",
			"is_active",
		).
		Values(
			b.Name,
			b.BasePrice,
			b.StartWeight,
			b.WeightIncrement,
			b.IncrementPrice,
			b.TypicalWeightMin,
			b.TypicalWeightMax,
			b.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// Update rewrites the breed's catalog fields
func (r *Repository) Update(ctx context.Context, b *domain.Breed) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("breeds").
		Set("name", b.Name).
		Set("base_price", b.BasePrice).
		Set("start_weight", b.StartWeight).
		Set("weight_increment", b.WeightIncrement).
		Set("increment_price", b.IncrementPrice).
		Set("typical_weight_min", b.TypicalWeightMin).
		Set("typical_weight_max", b.TypicalWeightMax).
		Set("is_active", b.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBreedNotFound
	}

	return nil
}

// GetByID fetches a breed by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Breed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(breedColumns...).
		From("breeds").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBreed(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBreedNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan breed: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListActive returns all active breeds ordered by name
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Breed, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(breedColumns...).
		From("breeds").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	breeds := make([]*domain.Breed, 0)
	for rows.Next() {
		b, err := scanBreed(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		breeds = append(breeds, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return breeds, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBreed(row rowScanner) (*domain.Breed, error) {
	var b domain.Breed
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.BasePrice,
		&b.StartWeight,
		&b.WeightIncrement,
		&b.IncrementPrice,
		&b.TypicalWeightMin,
		&b.TypicalWeightMax,
		&b.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
