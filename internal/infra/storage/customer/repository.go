package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
	"github.com/shampooches/GroomingBookingService/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"user_id",
	"name",
	"email",
	"phone",
	"address",
	"created_at",
	"updated_at",
}

// Repository persists customers
type Repository struct {
	db DBExecutor
}

// NewRepository creates a customer repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new customer
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns(
			"user_id",
			"name",
			"email",
			"phone",
			"address",
		).
		Values(
			c.UserID,
			c.Name,
			c.Email,
			c.Phone,
			c.Address,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID fetches a customer by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getByCondition(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByUserID fetches the customer linked to a registered user
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	return r.getByCondition(ctx, squirrel.Eq{"user_id": userID}, "GetByUserID")
}

// GetByEmail fetches a guest customer by email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	return r.getByCondition(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

func (r *Repository) getByCondition(ctx context.Context, cond squirrel.Eq, op string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(cond).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var c domain.Customer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Address,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan customer: %v", ErrScanRow, op, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

// UpdateContactInfo refreshes the customer's name and phone. Booking forms
// are the source of truth for contact details, so stale records are
// overwritten at admission time.
func (r *Repository) UpdateContactInfo(ctx context.Context, id int64, name, phone string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("name", name).
		Set("phone", phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateContactInfo - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateContactInfo - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateContactInfo - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}

	return nil
}
