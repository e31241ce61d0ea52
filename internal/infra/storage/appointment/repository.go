package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/pkg/dbmetrics"
	"github.com/shampooches/GroomingBookingService/pkg/psqlbuilder"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

var appointmentColumns = []string{
	"id",
	"customer_id",
	"user_id",
	"service_id",
	"groomer_id",
	"preferred_groomer_id",
	"breed_id",
	"dog_name",
	"dog_weight",
	"dog_age",
	"appointment_date",
	"start_time",
	"status",
	"notes",
	"price_at_booking",
	"created_at",
	"updated_at",
}

// Repository persists appointments
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment. PriceAtBooking is written once here and
// never updated afterwards.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"user_id",
			"service_id",
			"groomer_id",
			"preferred_groomer_id",
			"breed_id",
			"dog_name",
			"dog_weight",
			"dog_age",
			"appointment_date",
			"start_time",
			"status",
			"notes",
			"price_at_booking",
		).
		Values(
			appt.CustomerID,
			appt.UserID,
			appt.ServiceID,
			appt.GroomerID,
			appt.PreferredGroomerID,
			appt.BreedID,
			appt.DogName,
			appt.DogWeight,
			appt.DogAge,
			appt.Date,
			appt.StartTime,
			appt.Status,
			appt.Notes,
			appt.PriceAtBooking,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID fetches an appointment by ID.
// Inside a transaction the row is locked FOR UPDATE, so status transitions
// cannot race each other.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// HasBlockingAppointment reports whether a blocking appointment
// (pending/confirmed/completed) occupies the given groomer/date/time.
//
// When excludeCustomerID is set, only that customer's ACTIVE rows
// (pending/confirmed) are excluded: the customer may book a second dog into
// their own slot, but their completed appointments still block.
func (r *Repository) HasBlockingAppointment(
	ctx context.Context,
	groomerID int64,
	date time.Time,
	startTime types.TimeString,
	excludeCustomerID *int64,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("appointments").
		Where(squirrel.Eq{
			"groomer_id":       groomerID,
			"appointment_date": date,
			"start_time":       startTime,
		}).
		Where(squirrel.Eq{"status": domain.StatusStrings(domain.BlockingStatuses)}).
		Limit(1)

	if excludeCustomerID != nil {
		// Keep rows unless they belong to the customer AND are active.
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.NotEq{"customer_id": *excludeCustomerID},
			squirrel.NotEq{"status": domain.StatusStrings(domain.ActiveStatuses)},
		})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingAppointment - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingAppointment - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// CountActiveByCustomerAndDate counts a customer's pending and confirmed
// appointments on the given date. Used by the daily booking cap.
func (r *Repository) CountActiveByCustomerAndDate(ctx context.Context, customerID int64, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{
			"customer_id":      customerID,
			"appointment_date": date,
		}).
		Where(squirrel.Eq{"status": domain.StatusStrings(domain.ActiveStatuses)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByCustomerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByCustomerAndDate - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

// ListBlockingByGroomerAndDate returns all blocking appointments for the
// groomer on the given date, ordered by start time. Used to compute slot
// availability in one query instead of one per slot.
func (r *Repository) ListBlockingByGroomerAndDate(ctx context.Context, groomerID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"groomer_id":       groomerID,
			"appointment_date": date,
		}).
		Where(squirrel.Eq{"status": domain.StatusStrings(domain.BlockingStatuses)}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingByGroomerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockingByGroomerAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByCustomer returns all of a customer's appointments, newest first
func (r *Repository) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"customer_id": customerID}).
		OrderBy("appointment_date DESC, start_time DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// ListByGroomerAndDate returns the groomer's schedule for a date,
// including cancelled rows, ordered by start time
func (r *Repository) ListByGroomerAndDate(ctx context.Context, groomerID int64, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{
			"groomer_id":       groomerID,
			"appointment_date": date,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroomerAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByGroomerAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus sets the appointment status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.UserID,
		&appt.ServiceID,
		&appt.GroomerID,
		&appt.PreferredGroomerID,
		&appt.BreedID,
		&appt.DogName,
		&appt.DogWeight,
		&appt.DogAge,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&appt.Notes,
		&appt.PriceAtBooking,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
