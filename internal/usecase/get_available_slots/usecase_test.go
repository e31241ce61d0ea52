package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	groomerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/groomer"
	"github.com/shampooches/GroomingBookingService/pkg/ptr"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

type fakeAppointmentRepo struct {
	blocking []*domain.Appointment
}

func (f *fakeAppointmentRepo) ListBlockingByGroomerAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return f.blocking, nil
}

type fakeSlotRepo struct {
	slots []*domain.TimeSlot
}

func (f *fakeSlotRepo) ListActiveByGroomerAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.TimeSlot, error) {
	return f.slots, nil
}

type fakeGroomerRepo struct {
	exists bool
}

func (f *fakeGroomerRepo) GetByID(_ context.Context, id int64) (*domain.Groomer, error) {
	if !f.exists {
		return nil, groomerRepo.ErrGroomerNotFound
	}
	return &domain.Groomer{ID: id, Name: "Alex Reed", IsActive: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testDate = time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

func slotsAt(times ...types.TimeString) []*domain.TimeSlot {
	out := make([]*domain.TimeSlot, 0, len(times))
	for i, tm := range times {
		out = append(out, &domain.TimeSlot{
			ID: int64(i + 1), GroomerID: 1,
			Date: testDate, StartTime: tm, IsActive: true,
		})
	}
	return out
}

func blockingAt(tm types.TimeString, customerID int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		GroomerID: 1, CustomerID: customerID,
		Date: testDate, StartTime: tm, Status: status,
	}
}

func newUseCase(appts *fakeAppointmentRepo, slots *fakeSlotRepo, groomers *fakeGroomerRepo) *UseCase {
	return NewUseCase(appts, slots, groomers, nopLogger{})
}

func TestExecute_ReturnsSlotsInStartOrder(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{},
		&fakeSlotRepo{slots: slotsAt("09:00", "10:00", "15:00")},
		&fakeGroomerRepo{exists: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{GroomerID: 1, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[1].Time)
	assert.Equal(t, types.TimeString("15:00"), resp.Slots[2].Time)
	assert.Equal(t, "3:00 PM", resp.Slots[2].Display)
}

func TestExecute_ExcludesBlockedSlots(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{blocking: []*domain.Appointment{
			blockingAt("10:00", 42, domain.StatusConfirmed),
		}},
		&fakeSlotRepo{slots: slotsAt("09:00", "10:00")},
		&fakeGroomerRepo{exists: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{GroomerID: 1, Date: testDate})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].Time)
}

func TestExecute_SameCustomerActiveBookingDoesNotBlock(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{blocking: []*domain.Appointment{
			blockingAt("10:00", 42, domain.StatusPending),
		}},
		&fakeSlotRepo{slots: slotsAt("10:00")},
		&fakeGroomerRepo{exists: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		GroomerID: 1, Date: testDate, CustomerID: ptr.Ptr(int64(42)),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].HasSameCustomerBooking)
}

func TestExecute_SameCustomerCompletedBookingStillBlocks(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{blocking: []*domain.Appointment{
			blockingAt("10:00", 42, domain.StatusCompleted),
		}},
		&fakeSlotRepo{slots: slotsAt("10:00")},
		&fakeGroomerRepo{exists: true},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		GroomerID: 1, Date: testDate, CustomerID: ptr.Ptr(int64(42)),
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_OtherCustomerBlocksWithoutCustomerContext(t *testing.T) {
	uc := newUseCase(
		&fakeAppointmentRepo{blocking: []*domain.Appointment{
			blockingAt("10:00", 42, domain.StatusPending),
		}},
		&fakeSlotRepo{slots: slotsAt("10:00")},
		&fakeGroomerRepo{exists: true},
	)

	// No customer in the request: every blocking row blocks.
	resp, err := uc.Execute(context.Background(), &Request{GroomerID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_GroomerNotFound(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeSlotRepo{}, &fakeGroomerRepo{exists: false})

	_, err := uc.Execute(context.Background(), &Request{GroomerID: 5, Date: testDate})
	assert.ErrorIs(t, err, ErrGroomerNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeSlotRepo{}, &fakeGroomerRepo{exists: true})

	_, err := uc.Execute(context.Background(), &Request{GroomerID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{GroomerID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
