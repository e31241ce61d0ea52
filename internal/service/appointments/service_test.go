package appointments

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	appointmentRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/appointment"
	"github.com/shampooches/GroomingBookingService/internal/service/appointments/models"
)

type fakeRepo struct {
	appt    *domain.Appointment
	updated []domain.AppointmentStatus
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.appt == nil || f.appt.ID != id {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *f.appt
	return &cp, nil
}

func (f *fakeRepo) ListByCustomer(_ context.Context, _ int64) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appt}, nil
}

func (f *fakeRepo) ListByGroomerAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Appointment, error) {
	return []*domain.Appointment{f.appt}, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	f.updated = append(f.updated, status)
	f.appt.Status = status
	return nil
}

type recordingNotifier struct {
	mu      sync.Mutex
	changes []domain.StatusChange
	done    chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 8)}
}

func (n *recordingNotifier) NotifyStatusChange(_ *domain.Appointment, change domain.StatusChange) {
	n.mu.Lock()
	n.changes = append(n.changes, change)
	n.mu.Unlock()
	n.done <- struct{}{}
}

func (n *recordingNotifier) wait(t *testing.T) domain.StatusChange {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.changes[len(n.changes)-1]
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:         1,
		CustomerID: 10,
		GroomerID:  1,
		Status:     domain.StatusPending,
	}
}

func newService(repo *fakeRepo, n Notifier) *Service {
	return NewService(repo, n, passthroughTx{}, nopLogger{})
}

func TestUpdateStatus_LegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		to   string
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed"},
		{"pending to cancelled", domain.StatusPending, "cancelled"},
		{"confirmed to completed", domain.StatusConfirmed, "completed"},
		{"confirmed to cancelled", domain.StatusConfirmed, "cancelled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{appt: pendingAppointment()}
			repo.appt.Status = tt.from
			notifier := newRecordingNotifier()
			svc := newService(repo, notifier)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			require.NoError(t, err)

			assert.Equal(t, string(tt.from), resp.PreviousStatus)
			assert.Equal(t, tt.to, resp.NewStatus)
			require.Len(t, repo.updated, 1)
		})
	}
}

func TestUpdateStatus_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.AppointmentStatus
		to   string
	}{
		{"pending straight to completed", domain.StatusPending, "completed"},
		{"completed is terminal", domain.StatusCompleted, "cancelled"},
		{"cancelled is terminal", domain.StatusCancelled, "confirmed"},
		{"confirmed back to pending", domain.StatusConfirmed, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{appt: pendingAppointment()}
			repo.appt.Status = tt.from
			svc := newService(repo, newRecordingNotifier())

			_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, repo.updated)
		})
	}
}

func TestUpdateStatus_LeavesBookedPriceUntouched(t *testing.T) {
	repo := &fakeRepo{appt: pendingAppointment()}
	repo.appt.PriceAtBooking = decimal.RequireFromString("100.00")
	svc := newService(repo, newRecordingNotifier())

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, repo.appt.Status)
	assert.True(t, repo.appt.PriceAtBooking.Equal(decimal.RequireFromString("100.00")),
		"status transitions must not touch the price snapshot")
}

func TestUpdateStatus_NotifierReceivesExplicitChange(t *testing.T) {
	repo := &fakeRepo{appt: pendingAppointment()}
	notifier := newRecordingNotifier()
	svc := newService(repo, notifier)

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	change := notifier.wait(t)
	assert.Equal(t, int64(1), change.AppointmentID)
	assert.Equal(t, domain.StatusPending, change.Previous)
	assert.Equal(t, domain.StatusConfirmed, change.New)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	repo := &fakeRepo{appt: pendingAppointment()}
	svc := newService(repo, newRecordingNotifier())

	_, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo := &fakeRepo{appt: pendingAppointment()}
	svc := newService(repo, newRecordingNotifier())

	_, err := svc.UpdateStatus(context.Background(), 99, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
