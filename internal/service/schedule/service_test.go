package schedule

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	"github.com/shampooches/GroomingBookingService/internal/infra/storage/groomer"
	"github.com/shampooches/GroomingBookingService/internal/infra/storage/timeslot"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

type fakeSlotRepo struct {
	existing map[string]bool
	byID     map[int64]*domain.TimeSlot
	nextID   int64

	created     []*domain.TimeSlot
	deleted     []int64
	deactivated []int64
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{
		existing: make(map[string]bool),
		byID:     make(map[int64]*domain.TimeSlot),
		nextID:   1,
	}
}

func slotKey(groomerID int64, date time.Time, start types.TimeString) string {
	return fmt.Sprintf("%d/%s/%s", groomerID, date.Format(domain.DateFormat), start)
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.TimeSlot) (*domain.TimeSlot, error) {
	key := slotKey(slot.GroomerID, slot.Date, slot.StartTime)
	if f.existing[key] {
		return nil, timeslot.ErrSlotExists
	}
	f.existing[key] = true

	slot.ID = f.nextID
	f.nextID++
	f.byID[slot.ID] = slot
	f.created = append(f.created, slot)

	return slot, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.TimeSlot, error) {
	slot, ok := f.byID[id]
	if !ok {
		return nil, timeslot.ErrSlotNotFound
	}
	return slot, nil
}

func (f *fakeSlotRepo) Deactivate(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return timeslot.ErrSlotNotFound
	}
	f.byID[id].IsActive = false
	f.deactivated = append(f.deactivated, id)
	return nil
}

func (f *fakeSlotRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return timeslot.ErrSlotNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeAppointmentRepo struct {
	occupied map[string]bool
}

func (f *fakeAppointmentRepo) HasBlockingAppointment(
	_ context.Context,
	groomerID int64,
	date time.Time,
	startTime types.TimeString,
	_ *int64,
) (bool, error) {
	return f.occupied[slotKey(groomerID, date, startTime)], nil
}

type fakeGroomerRepo struct {
	groomers map[int64]*domain.Groomer
}

func (f *fakeGroomerRepo) GetByID(_ context.Context, id int64) (*domain.Groomer, error) {
	g, ok := f.groomers[id]
	if !ok {
		return nil, groomer.ErrGroomerNotFound
	}
	return g, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(slots *fakeSlotRepo, appts *fakeAppointmentRepo) *Service {
	groomers := &fakeGroomerRepo{groomers: map[int64]*domain.Groomer{
		1: {ID: 1, Name: "Sam", IsActive: true},
	}}
	return NewService(slots, appts, groomers, nopLogger{})
}

func TestCreateSlots_CreatesAll(t *testing.T) {
	slots := newFakeSlotRepo()
	svc := newService(slots, &fakeAppointmentRepo{occupied: map[string]bool{}})

	resp, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		GroomerID: 1,
		Date:      "2026-03-12",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:00", EndTime: "11:00"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Created, 2)
	assert.Equal(t, 0, resp.Skipped)
	assert.True(t, resp.Created[0].IsActive)
}

func TestCreateSlots_SkipsDuplicates(t *testing.T) {
	slots := newFakeSlotRepo()
	svc := newService(slots, &fakeAppointmentRepo{occupied: map[string]bool{}})

	_, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		GroomerID: 1,
		Date:      "2026-03-12",
		Slots:     []SlotInput{{StartTime: "09:00", EndTime: "10:00"}},
	})
	require.NoError(t, err)

	// Re-submitting the template must not fail.
	resp, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		GroomerID: 1,
		Date:      "2026-03-12",
		Slots: []SlotInput{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "10:00", EndTime: "11:00"},
		},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Created, 1)
	assert.Equal(t, 1, resp.Skipped)
}

func TestCreateSlots_ValidationErrors(t *testing.T) {
	svc := newService(newFakeSlotRepo(), &fakeAppointmentRepo{occupied: map[string]bool{}})

	cases := []struct {
		name string
		req  CreateSlotsRequest
	}{
		{
			name: "missing groomer id",
			req:  CreateSlotsRequest{Date: "2026-03-12", Slots: []SlotInput{{StartTime: "09:00", EndTime: "10:00"}}},
		},
		{
			name: "missing date",
			req:  CreateSlotsRequest{GroomerID: 1, Slots: []SlotInput{{StartTime: "09:00", EndTime: "10:00"}}},
		},
		{
			name: "bad date format",
			req:  CreateSlotsRequest{GroomerID: 1, Date: "12.03.2026", Slots: []SlotInput{{StartTime: "09:00", EndTime: "10:00"}}},
		},
		{
			name: "no slots",
			req:  CreateSlotsRequest{GroomerID: 1, Date: "2026-03-12"},
		},
		{
			name: "start not before end",
			req:  CreateSlotsRequest{GroomerID: 1, Date: "2026-03-12", Slots: []SlotInput{{StartTime: "10:00", EndTime: "10:00"}}},
		},
		{
			name: "invalid start time",
			req:  CreateSlotsRequest{GroomerID: 1, Date: "2026-03-12", Slots: []SlotInput{{StartTime: "9am", EndTime: "10:00"}}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateSlots(context.Background(), tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateSlots_GroomerNotFound(t *testing.T) {
	svc := newService(newFakeSlotRepo(), &fakeAppointmentRepo{occupied: map[string]bool{}})

	_, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		GroomerID: 99,
		Date:      "2026-03-12",
		Slots:     []SlotInput{{StartTime: "09:00", EndTime: "10:00"}},
	})

	assert.ErrorIs(t, err, ErrGroomerNotFound)
}

func TestDeleteSlot_RefusedWhenBooked(t *testing.T) {
	slots := newFakeSlotRepo()
	date, _ := time.Parse(domain.DateFormat, "2026-03-12")
	slot, err := slots.Create(context.Background(), &domain.TimeSlot{
		GroomerID: 1,
		Date:      date,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
		IsActive:  true,
	})
	require.NoError(t, err)

	appts := &fakeAppointmentRepo{occupied: map[string]bool{
		slotKey(1, date, slot.StartTime): true,
	}}
	svc := newService(slots, appts)

	err = svc.DeleteSlot(context.Background(), slot.ID)

	assert.ErrorIs(t, err, ErrSlotHasBooking)
	assert.Empty(t, slots.deleted)
}

func TestDeleteSlot_RemovesFreeSlot(t *testing.T) {
	slots := newFakeSlotRepo()
	date, _ := time.Parse(domain.DateFormat, "2026-03-12")
	slot, err := slots.Create(context.Background(), &domain.TimeSlot{
		GroomerID: 1,
		Date:      date,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
		IsActive:  true,
	})
	require.NoError(t, err)

	svc := newService(slots, &fakeAppointmentRepo{occupied: map[string]bool{}})

	err = svc.DeleteSlot(context.Background(), slot.ID)

	require.NoError(t, err)
	assert.Equal(t, []int64{slot.ID}, slots.deleted)
}

func TestDeleteSlot_NotFound(t *testing.T) {
	svc := newService(newFakeSlotRepo(), &fakeAppointmentRepo{occupied: map[string]bool{}})

	err := svc.DeleteSlot(context.Background(), 42)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestDeactivateSlot_RefusedWhenBooked(t *testing.T) {
	slots := newFakeSlotRepo()
	date, _ := time.Parse(domain.DateFormat, "2026-03-12")
	slot, err := slots.Create(context.Background(), &domain.TimeSlot{
		GroomerID: 1,
		Date:      date,
		StartTime: types.TimeString("14:00"),
		EndTime:   types.TimeString("15:00"),
		IsActive:  true,
	})
	require.NoError(t, err)

	appts := &fakeAppointmentRepo{occupied: map[string]bool{
		slotKey(1, date, slot.StartTime): true,
	}}
	svc := newService(slots, appts)

	err = svc.DeactivateSlot(context.Background(), slot.ID)

	assert.ErrorIs(t, err, ErrSlotHasBooking)
	assert.True(t, slots.byID[slot.ID].IsActive)
}

func TestDeactivateSlot_HidesFreeSlot(t *testing.T) {
	slots := newFakeSlotRepo()
	date, _ := time.Parse(domain.DateFormat, "2026-03-12")
	slot, err := slots.Create(context.Background(), &domain.TimeSlot{
		GroomerID: 1,
		Date:      date,
		StartTime: types.TimeString("14:00"),
		EndTime:   types.TimeString("15:00"),
		IsActive:  true,
	})
	require.NoError(t, err)

	svc := newService(slots, &fakeAppointmentRepo{occupied: map[string]bool{}})

	err = svc.DeactivateSlot(context.Background(), slot.ID)

	require.NoError(t, err)
	assert.False(t, slots.byID[slot.ID].IsActive)
}
