package admit_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shampooches/GroomingBookingService/internal/domain"
	breedRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/breed"
	customerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/customer"
	groomerRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/groomer"
	serviceRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/service"
	siteconfigRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/siteconfig"
	timeslotRepo "github.com/shampooches/GroomingBookingService/internal/infra/storage/timeslot"
	"github.com/shampooches/GroomingBookingService/pkg/ptr"
	"github.com/shampooches/GroomingBookingService/pkg/types"
)

// ---- fakes -------------------------------------------------------------

type fakeAppointmentRepo struct {
	created     []*domain.Appointment
	blocking    bool
	occupiedBy  int64 // customer holding an active appointment at the slot
	lastExclude *int64
	activeCount int
	nextID      int64
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	f.nextID++
	appt.ID = f.nextID
	appt.CreatedAt = time.Now()
	appt.UpdatedAt = appt.CreatedAt
	f.created = append(f.created, appt)
	return appt, nil
}

func (f *fakeAppointmentRepo) HasBlockingAppointment(_ context.Context, _ int64, _ time.Time, _ types.TimeString, excludeCustomerID *int64) (bool, error) {
	f.lastExclude = excludeCustomerID
	if f.occupiedBy != 0 {
		if excludeCustomerID != nil && *excludeCustomerID == f.occupiedBy {
			return false, nil
		}
		return true, nil
	}
	return f.blocking, nil
}

func (f *fakeAppointmentRepo) CountActiveByCustomerAndDate(_ context.Context, _ int64, _ time.Time) (int, error) {
	return f.activeCount, nil
}

type fakeCustomerRepo struct {
	byUserID map[int64]*domain.Customer
	byEmail  map[string]*domain.Customer
	created  []*domain.Customer
	updates  int
}

func (f *fakeCustomerRepo) GetByUserID(_ context.Context, userID int64) (*domain.Customer, error) {
	if c, ok := f.byUserID[userID]; ok {
		return c, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) GetByEmail(_ context.Context, email string) (*domain.Customer, error) {
	if c, ok := f.byEmail[email]; ok {
		return c, nil
	}
	return nil, customerRepo.ErrCustomerNotFound
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *domain.Customer) (*domain.Customer, error) {
	c.ID = int64(100 + len(f.created))
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCustomerRepo) UpdateContactInfo(_ context.Context, _ int64, _, _ string) error {
	f.updates++
	return nil
}

type fakeSlotRepo struct {
	slot *domain.TimeSlot
}

func (f *fakeSlotRepo) GetByGroomerDateTime(_ context.Context, _ int64, _ time.Time, _ types.TimeString) (*domain.TimeSlot, error) {
	if f.slot == nil {
		return nil, timeslotRepo.ErrSlotNotFound
	}
	return f.slot, nil
}

type fakeBreedRepo struct {
	breed *domain.Breed
}

func (f *fakeBreedRepo) GetByID(_ context.Context, _ int64) (*domain.Breed, error) {
	if f.breed == nil {
		return nil, breedRepo.ErrBreedNotFound
	}
	return f.breed, nil
}

type fakeServiceRepo struct {
	service  *domain.Service
	override *domain.BreedServiceOverride
}

func (f *fakeServiceRepo) GetByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.service == nil {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return f.service, nil
}

func (f *fakeServiceRepo) GetOverride(_ context.Context, _, _ int64) (*domain.BreedServiceOverride, error) {
	if f.override == nil {
		return nil, serviceRepo.ErrOverrideNotFound
	}
	return f.override, nil
}

type fakeGroomerRepo struct {
	groomers map[int64]*domain.Groomer
}

func (f *fakeGroomerRepo) GetByID(_ context.Context, id int64) (*domain.Groomer, error) {
	if g, ok := f.groomers[id]; ok {
		return g, nil
	}
	return nil, groomerRepo.ErrGroomerNotFound
}

type fakeSiteConfigRepo struct {
	cfg *domain.SiteConfig
}

func (f *fakeSiteConfigRepo) GetActive(_ context.Context) (*domain.SiteConfig, error) {
	if f.cfg == nil {
		return nil, siteconfigRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ---- fixtures ----------------------------------------------------------

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

var testNow = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

type deps struct {
	appointments *fakeAppointmentRepo
	customers    *fakeCustomerRepo
	slots        *fakeSlotRepo
	breeds       *fakeBreedRepo
	services     *fakeServiceRepo
	groomers     *fakeGroomerRepo
	siteConfig   *fakeSiteConfigRepo
}

func newDeps() *deps {
	return &deps{
		appointments: &fakeAppointmentRepo{},
		customers: &fakeCustomerRepo{
			byUserID: map[int64]*domain.Customer{
				7: {ID: 1, UserID: ptr.Ptr(int64(7)), Name: "Dana Miller", Email: "dana@example.com", Phone: "555-0101"},
			},
			byEmail: map[string]*domain.Customer{},
		},
		slots: &fakeSlotRepo{
			slot: &domain.TimeSlot{
				ID: 1, GroomerID: 1,
				Date:      testNow.AddDate(0, 0, 1),
				StartTime: "10:00", EndTime: "11:00",
				IsActive: true,
			},
		},
		breeds: &fakeBreedRepo{
			breed: &domain.Breed{
				ID: 1, Name: "Golden Retriever",
				BasePrice:       decPtr("50.00"),
				StartWeight:     decPtr("15"),
				WeightIncrement: decPtr("10"),
				IncrementPrice:  decPtr("15.00"),
				IsActive:        true,
			},
		},
		services: &fakeServiceRepo{
			service: &domain.Service{
				ID: 1, Name: "Teeth Brushing",
				Price:       dec("20.00"),
				PricingMode: domain.PricingBaseRequired,
				IsActive:    true,
			},
		},
		groomers: &fakeGroomerRepo{
			groomers: map[int64]*domain.Groomer{
				1: {ID: 1, Name: "Alex Reed", IsActive: true},
			},
		},
		siteConfig: &fakeSiteConfigRepo{},
	}
}

func newUseCase(d *deps) *UseCase {
	uc := NewUseCase(
		d.appointments,
		d.customers,
		d.slots,
		d.breeds,
		d.services,
		d.groomers,
		d.siteConfig,
		&fakeTxManager{},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:        ptr.Ptr(int64(7)),
		CustomerName:  "Dana Miller",
		CustomerPhone: "555-0101",
		ServiceID:     1,
		BreedID:       1,
		GroomerID:     1,
		DogName:       "Biscuit",
		DogWeight:     dec("35.0"),
		DogAge:        "4 years",
		Date:          testNow.AddDate(0, 0, 1),
		StartTime:     "10:00",
	}
}

// ---- tests -------------------------------------------------------------

func TestExecute_AdmitsPendingAppointmentWithPriceSnapshot(t *testing.T) {
	d := newDeps()
	uc := newUseCase(d)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	// base 50 + two full increments above 15 lbs (35 lbs) = 30 + service 20
	assert.True(t, resp.PriceAtBooking.Equal(dec("100.00")),
		"want 100.00, got %s", resp.PriceAtBooking)
	require.Len(t, d.appointments.created, 1)
	assert.Equal(t, int64(1), d.appointments.created[0].CustomerID)
}

func TestExecute_PriceSnapshotSurvivesCatalogChanges(t *testing.T) {
	d := newDeps()
	uc := newUseCase(d)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, d.appointments.created, 1)

	// Reprice the catalog after admission; the stored snapshot must not move.
	d.breeds.breed.BasePrice = decPtr("500.00")
	d.breeds.breed.IncrementPrice = decPtr("99.00")
	d.services.service.Price = dec("80.00")

	assert.True(t, d.appointments.created[0].PriceAtBooking.Equal(dec("100.00")),
		"want 100.00, got %s", d.appointments.created[0].PriceAtBooking)
	assert.True(t, resp.PriceAtBooking.Equal(dec("100.00")))
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"blank customer name", func(r *Request) { r.CustomerName = "  " }},
		{"blank phone", func(r *Request) { r.CustomerPhone = "" }},
		{"blank dog name", func(r *Request) { r.DogName = "" }},
		{"blank dog age", func(r *Request) { r.DogAge = "   " }},
		{"zero weight", func(r *Request) { r.DogWeight = dec("0") }},
		{"negative weight", func(r *Request) { r.DogWeight = dec("-5") }},
		{"guest without email", func(r *Request) { r.UserID = nil; r.CustomerEmail = "" }},
		{"malformed time", func(r *Request) { r.StartTime = "25:99" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeps()
			uc := newUseCase(d)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, d.appointments.created)
		})
	}
}

func TestExecute_PastDate(t *testing.T) {
	d := newDeps()
	uc := newUseCase(d)

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_SameDayIsNotPast(t *testing.T) {
	d := newDeps()
	uc := newUseCase(d)

	req := validRequest()
	req.Date = testNow

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_InactiveService(t *testing.T) {
	d := newDeps()
	d.services.service.IsActive = false
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInactiveService)
}

func TestExecute_InactiveGroomer(t *testing.T) {
	d := newDeps()
	d.groomers.groomers[1].IsActive = false
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInactiveGroomer)
}

func TestExecute_SlotNotFound(t *testing.T) {
	d := newDeps()
	d.slots.slot = nil
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_InactiveSlot(t *testing.T) {
	d := newDeps()
	d.slots.slot.IsActive = false
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotConflict(t *testing.T) {
	d := newDeps()
	d.appointments.blocking = true
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, d.appointments.created)
}

func TestExecute_ConflictCheckExcludesOwnAppointments(t *testing.T) {
	d := newDeps()
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.NotNil(t, d.appointments.lastExclude, "conflict check must carry the customer exclusion")
	assert.Equal(t, int64(1), *d.appointments.lastExclude)
}

func TestExecute_MultiDogSameSlot(t *testing.T) {
	t.Run("own active hold does not block a second dog", func(t *testing.T) {
		d := newDeps()
		d.appointments.occupiedBy = 1 // the resolved customer's own appointment
		uc := newUseCase(d)

		req := validRequest()
		req.DogName = "Waffles"

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, d.appointments.created, 1)
		assert.Equal(t, "Waffles", d.appointments.created[0].DogName)
	})

	t.Run("another customer's hold conflicts", func(t *testing.T) {
		d := newDeps()
		d.appointments.occupiedBy = 2
		uc := newUseCase(d)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotConflict)
		assert.Empty(t, d.appointments.created)
	})
}

func TestExecute_CapExceededWithDefaultLimit(t *testing.T) {
	d := newDeps()
	d.appointments.activeCount = domain.DefaultMaxBookingsPerCustomerPerDay
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCapExceeded)
}

func TestExecute_CapFromSiteConfig(t *testing.T) {
	d := newDeps()
	d.siteConfig.cfg = &domain.SiteConfig{ID: 1, MaxBookingsPerCustomerPerDay: 1, IsActive: true}
	d.appointments.activeCount = 1
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCapExceeded)
}

func TestExecute_UnderCapIsAdmitted(t *testing.T) {
	d := newDeps()
	d.appointments.activeCount = domain.DefaultMaxBookingsPerCustomerPerDay - 1
	uc := newUseCase(d)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_GuestCustomerIsCreated(t *testing.T) {
	d := newDeps()
	uc := newUseCase(d)

	req := validRequest()
	req.UserID = nil
	req.CustomerEmail = "guest@example.com"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, d.customers.created, 1)
	assert.Equal(t, "guest@example.com", d.customers.created[0].Email)
	assert.Equal(t, d.customers.created[0].ID, resp.CustomerID)
}

func TestExecute_LinkedCustomerContactRefresh(t *testing.T) {
	d := newDeps()
	uc := newUseCase(d)

	req := validRequest()
	req.CustomerPhone = "555-0199"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, d.customers.updates)
}

func TestExecute_StandaloneOverridePrice(t *testing.T) {
	d := newDeps()
	d.services.service = &domain.Service{
		ID: 2, Name: "Bath & Brush",
		Price:       dec("40.00"),
		PricingMode: domain.PricingStandalone,
		IsActive:    true,
	}
	d.services.override = &domain.BreedServiceOverride{
		BreedID: 1, ServiceID: 2,
		Price: dec("55.00"), IsAvailable: true,
	}
	uc := newUseCase(d)

	req := validRequest()
	req.ServiceID = 2
	req.DogWeight = dec("10") // below start weight, no surcharge

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.PriceAtBooking.Equal(dec("55.00")), "got %s", resp.PriceAtBooking)
}

func TestExecute_EntityNotFound(t *testing.T) {
	t.Run("groomer", func(t *testing.T) {
		d := newDeps()
		uc := newUseCase(d)
		req := validRequest()
		req.GroomerID = 99
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrGroomerNotFound)
	})

	t.Run("breed", func(t *testing.T) {
		d := newDeps()
		d.breeds.breed = nil
		uc := newUseCase(d)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrBreedNotFound)
	})

	t.Run("service", func(t *testing.T) {
		d := newDeps()
		d.services.service = nil
		uc := newUseCase(d)
		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("customer for linked user", func(t *testing.T) {
		d := newDeps()
		uc := newUseCase(d)
		req := validRequest()
		req.UserID = ptr.Ptr(int64(404))
		req.CustomerEmail = "someone@example.com"
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestExecute_PreferredGroomer(t *testing.T) {
	t.Run("inactive preferred groomer is rejected", func(t *testing.T) {
		d := newDeps()
		d.groomers.groomers[2] = &domain.Groomer{ID: 2, Name: "Sam Ortiz", IsActive: false}
		uc := newUseCase(d)

		req := validRequest()
		req.PreferredGroomerID = ptr.Ptr(int64(2))

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInactiveGroomer)
	})

	t.Run("preferred groomer is stored", func(t *testing.T) {
		d := newDeps()
		d.groomers.groomers[2] = &domain.Groomer{ID: 2, Name: "Sam Ortiz", IsActive: true}
		uc := newUseCase(d)

		req := validRequest()
		req.PreferredGroomerID = ptr.Ptr(int64(2))

		resp, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, resp.PreferredGroomerID)
		assert.Equal(t, int64(2), *resp.PreferredGroomerID)
	})
}
