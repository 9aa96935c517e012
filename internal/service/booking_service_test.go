package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pawcare/pet-care-booking/internal/model"
	"github.com/pawcare/pet-care-booking/internal/queue"
	"github.com/pawcare/pet-care-booking/internal/repository"
)

// ----- in-memory stores -----

type memTimeslots struct {
	mu    sync.Mutex
	slots map[uint64]*model.Timeslot
}

func newMemTimeslots(slots ...*model.Timeslot) *memTimeslots {
	m := &memTimeslots{slots: map[uint64]*model.Timeslot{}}
	for _, s := range slots {
		m.slots[s.ID] = s
	}
	return m
}

func (m *memTimeslots) GetByID(_ context.Context, id uint64) (*model.Timeslot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return nil, repository.ErrTimeslotNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memTimeslots) Reserve(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return repository.ErrTimeslotNotFound
	}
	if s.AvailableSlots == 0 {
		return repository.ErrNoCapacity
	}
	s.AvailableSlots--
	return nil
}

func (m *memTimeslots) Release(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.slots[id]
	if !ok {
		return repository.ErrTimeslotNotFound
	}
	if s.AvailableSlots < s.Capacity {
		s.AvailableSlots++
	}
	return nil
}

func (m *memTimeslots) available(id uint64) uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slots[id].AvailableSlots
}

type memBookings struct {
	mu       sync.Mutex
	nextID   uint64
	rows     map[uint64]*model.Booking
	failNext error  // returned by the next Create call
	onRebind func() // runs once before the next rebind's guard check
}

func newMemBookings() *memBookings {
	return &memBookings{nextID: 1, rows: map[uint64]*model.Booking{}}
}

func (m *memBookings) Create(_ context.Context, b *model.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	b.ID = m.nextID
	m.nextID++
	b.Status = model.StatusPending
	cp := *b
	m.rows[b.ID] = &cp
	return nil
}

func (m *memBookings) GetByID(_ context.Context, id uint64) (*model.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[id]
	if !ok {
		return nil, repository.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) UpdateStatusCAS(_ context.Context, id uint64, from, to model.BookingStatus, reason string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[id]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	if reason != "" {
		b.CancelReason = reason
	}
	return true, nil
}

func (m *memBookings) MarkCapacityReleased(_ context.Context, id uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[id]
	if !ok || b.CapacityReleased {
		return false, nil
	}
	b.CapacityReleased = true
	return true, nil
}

func (m *memBookings) RebindTimeslot(_ context.Context, id, timeslotID uint64) (bool, error) {
	m.mu.Lock()
	hook := m.onRebind
	m.onRebind = nil
	m.mu.Unlock()
	if hook != nil {
		hook()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.rows[id]
	if !ok {
		return false, repository.ErrBookingNotFound
	}
	if b.CapacityReleased {
		return false, nil
	}
	b.TimeslotID = timeslotID
	return true, nil
}

func (m *memBookings) Delete(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return repository.ErrBookingNotFound
	}
	delete(m.rows, id)
	return nil
}

type memPets struct {
	pets map[uint64]*model.Pet
}

func (m *memPets) GetByIDForUser(_ context.Context, petID, userID uint64) (*model.Pet, error) {
	p, ok := m.pets[petID]
	if !ok || p.UserID != userID {
		return nil, repository.ErrPetNotFound
	}
	return p, nil
}

func (m *memPets) FindByOwnerAndName(_ context.Context, userID uint64, name string) (*model.Pet, error) {
	for _, p := range m.pets {
		if p.UserID == userID && p.Name == name {
			return p, nil
		}
	}
	return nil, repository.ErrPetNotFound
}

type memServices struct {
	services map[uint64]*model.Service
}

func (m *memServices) GetByID(_ context.Context, id uint64) (*model.Service, error) {
	s, ok := m.services[id]
	if !ok {
		return nil, repository.ErrServiceNotFound
	}
	return s, nil
}

type memNotifications struct {
	mu   sync.Mutex
	rows []model.Notification
}

func (m *memNotifications) Create(_ context.Context, n *model.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, *n)
	return nil
}

type memVaccinations struct {
	mu   sync.Mutex
	rows []model.VaccinationHistory
}

func (m *memVaccinations) Create(_ context.Context, h *model.VaccinationHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.BookingID == h.BookingID {
			return errors.New("duplicate booking_id")
		}
	}
	m.rows = append(m.rows, *h)
	return nil
}

type memPublisher struct {
	mu     sync.Mutex
	events []queue.BookingEvent
}

func (m *memPublisher) Publish(_ context.Context, ev queue.BookingEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

// ----- fixture -----

type fixture struct {
	svc       *BookingService
	timeslots *memTimeslots
	bookings  *memBookings
	pets      *memPets
	services  *memServices
	notifs    *memNotifications
	vaccs     *memVaccinations
	pub       *memPublisher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		timeslots: newMemTimeslots(
			&model.Timeslot{ID: 1, Hour: 9, Capacity: 2, AvailableSlots: 2},
			&model.Timeslot{ID: 2, Hour: 10, Capacity: 1, AvailableSlots: 1},
			&model.Timeslot{ID: 3, Hour: 11, Capacity: 1, AvailableSlots: 0},
		),
		bookings: newMemBookings(),
		pets: &memPets{pets: map[uint64]*model.Pet{
			7: {ID: 7, UserID: 42, Name: "Rex", Species: "dog", Breed: "beagle", Age: 3, Weight: 11.5},
		}},
		services: &memServices{services: map[uint64]*model.Service{
			1: {ID: 1, Name: "Grooming", PriceCents: 3000, IsActive: true},
			2: {ID: 2, Name: "Rabies vaccine", PriceCents: 5000, IsVaccine: true, IsActive: true},
			3: {ID: 3, Name: "Retired", PriceCents: 1000, IsActive: false},
		}},
		notifs: &memNotifications{},
		vaccs:  &memVaccinations{},
		pub:    &memPublisher{},
	}
	f.svc = NewBookingService(f.bookings, f.timeslots, f.pets, f.services,
		f.notifs, f.vaccs, f.pub, zap.NewNop())
	f.svc.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func (f *fixture) create(t *testing.T, in CreateInput) *model.Booking {
	t.Helper()
	b, err := f.svc.Create(context.Background(), 42, in)
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

func validInput() CreateInput {
	return CreateInput{
		ServiceID:       1,
		TimeslotID:      1,
		AppointmentDate: time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
		PetInfo:         model.PetInfo{PetName: "Milo", Species: "cat", Breed: "tabby", Age: 2, Weight: 4.2},
		CustomerName:    "Jo Walker",
		Phone:           "555-0101",
		Email:           "jo@example.com",
	}
}

// ----- tests -----

func TestCreateReservesCapacity(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	if b.Status != model.StatusPending {
		t.Errorf("status = %s, want %s", b.Status, model.StatusPending)
	}
	if got := f.timeslots.available(1); got != 1 {
		t.Errorf("available = %d, want 1", got)
	}
	if len(f.notifs.rows) != 1 {
		t.Fatalf("notifications = %d, want 1", len(f.notifs.rows))
	}
	n := f.notifs.rows[0]
	if n.Type != model.NotificationBooking || n.UserID != nil {
		t.Errorf("want admin booking notification, got type=%s user=%v", n.Type, n.UserID)
	}
	if len(f.pub.events) != 1 || f.pub.events[0].Action != queue.ActionCreated {
		t.Errorf("want one created event, got %+v", f.pub.events)
	}
}

func TestCreateFromPetProfileSnapshotsPet(t *testing.T) {
	f := newFixture(t)
	petID := uint64(7)
	in := validInput()
	in.PetID = &petID
	in.PetInfo = model.PetInfo{Notes: "nervous around strangers"}

	b := f.create(t, in)
	if b.PetInfo.PetName != "Rex" || b.PetInfo.Species != "dog" {
		t.Errorf("snapshot = %+v, want copied from profile", b.PetInfo)
	}
	if b.PetInfo.Notes != "nervous around strangers" {
		t.Errorf("notes = %q, want request notes kept", b.PetInfo.Notes)
	}
}

func TestCreateRejectsFullSlot(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.TimeslotID = 3

	_, err := f.svc.Create(context.Background(), 42, in)
	if !errors.Is(err, repository.ErrNoCapacity) {
		t.Fatalf("err = %v, want ErrNoCapacity", err)
	}
	if got := f.timeslots.available(3); got != 0 {
		t.Errorf("available = %d, want 0", got)
	}
	if len(f.bookings.rows) != 0 {
		t.Errorf("bookings = %d, want 0", len(f.bookings.rows))
	}
}

func TestCreateReleasesCapacityOnInsertFailure(t *testing.T) {
	f := newFixture(t)
	f.bookings.failNext = errors.New("insert failed")

	_, err := f.svc.Create(context.Background(), 42, validInput())
	if err == nil {
		t.Fatal("want error from failed insert")
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("available = %d, want 2 after compensation", got)
	}
}

func TestCreateRejectsIncompletePetInfo(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.PetInfo = model.PetInfo{PetName: "Milo", Species: "cat"} // missing breed/age/weight

	if _, err := f.svc.Create(context.Background(), 42, in); !errors.Is(err, ErrPetInfoIncomplete) {
		t.Fatalf("err = %v, want ErrPetInfoIncomplete", err)
	}
}

func TestCreateRejectsInactiveService(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.ServiceID = 3

	if _, err := f.svc.Create(context.Background(), 42, in); !errors.Is(err, ErrServiceInactive) {
		t.Fatalf("err = %v, want ErrServiceInactive", err)
	}
}

func TestCreateDateWindow(t *testing.T) {
	cases := []struct {
		name string
		date time.Time
		want error
	}{
		{"yesterday", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), ErrDateInPast},
		{"today", time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), nil},
		{"today later hour", time.Date(2026, 8, 31, 23, 30, 0, 0, time.UTC), nil},
		{"three months out", time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), nil},
		{"past the window", time.Date(2026, 12, 2, 0, 0, 0, 0, time.UTC), ErrDateTooFar},
		{"next year", time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), ErrDateTooFar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			in := validInput()
			in.AppointmentDate = tc.date
			_, err := f.svc.Create(context.Background(), 42, in)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestCancelReleasesCapacityOnce(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())
	ctx := context.Background()

	if err := f.svc.Cancel(ctx, 42, b.ID, "changed plans"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("available = %d, want 2 after cancel", got)
	}

	// Terminal now; a second cancel must not touch the counter.
	if err := f.svc.Cancel(ctx, 42, b.ID, "again"); !errors.Is(err, ErrTerminalState) {
		t.Fatalf("second cancel err = %v, want ErrTerminalState", err)
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("available = %d, want 2 unchanged", got)
	}
}

func TestCancelRejectsNonOwner(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	if err := f.svc.Cancel(context.Background(), 99, b.ID, "not mine"); !errors.Is(err, repository.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCancelThenDeleteReleasesOnce(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())
	ctx := context.Background()

	if err := f.svc.Cancel(ctx, 42, b.ID, "changed plans"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := f.svc.Delete(ctx, 42, b.ID, false); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("available = %d, want 2: delete after cancel must not release again", got)
	}
}

func TestDeleteActiveBookingReleases(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	if err := f.svc.Delete(context.Background(), 42, b.ID, false); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("available = %d, want 2 after delete", got)
	}
	if _, err := f.bookings.GetByID(context.Background(), b.ID); !errors.Is(err, repository.ErrBookingNotFound) {
		t.Errorf("booking still present after delete")
	}
}

func TestUpdateStatusTerminalRejected(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())
	ctx := context.Background()

	if err := f.svc.UpdateStatus(ctx, b.ID, model.StatusCompleted, ""); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if err := f.svc.UpdateStatus(ctx, b.ID, model.StatusProcessing, ""); !errors.Is(err, ErrTerminalState) {
		t.Fatalf("err = %v, want ErrTerminalState", err)
	}
	if err := f.svc.UpdateStatus(ctx, b.ID, model.StatusCancel, "late"); !errors.Is(err, ErrTerminalState) {
		t.Fatalf("err = %v, want ErrTerminalState", err)
	}
}

func TestUpdateStatusInvalidTarget(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	if err := f.svc.UpdateStatus(context.Background(), b.ID, "Archived", ""); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusProcessingNotifiesOwner(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	if err := f.svc.UpdateStatus(context.Background(), b.ID, model.StatusProcessing, ""); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if got := f.timeslots.available(1); got != 1 {
		t.Errorf("available = %d, want 1: confirmation must not touch capacity", got)
	}
	var found bool
	for _, n := range f.notifs.rows {
		if n.UserID != nil && *n.UserID == 42 && n.Type == model.NotificationBooking {
			found = true
		}
	}
	if !found {
		t.Errorf("no confirmation notification for owner, got %+v", f.notifs.rows)
	}
}

func TestUpdateStatusCancelNotifiesOwnerAndReleases(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	if err := f.svc.UpdateStatus(context.Background(), b.ID, model.StatusCancel, "clinic closed"); err != nil {
		t.Fatalf("cancel via status: %v", err)
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("available = %d, want 2", got)
	}
	var found bool
	for _, n := range f.notifs.rows {
		if n.Type == model.NotificationCancellation && n.UserID != nil && *n.UserID == 42 {
			found = true
		}
	}
	if !found {
		t.Errorf("no cancellation notification for owner, got %+v", f.notifs.rows)
	}
}

func TestCompletionRecordsVaccinationOnce(t *testing.T) {
	f := newFixture(t)
	petID := uint64(7)
	in := validInput()
	in.ServiceID = 2 // vaccine service
	in.PetID = &petID
	b := f.create(t, in)

	if err := f.svc.UpdateStatus(context.Background(), b.ID, model.StatusCompleted, ""); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(f.vaccs.rows) != 1 {
		t.Fatalf("vaccination rows = %d, want 1", len(f.vaccs.rows))
	}
	h := f.vaccs.rows[0]
	if h.PetID != 7 || h.BookingID != b.ID || h.ServiceID != 2 {
		t.Errorf("history = %+v", h)
	}
	var completion bool
	for _, n := range f.notifs.rows {
		if n.Type == model.NotificationCompletion {
			completion = true
		}
	}
	if !completion {
		t.Errorf("no completion notification, got %+v", f.notifs.rows)
	}
}

func TestCompletionVaccinationFallsBackToNameMatch(t *testing.T) {
	f := newFixture(t)
	in := validInput()
	in.ServiceID = 2
	in.PetInfo = model.PetInfo{PetName: "Rex", Species: "dog", Breed: "beagle", Age: 3, Weight: 11.5} // inline, matches profile by name
	b := f.create(t, in)

	if err := f.svc.UpdateStatus(context.Background(), b.ID, model.StatusCompleted, ""); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(f.vaccs.rows) != 1 || f.vaccs.rows[0].PetID != 7 {
		t.Fatalf("vaccination rows = %+v, want one for pet 7", f.vaccs.rows)
	}
}

func TestCompletionNonVaccineSkipsHistory(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput()) // grooming

	if err := f.svc.UpdateStatus(context.Background(), b.ID, model.StatusCompleted, ""); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if len(f.vaccs.rows) != 0 {
		t.Errorf("vaccination rows = %d, want 0", len(f.vaccs.rows))
	}
}

func TestChangeTimeslotIsCapacityNeutral(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput()) // slot 1

	if err := f.svc.ChangeTimeslot(context.Background(), 42, b.ID, 2, false); err != nil {
		t.Fatalf("change timeslot: %v", err)
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("old slot available = %d, want 2", got)
	}
	if got := f.timeslots.available(2); got != 0 {
		t.Errorf("new slot available = %d, want 0", got)
	}
	moved, _ := f.bookings.GetByID(context.Background(), b.ID)
	if moved.TimeslotID != 2 {
		t.Errorf("timeslot_id = %d, want 2", moved.TimeslotID)
	}
}

func TestChangeTimeslotFullTargetFailsCleanly(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	err := f.svc.ChangeTimeslot(context.Background(), 42, b.ID, 3, false)
	if !errors.Is(err, repository.ErrNoCapacity) {
		t.Fatalf("err = %v, want ErrNoCapacity", err)
	}
	if got := f.timeslots.available(1); got != 1 {
		t.Errorf("old slot available = %d, want 1: booking keeps its place", got)
	}
	kept, _ := f.bookings.GetByID(context.Background(), b.ID)
	if kept.TimeslotID != 1 {
		t.Errorf("timeslot_id = %d, want 1", kept.TimeslotID)
	}
}

func TestCancelDuringMoveKeepsCapacityPaired(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput()) // slot 1
	ctx := context.Background()

	// The owner cancels between the move's read and its rebind.
	f.bookings.onRebind = func() {
		if err := f.svc.Cancel(ctx, 42, b.ID, "changed plans"); err != nil {
			t.Errorf("cancel during move: %v", err)
		}
	}

	err := f.svc.ChangeTimeslot(ctx, 42, b.ID, 2, false)
	if !errors.Is(err, repository.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	// The cancel returned the old place once; the move handed its claim
	// on the new slot back. Neither slot is released twice or leaked.
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("old slot available = %d, want 2", got)
	}
	if got := f.timeslots.available(2); got != 1 {
		t.Errorf("new slot available = %d, want 1", got)
	}
	cur, _ := f.bookings.GetByID(ctx, b.ID)
	if cur.Status != model.StatusCancel || cur.TimeslotID != 1 {
		t.Errorf("booking = status %s slot %d, want Cancel on slot 1", cur.Status, cur.TimeslotID)
	}
}

func TestCancelAfterMoveReleasesNewSlot(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput()) // slot 1
	ctx := context.Background()

	if err := f.svc.ChangeTimeslot(ctx, 42, b.ID, 2, false); err != nil {
		t.Fatalf("change timeslot: %v", err)
	}
	if err := f.svc.Cancel(ctx, 42, b.ID, "changed plans"); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if got := f.timeslots.available(1); got != 2 {
		t.Errorf("old slot available = %d, want 2", got)
	}
	if got := f.timeslots.available(2); got != 1 {
		t.Errorf("new slot available = %d, want 1: cancel must free the current slot", got)
	}
}

func TestChangeTimeslotSameSlotRejected(t *testing.T) {
	f := newFixture(t)
	b := f.create(t, validInput())

	if err := f.svc.ChangeTimeslot(context.Background(), 42, b.ID, 1, false); !errors.Is(err, ErrSameTimeslot) {
		t.Fatalf("err = %v, want ErrSameTimeslot", err)
	}
}

func TestConcurrentCreatesNeverOversell(t *testing.T) {
	f := newFixture(t)
	const attempts = 20 // slot 1 has capacity 2

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Create(context.Background(), 42, validInput())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, full int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, repository.ErrNoCapacity):
			full++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 2 || full != attempts-2 {
		t.Errorf("succeeded = %d, full = %d; want exactly 2 and %d", succeeded, full, attempts-2)
	}
	if got := f.timeslots.available(1); got != 0 {
		t.Errorf("available = %d, want 0", got)
	}
}
