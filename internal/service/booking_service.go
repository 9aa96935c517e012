// Package service implements the booking lifecycle: every state
// transition of a booking and every timeslot capacity movement runs
// through BookingService. Handlers never touch the capacity counter or
// the status column directly.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pawcare/pet-care-booking/internal/model"
	"github.com/pawcare/pet-care-booking/internal/queue"
	"github.com/pawcare/pet-care-booking/internal/repository"
)

// Errors returned by the lifecycle operations. Handlers translate them
// into HTTP status codes.
var (
	// ErrTerminalState rejects any transition out of Completed or Cancel.
	ErrTerminalState = errors.New("booking is in a terminal state")
	// ErrInvalidStatus rejects unknown target statuses.
	ErrInvalidStatus = errors.New("invalid booking status")
	// ErrDateInPast rejects appointment dates before today.
	ErrDateInPast = errors.New("appointment date is in the past")
	// ErrDateTooFar rejects appointment dates more than three months out.
	ErrDateTooFar = errors.New("appointment date is more than three months ahead")
	// ErrPetInfoIncomplete rejects inline bookings with missing pet fields.
	ErrPetInfoIncomplete = errors.New("pet name, species, breed, age and weight are required")
	// ErrServiceInactive rejects bookings for a deactivated service.
	ErrServiceInactive = errors.New("service is not available")
	// ErrSameTimeslot rejects a move to the timeslot already booked.
	ErrSameTimeslot = errors.New("booking already uses this timeslot")
)

// maxAdvanceMonths bounds how far ahead an appointment may be booked.
const maxAdvanceMonths = 3

// Narrow store interfaces over the repository layer. The lifecycle only
// depends on what it calls, which keeps the test doubles small.

type TimeslotStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Timeslot, error)
	Reserve(ctx context.Context, id uint64) error
	Release(ctx context.Context, id uint64) error
}

type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (*model.Booking, error)
	UpdateStatusCAS(ctx context.Context, id uint64, from, to model.BookingStatus, cancelReason string) (bool, error)
	MarkCapacityReleased(ctx context.Context, id uint64) (bool, error)
	RebindTimeslot(ctx context.Context, id, timeslotID uint64) (bool, error)
	Delete(ctx context.Context, id uint64) error
}

type PetStore interface {
	GetByIDForUser(ctx context.Context, petID, userID uint64) (*model.Pet, error)
	FindByOwnerAndName(ctx context.Context, userID uint64, name string) (*model.Pet, error)
}

type ServiceStore interface {
	GetByID(ctx context.Context, id uint64) (*model.Service, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *model.Notification) error
}

type VaccinationStore interface {
	Create(ctx context.Context, h *model.VaccinationHistory) error
}

type EventPublisher interface {
	Publish(ctx context.Context, ev queue.BookingEvent) error
}

// BookingService owns the booking state machine. Notifications, event
// publishing and vaccination history are best-effort side effects: when
// one fails the transition still stands and the failure is logged.
type BookingService struct {
	bookings  BookingStore
	timeslots TimeslotStore
	pets      PetStore
	services  ServiceStore
	notifs    NotificationStore
	vaccs     VaccinationStore
	events    EventPublisher
	log       *zap.Logger
	now       func() time.Time
}

// NewBookingService wires the lifecycle over its stores.
func NewBookingService(
	bookings BookingStore,
	timeslots TimeslotStore,
	pets PetStore,
	services ServiceStore,
	notifs NotificationStore,
	vaccs VaccinationStore,
	events EventPublisher,
	log *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		timeslots: timeslots,
		pets:      pets,
		services:  services,
		notifs:    notifs,
		vaccs:     vaccs,
		events:    events,
		log:       log,
		now:       time.Now,
	}
}

// CreateInput carries everything needed to create a booking. Either
// PetID references one of the caller's pet profiles, or PetInfo is an
// inline snapshot with at least name and species set.
type CreateInput struct {
	ServiceID       uint64
	TimeslotID      uint64
	AppointmentDate time.Time
	PetID           *uint64
	PetInfo         model.PetInfo
	CustomerName    string
	Phone           string
	Email           string
	Address         string
}

// validateDate checks the appointment day against the booking window:
// today through three months ahead, compared date-only in UTC.
func (s *BookingService) validateDate(date time.Time) error {
	today := truncateToDay(s.now().UTC())
	day := truncateToDay(date)
	if day.Before(today) {
		return ErrDateInPast
	}
	if day.After(today.AddDate(0, maxAdvanceMonths, 0)) {
		return ErrDateTooFar
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// inlinePetInfoComplete requires the full snapshot for bookings made
// without a pet profile; notes stay optional.
func inlinePetInfoComplete(p model.PetInfo) bool {
	return strings.TrimSpace(p.PetName) != "" &&
		strings.TrimSpace(p.Species) != "" &&
		strings.TrimSpace(p.Breed) != "" &&
		p.Age > 0 && p.Weight > 0
}

// Create books a service at a timeslot. The slot place is claimed with
// a conditional decrement before the booking row is written; if the
// insert then fails the place is released again, so a failed create
// never leaks capacity.
func (s *BookingService) Create(ctx context.Context, userID uint64, in CreateInput) (*model.Booking, error) {
	if err := s.validateDate(in.AppointmentDate); err != nil {
		return nil, err
	}

	svc, err := s.services.GetByID(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, ErrServiceInactive
	}

	petInfo := in.PetInfo
	petID := in.PetID
	if petID != nil {
		pet, err := s.pets.GetByIDForUser(ctx, *petID, userID)
		if err != nil {
			return nil, err
		}
		petInfo = model.PetInfo{
			PetName: pet.Name,
			Species: pet.Species,
			Breed:   pet.Breed,
			Age:     pet.Age,
			Weight:  pet.Weight,
			Notes:   in.PetInfo.Notes,
		}
	} else if !inlinePetInfoComplete(petInfo) {
		return nil, ErrPetInfoIncomplete
	}

	slot, err := s.timeslots.GetByID(ctx, in.TimeslotID)
	if err != nil {
		return nil, err
	}
	if err := s.timeslots.Reserve(ctx, in.TimeslotID); err != nil {
		return nil, err
	}

	b := &model.Booking{
		UserID:          userID,
		PetID:           petID,
		ServiceID:       in.ServiceID,
		TimeslotID:      in.TimeslotID,
		AppointmentDate: truncateToDay(in.AppointmentDate),
		CustomerName:    in.CustomerName,
		Phone:           in.Phone,
		Email:           in.Email,
		Address:         in.Address,
		PetInfo:         petInfo,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		// Hand the claimed place back before failing the request.
		if relErr := s.timeslots.Release(ctx, in.TimeslotID); relErr != nil {
			s.log.Error("release after failed create", zap.Error(relErr),
				zap.Uint64("timeslot_id", in.TimeslotID))
		}
		return nil, err
	}

	s.notifyAdmin(ctx, model.NotificationBooking, b.ID, fmt.Sprintf(
		"New booking #%d: %s for %s on %s at %02d:00 by %s",
		b.ID, svc.Name, petInfo.PetName, b.AppointmentDate.Format("2006-01-02"), slot.Hour, b.CustomerName))
	s.publish(ctx, queue.ActionCreated, b, svc.Name, slot.Hour)

	return b, nil
}

// Cancel is the self-service path: the booking owner cancels their own
// non-terminal booking. The slot place is returned exactly once via the
// capacity_released flag.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID uint64, reason string) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return repository.ErrForbidden
	}
	if b.Status.Terminal() {
		return ErrTerminalState
	}

	ok, err := s.bookings.UpdateStatusCAS(ctx, bookingID, b.Status, model.StatusCancel, reason)
	if err != nil {
		return err
	}
	if !ok {
		// Someone moved the booking between our read and the update.
		return repository.ErrConflict
	}

	s.releaseCapacity(ctx, b)

	s.notifyAdmin(ctx, model.NotificationBookingCancel, b.ID, fmt.Sprintf(
		"Booking #%d cancelled by %s: %s", b.ID, b.CustomerName, reason))
	s.publishStatus(ctx, queue.ActionCancelled, b, model.StatusCancel)
	return nil
}

// UpdateStatus is the privileged transition used by staff. Terminal
// states reject further updates. Moving to Cancel returns the slot
// place and notifies the owner; moving to Completed notifies the owner
// and, for the vaccine service, appends a vaccination history record.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uint64, target model.BookingStatus, reason string) error {
	if !target.Valid() {
		return ErrInvalidStatus
	}
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Status.Terminal() {
		return ErrTerminalState
	}
	if b.Status == target {
		return nil
	}

	ok, err := s.bookings.UpdateStatusCAS(ctx, bookingID, b.Status, target, reason)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrConflict
	}

	switch target {
	case model.StatusProcessing:
		s.notifyUser(ctx, b.UserID, model.NotificationBooking, b.ID, fmt.Sprintf(
			"Your booking #%d on %s is confirmed.",
			b.ID, b.AppointmentDate.Format("2006-01-02")))
	case model.StatusCancel:
		s.releaseCapacity(ctx, b)
		s.notifyUser(ctx, b.UserID, model.NotificationCancellation, b.ID, fmt.Sprintf(
			"Your booking #%d on %s was cancelled: %s",
			b.ID, b.AppointmentDate.Format("2006-01-02"), reason))
	case model.StatusCompleted:
		s.notifyUser(ctx, b.UserID, model.NotificationCompletion, b.ID, fmt.Sprintf(
			"Your booking #%d on %s is completed. Thank you for visiting!",
			b.ID, b.AppointmentDate.Format("2006-01-02")))
		s.recordVaccination(ctx, b)
	}

	s.publishStatus(ctx, queue.ActionStatusChanged, b, target)
	return nil
}

// ChangeTimeslot moves a non-terminal booking to another slot. The new
// place is claimed first; only after the booking points at the new slot
// is the old place returned, so the booking holds exactly one place at
// every moment and a full target slot fails the move cleanly.
func (s *BookingService) ChangeTimeslot(ctx context.Context, userID, bookingID, newTimeslotID uint64, admin bool) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !admin && b.UserID != userID {
		return repository.ErrForbidden
	}
	if b.Status.Terminal() {
		return ErrTerminalState
	}
	if b.TimeslotID == newTimeslotID {
		return ErrSameTimeslot
	}

	if err := s.timeslots.Reserve(ctx, newTimeslotID); err != nil {
		return err
	}
	ok, err := s.bookings.RebindTimeslot(ctx, bookingID, newTimeslotID)
	if err != nil || !ok {
		if relErr := s.timeslots.Release(ctx, newTimeslotID); relErr != nil {
			s.log.Error("release after failed rebind", zap.Error(relErr),
				zap.Uint64("timeslot_id", newTimeslotID))
		}
		if err != nil {
			return err
		}
		// A cancel or delete took the booking's place back mid-move.
		return repository.ErrConflict
	}
	if err := s.timeslots.Release(ctx, b.TimeslotID); err != nil {
		s.log.Error("release old timeslot after move", zap.Error(err),
			zap.Uint64("timeslot_id", b.TimeslotID))
	}

	s.publishStatus(ctx, queue.ActionTimeslotChanged, b, b.Status)
	return nil
}

// Delete removes a booking row. A still-active booking has its slot
// place returned first; a cancelled one already gave it back, and the
// capacity_released flag keeps the two paths from double counting.
func (s *BookingService) Delete(ctx context.Context, userID, bookingID uint64, admin bool) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !admin && b.UserID != userID {
		return repository.ErrForbidden
	}

	s.releaseCapacity(ctx, b)

	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return err
	}
	s.publishStatus(ctx, queue.ActionDeleted, b, b.Status)
	return nil
}

// releaseCapacity returns the booking's slot place at most once. The
// flag flip is the decision point: only the caller that wins it
// touches the counter.
func (s *BookingService) releaseCapacity(ctx context.Context, b *model.Booking) {
	won, err := s.bookings.MarkCapacityReleased(ctx, b.ID)
	if err != nil {
		s.log.Error("mark capacity released", zap.Error(err), zap.Uint64("booking_id", b.ID))
		return
	}
	if !won {
		return
	}
	// A move may have rebound the booking since b was read; return the
	// place it holds now, not the one it held then.
	tsID := b.TimeslotID
	if cur, err := s.bookings.GetByID(ctx, b.ID); err == nil {
		tsID = cur.TimeslotID
	}
	if err := s.timeslots.Release(ctx, tsID); err != nil {
		s.log.Error("release timeslot", zap.Error(err),
			zap.Uint64("booking_id", b.ID), zap.Uint64("timeslot_id", tsID))
	}
}

// recordVaccination appends a history record when a completed booking
// was for the vaccine service. The booking's live pet reference wins;
// inline bookings fall back to a name match among the owner's pets.
// Failures are logged and swallowed, and the unique key on booking_id
// keeps a replayed completion from inserting twice.
func (s *BookingService) recordVaccination(ctx context.Context, b *model.Booking) {
	svc, err := s.services.GetByID(ctx, b.ServiceID)
	if err != nil {
		s.log.Error("load service for vaccination record", zap.Error(err),
			zap.Uint64("booking_id", b.ID))
		return
	}
	if !svc.IsVaccine {
		return
	}

	var petID uint64
	if b.PetID != nil {
		petID = *b.PetID
	} else {
		pet, err := s.pets.FindByOwnerAndName(ctx, b.UserID, b.PetInfo.PetName)
		if err != nil {
			s.log.Warn("no pet profile for vaccination record",
				zap.Uint64("booking_id", b.ID), zap.String("pet_name", b.PetInfo.PetName))
			return
		}
		petID = pet.ID
	}

	h := &model.VaccinationHistory{
		UserID:         b.UserID,
		PetID:          petID,
		BookingID:      b.ID,
		ServiceID:      b.ServiceID,
		AdministeredOn: b.AppointmentDate,
		Notes:          b.PetInfo.Notes,
	}
	if err := s.vaccs.Create(ctx, h); err != nil {
		s.log.Error("append vaccination history", zap.Error(err), zap.Uint64("booking_id", b.ID))
	}
}

func (s *BookingService) notifyAdmin(ctx context.Context, typ string, bookingID uint64, msg string) {
	n := &model.Notification{Type: typ, Message: msg, BookingID: bookingID}
	if err := s.notifs.Create(ctx, n); err != nil {
		s.log.Error("create admin notification", zap.Error(err), zap.Uint64("booking_id", bookingID))
	}
}

func (s *BookingService) notifyUser(ctx context.Context, userID uint64, typ string, bookingID uint64, msg string) {
	n := &model.Notification{Type: typ, Message: msg, BookingID: bookingID, UserID: &userID}
	if err := s.notifs.Create(ctx, n); err != nil {
		s.log.Error("create user notification", zap.Error(err),
			zap.Uint64("booking_id", bookingID), zap.Uint64("user_id", userID))
	}
}

func (s *BookingService) publish(ctx context.Context, action string, b *model.Booking, serviceName string, hour uint8) {
	ev := queue.NewBookingEvent(action, b.ID, b.UserID)
	ev.ServiceName = serviceName
	ev.TimeslotHour = hour
	ev.AppointmentDate = b.AppointmentDate.Format("2006-01-02")
	ev.Status = string(b.Status)
	ev.PetName = b.PetInfo.PetName
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("publish booking event", zap.Error(err), zap.Uint64("booking_id", b.ID))
	}
}

func (s *BookingService) publishStatus(ctx context.Context, action string, b *model.Booking, status model.BookingStatus) {
	ev := queue.NewBookingEvent(action, b.ID, b.UserID)
	ev.AppointmentDate = b.AppointmentDate.Format("2006-01-02")
	ev.Status = string(status)
	ev.PetName = b.PetInfo.PetName
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn("publish booking event", zap.Error(err), zap.Uint64("booking_id", b.ID))
	}
}
