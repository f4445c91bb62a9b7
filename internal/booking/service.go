package booking

import (
	"context"
	"log/slog"
	"time"

	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

// Service binds a store and a logger to the package operations so HTTP
// handlers can depend on narrow method sets.
type Service struct {
	log   *slog.Logger
	store storage.Store
}

func NewService(log *slog.Logger, store storage.Store) *Service {
	return &Service{
		log:   log.With(slog.String("component", "booking")),
		store: store,
	}
}

func (s *Service) CreateBooking(ctx context.Context, personID, roomID int, start time.Time, durationMinutes int) (int, error) {
	id, err := CreateBooking(ctx, s.store, personID, roomID, start, durationMinutes)
	if err != nil {
		s.log.Warn("booking rejected",
			slog.Int("person_id", personID),
			slog.Int("room_id", roomID),
			slog.Time("start_time", start),
			slog.Int("duration_minutes", durationMinutes),
			sl.Err(err),
		)
		return 0, err
	}

	s.log.Info("booking created", slog.Int("booking_id", id), slog.Int("room_id", roomID))

	return id, nil
}

func (s *Service) DeleteBooking(ctx context.Context, bookingID int) error {
	return DeleteBooking(ctx, s.store, bookingID)
}

func (s *Service) FindAvailableRooms(ctx context.Context, start time.Time, durationMinutes int) ([]models.Room, error) {
	return FindAvailableRooms(ctx, s.store, start, durationMinutes)
}

func (s *Service) GetPerson(ctx context.Context, id int) (*models.Person, error) {
	return GetPerson(ctx, s.store, id)
}

func (s *Service) SearchPeople(ctx context.Context, name string) ([]models.Person, error) {
	return SearchPeople(ctx, s.store, name)
}

func (s *Service) AddPerson(ctx context.Context, p models.Person) (int, error) {
	return AddPerson(ctx, s.store, p)
}

func (s *Service) UpdatePerson(ctx context.Context, p models.Person) error {
	return UpdatePerson(ctx, s.store, p)
}

func (s *Service) DeletePerson(ctx context.Context, personID int, cascadeBookings bool) error {
	if err := DeletePerson(ctx, s.store, personID, cascadeBookings); err != nil {
		return err
	}

	s.log.Info("person deleted", slog.Int("person_id", personID), slog.Bool("cascade_bookings", cascadeBookings))

	return nil
}

func (s *Service) PersonBookings(ctx context.Context, personID int) ([]models.Booking, error) {
	return PersonBookings(ctx, s.store, personID)
}

func (s *Service) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	return GetRoom(ctx, s.store, id)
}

func (s *Service) SearchRooms(ctx context.Context, name string) ([]models.Room, error) {
	return SearchRooms(ctx, s.store, name)
}

func (s *Service) AddRoom(ctx context.Context, r models.Room) (int, error) {
	return AddRoom(ctx, s.store, r)
}

func (s *Service) UpdateRoom(ctx context.Context, r models.Room) error {
	return UpdateRoom(ctx, s.store, r)
}

func (s *Service) DeleteRoom(ctx context.Context, roomID, shiftToRoomID int) error {
	if err := DeleteRoom(ctx, s.store, roomID, shiftToRoomID); err != nil {
		return err
	}

	if shiftToRoomID > 0 {
		// Shifted bookings are not re-validated against the target room.
		s.log.Warn("room deleted, bookings shifted without overlap check",
			slog.Int("room_id", roomID), slog.Int("shift_to_room_id", shiftToRoomID))
	} else {
		s.log.Info("room deleted", slog.Int("room_id", roomID))
	}

	return nil
}

func (s *Service) RoomBookings(ctx context.Context, roomID int) ([]models.Booking, error) {
	return RoomBookings(ctx, s.store, roomID)
}
