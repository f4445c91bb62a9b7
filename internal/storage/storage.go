// Package storage defines the entity store the booking core runs against.
package storage

import (
	"context"
	"errors"
	"time"

	"roomBooker/internal/models"
)

var ErrNotFound = errors.New("not found")

// Store runs fn inside a single transaction. A nil return from fn commits,
// anything else rolls back and is returned unchanged.
type Store interface {
	InTx(ctx context.Context, fn func(tx Tx) error) error
}

type Tx interface {
	PersonExists(ctx context.Context, id int) (bool, error)
	GetPerson(ctx context.Context, id int) (*models.Person, error)
	SearchPeople(ctx context.Context, name string) ([]models.Person, error)
	InsertPerson(ctx context.Context, p models.Person) (int, error)
	UpdatePerson(ctx context.Context, p models.Person) error
	DeletePerson(ctx context.Context, id int) error

	RoomExists(ctx context.Context, id int) (bool, error)
	RoomNameExists(ctx context.Context, name string) (bool, error)
	GetRoom(ctx context.Context, id int) (*models.Room, error)
	SearchRooms(ctx context.Context, name string) ([]models.Room, error)
	InsertRoom(ctx context.Context, r models.Room) (int, error)
	UpdateRoom(ctx context.Context, r models.Room) error
	DeleteRoom(ctx context.Context, id int) error

	InsertBooking(ctx context.Context, b models.Booking) (int, error)
	DeleteBooking(ctx context.Context, id int) error
	BookingsByPerson(ctx context.Context, personID int) ([]models.Booking, error)
	BookingsByRoom(ctx context.Context, roomID int) ([]models.Booking, error)
	DeleteBookingsByPerson(ctx context.Context, personID int) (int64, error)
	DeleteBookingsByRoom(ctx context.Context, roomID int) (int64, error)
	MoveBookings(ctx context.Context, fromRoomID, toRoomID int) (int64, error)

	// HasOverlap reports whether any booking on roomID intersects [start, end).
	HasOverlap(ctx context.Context, roomID int, start, end time.Time) (bool, error)
	// FreeRooms returns rooms with no booking intersecting [start, end), by id.
	FreeRooms(ctx context.Context, start, end time.Time) ([]models.Room, error)
}
