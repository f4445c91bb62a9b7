package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

func GetRoom(ctx context.Context, st storage.Store, id int) (*models.Room, error) {
	var room *models.Room
	err := st.InTx(ctx, func(tx storage.Tx) error {
		var err error
		room, err = tx.GetRoom(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get room: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return room, nil
}

func SearchRooms(ctx context.Context, st storage.Store, name string) ([]models.Room, error) {
	if name == "" {
		return nil, ErrEmptySearch
	}

	var rooms []models.Room
	err := st.InTx(ctx, func(tx storage.Tx) error {
		var err error
		rooms, err = tx.SearchRooms(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to search rooms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rooms, nil
}

// AddRoom rejects a name already used by an existing room.
func AddRoom(ctx context.Context, st storage.Store, r models.Room) (int, error) {
	if strings.TrimSpace(r.Name) == "" {
		return 0, ErrInvalidName
	}
	r.ID = 0

	var id int
	err := st.InTx(ctx, func(tx storage.Tx) error {
		exists, err := tx.RoomNameExists(ctx, r.Name)
		if err != nil {
			return fmt.Errorf("failed to check room name: %w", err)
		}
		if exists {
			return ErrRoomExists
		}

		id, err = tx.InsertRoom(ctx, r)
		if err != nil {
			return fmt.Errorf("failed to insert room: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateRoom renames a room. Name uniqueness is only checked on creation.
func UpdateRoom(ctx context.Context, st storage.Store, r models.Room) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrInvalidName
	}

	return st.InTx(ctx, func(tx storage.Tx) error {
		err := tx.UpdateRoom(ctx, r)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRoomNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}
		return nil
	})
}

// DeleteRoom removes a room. With shiftToRoomID <= 0 its bookings are
// deleted; otherwise they are moved to shiftToRoomID, which must exist.
// Moved bookings are not checked against the target room's own bookings,
// so the target may end up with overlapping bookings.
func DeleteRoom(ctx context.Context, st storage.Store, roomID, shiftToRoomID int) error {
	return st.InTx(ctx, func(tx storage.Tx) error {
		ok, err := tx.RoomExists(ctx, roomID)
		if err != nil {
			return fmt.Errorf("failed to check room: %w", err)
		}
		if !ok {
			return nil
		}

		if shiftToRoomID > 0 {
			if shiftToRoomID == roomID {
				return fmt.Errorf("%w: cannot shift bookings onto the room being deleted", ErrShiftTargetNotFound)
			}

			ok, err = tx.RoomExists(ctx, shiftToRoomID)
			if err != nil {
				return fmt.Errorf("failed to check shift target room: %w", err)
			}
			if !ok {
				return ErrShiftTargetNotFound
			}

			if _, err = tx.MoveBookings(ctx, roomID, shiftToRoomID); err != nil {
				return fmt.Errorf("failed to shift bookings: %w", err)
			}
		} else {
			if _, err = tx.DeleteBookingsByRoom(ctx, roomID); err != nil {
				return fmt.Errorf("failed to delete room bookings: %w", err)
			}
		}

		if err = tx.DeleteRoom(ctx, roomID); err != nil {
			return fmt.Errorf("failed to delete room: %w", err)
		}

		return nil
	})
}

func RoomBookings(ctx context.Context, st storage.Store, roomID int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := st.InTx(ctx, func(tx storage.Tx) error {
		ok, err := tx.RoomExists(ctx, roomID)
		if err != nil {
			return fmt.Errorf("failed to check room: %w", err)
		}
		if !ok {
			return ErrRoomNotFound
		}

		bookings, err = tx.BookingsByRoom(ctx, roomID)
		if err != nil {
			return fmt.Errorf("failed to list room bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
