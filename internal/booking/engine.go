// Package booking holds the booking engine and the person/room lifecycle
// rules. Every operation takes the store explicitly and runs as one
// transaction on it.
package booking

import (
	"context"
	"fmt"
	"time"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

const (
	MinDurationMinutes = 1
	MaxDurationMinutes = 60
)

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) intersect.
// Intervals that only share an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aEnd.After(bStart) && aStart.Before(bEnd)
}

func endTime(start time.Time, durationMinutes int) time.Time {
	return start.Add(time.Duration(durationMinutes) * time.Minute)
}

// CreateBooking books roomID for personID over
// [start, start+durationMinutes) and returns the new booking id.
func CreateBooking(ctx context.Context, st storage.Store, personID, roomID int, start time.Time, durationMinutes int) (int, error) {
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return 0, fmt.Errorf("%w: must be between %d and %d minutes",
			ErrInvalidDuration, MinDurationMinutes, MaxDurationMinutes)
	}

	end := endTime(start, durationMinutes)

	var id int
	err := st.InTx(ctx, func(tx storage.Tx) error {
		ok, err := tx.PersonExists(ctx, personID)
		if err != nil {
			return fmt.Errorf("failed to check person: %w", err)
		}
		if !ok {
			return ErrPersonNotFound
		}

		ok, err = tx.RoomExists(ctx, roomID)
		if err != nil {
			return fmt.Errorf("failed to check room: %w", err)
		}
		if !ok {
			return ErrRoomNotFound
		}

		overlap, err := tx.HasOverlap(ctx, roomID, start, end)
		if err != nil {
			return fmt.Errorf("failed to check overlapping bookings: %w", err)
		}
		if overlap {
			return ErrOverlapConflict
		}

		id, err = tx.InsertBooking(ctx, models.Booking{
			PersonID:  personID,
			RoomID:    roomID,
			StartTime: start,
			EndTime:   end,
		})
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

// DeleteBooking removes the booking if it exists. Missing ids are not an error.
func DeleteBooking(ctx context.Context, st storage.Store, bookingID int) error {
	return st.InTx(ctx, func(tx storage.Tx) error {
		if err := tx.DeleteBooking(ctx, bookingID); err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
}

// FindAvailableRooms returns every room free over [start, start+durationMinutes).
// The window has no upper bound.
func FindAvailableRooms(ctx context.Context, st storage.Store, start time.Time, durationMinutes int) ([]models.Room, error) {
	if durationMinutes < MinDurationMinutes {
		return nil, fmt.Errorf("%w: search duration cannot be less than %d minute",
			ErrInvalidDuration, MinDurationMinutes)
	}

	end := endTime(start, durationMinutes)

	var rooms []models.Room
	err := st.InTx(ctx, func(tx storage.Tx) error {
		var err error
		rooms, err = tx.FreeRooms(ctx, start, end)
		if err != nil {
			return fmt.Errorf("failed to find free rooms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rooms, nil
}
