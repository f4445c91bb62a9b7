package booking_test

import (
	"context"
	"testing"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"
	"roomBooker/internal/storage/sqlite"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Storage {
	t.Helper()

	st, err := sqlite.New(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	return st
}

// at returns the given wall-clock time on 1 Jan 2021, UTC.
func at(hour, minute int) time.Time {
	return time.Date(2021, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func seedPerson(t *testing.T, st storage.Store, name string) int {
	t.Helper()

	id, err := booking.AddPerson(context.Background(), st, models.Person{
		Name:        name,
		DateOfBirth: time.Date(1970, time.May, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	return id
}

func seedRoom(t *testing.T, st storage.Store, name string) int {
	t.Helper()

	id, err := booking.AddRoom(context.Background(), st, models.Room{Name: name})
	require.NoError(t, err)

	return id
}

// seedBooking writes a booking straight to the store, skipping every check.
func seedBooking(t *testing.T, st storage.Store, personID, roomID int, start, end time.Time) int {
	t.Helper()

	var id int
	err := st.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		id, err = tx.InsertBooking(context.Background(), models.Booking{
			PersonID:  personID,
			RoomID:    roomID,
			StartTime: start,
			EndTime:   end,
		})
		return err
	})
	require.NoError(t, err)

	return id
}

func roomBookings(t *testing.T, st storage.Store, roomID int) []models.Booking {
	t.Helper()

	var bookings []models.Booking
	err := st.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		bookings, err = tx.BookingsByRoom(context.Background(), roomID)
		return err
	})
	require.NoError(t, err)

	return bookings
}

func personBookings(t *testing.T, st storage.Store, personID int) []models.Booking {
	t.Helper()

	var bookings []models.Booking
	err := st.InTx(context.Background(), func(tx storage.Tx) error {
		var err error
		bookings, err = tx.BookingsByPerson(context.Background(), personID)
		return err
	})
	require.NoError(t, err)

	return bookings
}

func roomIDs(rooms []models.Room) []int {
	ids := make([]int, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	return ids
}
