package booking_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		expected     bool
	}{
		{name: "identical", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 0), bEnd: at(10, 30), expected: true},
		{name: "partial", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 29), bEnd: at(10, 31), expected: true},
		{name: "contained", aStart: at(10, 0), aEnd: at(11, 0), bStart: at(10, 15), bEnd: at(10, 45), expected: true},
		{name: "back to back", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(10, 30), bEnd: at(11, 0), expected: false},
		{name: "disjoint", aStart: at(10, 0), aEnd: at(10, 30), bStart: at(11, 0), bEnd: at(11, 30), expected: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, booking.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			assert.Equal(t, tc.expected, booking.Overlaps(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd), "overlap must be symmetric")
		})
	}
}

func TestCreateBooking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	personID := seedPerson(t, st, "Test Person")
	roomID := seedRoom(t, st, "Room 1")

	id, err := booking.CreateBooking(ctx, st, personID, roomID, at(10, 0), 60)
	require.NoError(t, err)
	assert.Positive(t, id)

	bookings := roomBookings(t, st, roomID)
	require.Len(t, bookings, 1)
	assert.Equal(t, id, bookings[0].ID)
	assert.Equal(t, personID, bookings[0].PersonID)
	assert.True(t, at(10, 0).Equal(bookings[0].StartTime))
	assert.True(t, at(11, 0).Equal(bookings[0].EndTime))
}

func TestCreateBookingDuration(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		duration int
		valid    bool
	}{
		{duration: 0},
		{duration: 61},
		{duration: -5},
		{duration: 1, valid: true},
		{duration: 30, valid: true},
		{duration: 60, valid: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%d minutes", tc.duration), func(t *testing.T) {
			t.Parallel()

			st := newStore(t)
			personID := seedPerson(t, st, "Test Person")
			roomID := seedRoom(t, st, "Room 1")

			_, err := booking.CreateBooking(context.Background(), st, personID, roomID, at(10, 0), tc.duration)
			if tc.valid {
				assert.NoError(t, err)
				return
			}

			assert.ErrorIs(t, err, booking.ErrInvalidDuration)
			assert.EqualError(t, err, "invalid duration: must be between 1 and 60 minutes")
			assert.Empty(t, roomBookings(t, st, roomID))
		})
	}
}

func TestCreateBookingMissingReferences(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	personID := seedPerson(t, st, "Test Person")
	roomID := seedRoom(t, st, "Room 1")

	_, err := booking.CreateBooking(ctx, st, personID+100, roomID, at(10, 0), 15)
	assert.ErrorIs(t, err, booking.ErrPersonNotFound)

	_, err = booking.CreateBooking(ctx, st, personID, roomID+100, at(10, 0), 15)
	assert.ErrorIs(t, err, booking.ErrRoomNotFound)

	assert.Empty(t, roomBookings(t, st, roomID))
}

func TestCreateBookingNoDoubleBooking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	personID := seedPerson(t, st, "Test Person")
	roomID := seedRoom(t, st, "Room 1")
	otherRoomID := seedRoom(t, st, "Room 2")
	seedBooking(t, st, personID, roomID, at(10, 0), at(10, 30))

	_, err := booking.CreateBooking(ctx, st, personID, roomID, at(10, 30), 30)
	assert.NoError(t, err, "back-to-back booking must be accepted")

	_, err = booking.CreateBooking(ctx, st, personID, roomID, at(10, 29), 2)
	assert.ErrorIs(t, err, booking.ErrOverlapConflict)

	_, err = booking.CreateBooking(ctx, st, personID, otherRoomID, at(10, 29), 2)
	assert.NoError(t, err, "bookings on other rooms do not conflict")

	assert.Len(t, roomBookings(t, st, roomID), 2)
}

func TestCreateBookingJustFitsInSlot(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	personID := seedPerson(t, st, "Test Person")
	roomID := seedRoom(t, st, "Room 1")
	seedBooking(t, st, personID, roomID, at(10, 0), at(10, 30))
	seedBooking(t, st, personID, roomID, at(11, 0), at(11, 30))

	_, err := booking.CreateBooking(context.Background(), st, personID, roomID, at(10, 30), 30)
	assert.NoError(t, err)

	_, err = booking.CreateBooking(context.Background(), st, personID, roomID, at(9, 30), 31)
	assert.ErrorIs(t, err, booking.ErrOverlapConflict)
}

func TestCreateBookingConcurrent(t *testing.T) {
	t.Parallel()

	st := newStore(t)
	personID := seedPerson(t, st, "Test Person")
	roomID := seedRoom(t, st, "Room 1")

	const attempts = 10

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()

			_, err := booking.CreateBooking(context.Background(), st, personID, roomID, at(10, offset), 30)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, booking.ErrOverlapConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, conflicts)
	assert.Len(t, roomBookings(t, st, roomID), 1)
}

func TestDeleteBooking(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	personID := seedPerson(t, st, "Test Person")
	roomID := seedRoom(t, st, "Room 1")
	id := seedBooking(t, st, personID, roomID, at(10, 30), at(11, 0))

	require.NoError(t, booking.DeleteBooking(ctx, st, id))
	assert.Empty(t, roomBookings(t, st, roomID))

	assert.NoError(t, booking.DeleteBooking(ctx, st, id), "deleting a missing booking is a no-op")
}

func TestFindAvailableRooms(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newStore(t)
	personID := seedPerson(t, st, "Test Person")
	r1 := seedRoom(t, st, "Room 1")
	r2 := seedRoom(t, st, "Room 2")
	r3 := seedRoom(t, st, "Room 3")
	seedBooking(t, st, personID, r1, at(10, 0), at(10, 30))
	seedBooking(t, st, personID, r2, at(11, 0), at(11, 30))

	rooms, err := booking.FindAvailableRooms(ctx, st, at(10, 0), 60)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{r2, r3}, roomIDs(rooms))

	rooms, err = booking.FindAvailableRooms(ctx, st, at(10, 0), 240)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{r3}, roomIDs(rooms), "search windows may exceed one hour")

	rooms, err = booking.FindAvailableRooms(ctx, st, at(10, 30), 30)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{r1, r2, r3}, roomIDs(rooms), "windows touching a booking's end are free")
}

func TestFindAvailableRoomsInvalidDuration(t *testing.T) {
	t.Parallel()

	st := newStore(t)

	_, err := booking.FindAvailableRooms(context.Background(), st, at(10, 0), 0)
	assert.ErrorIs(t, err, booking.ErrInvalidDuration)
	assert.EqualError(t, err, "invalid duration: search duration cannot be less than 1 minute")
}

type failingTx struct {
	storage.Tx
	err error
}

func (f failingTx) PersonExists(context.Context, int) (bool, error) {
	return true, nil
}

func (f failingTx) RoomExists(context.Context, int) (bool, error) {
	return false, f.err
}

type failingStore struct {
	err error
}

func (f failingStore) InTx(_ context.Context, fn func(tx storage.Tx) error) error {
	return fn(failingTx{err: f.err})
}

func TestCreateBookingStoreFailure(t *testing.T) {
	t.Parallel()

	timeout := errors.New("i/o timeout")

	_, err := booking.CreateBooking(context.Background(), failingStore{err: timeout}, 1, 1, at(10, 0), 30)

	assert.ErrorIs(t, err, timeout)
	assert.NotErrorIs(t, err, booking.ErrRoomNotFound)
}
