package booking

import "errors"

var (
	ErrInvalidDuration = errors.New("invalid duration")

	ErrPersonNotFound = errors.New("person not found")

	ErrRoomNotFound = errors.New("room not found")

	ErrShiftTargetNotFound = errors.New("shift to room not found")

	ErrOverlapConflict = errors.New("overlaps existing booking")

	ErrPersonHasBookings = errors.New("person has bookings")

	ErrRoomExists = errors.New("room already exists")

	ErrEmptySearch = errors.New("search name cannot be empty")

	ErrInvalidName = errors.New("name cannot be empty")
)
