package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"
)

// truncateToDate drops the time of day, keeping the calendar date as written.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func GetPerson(ctx context.Context, st storage.Store, id int) (*models.Person, error) {
	var person *models.Person
	err := st.InTx(ctx, func(tx storage.Tx) error {
		var err error
		person, err = tx.GetPerson(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPersonNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get person: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return person, nil
}

// SearchPeople matches name as a case-insensitive substring.
func SearchPeople(ctx context.Context, st storage.Store, name string) ([]models.Person, error) {
	if name == "" {
		return nil, ErrEmptySearch
	}

	var people []models.Person
	err := st.InTx(ctx, func(tx storage.Tx) error {
		var err error
		people, err = tx.SearchPeople(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to search people: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return people, nil
}

func AddPerson(ctx context.Context, st storage.Store, p models.Person) (int, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, ErrInvalidName
	}
	p.ID = 0
	p.DateOfBirth = truncateToDate(p.DateOfBirth)

	var id int
	err := st.InTx(ctx, func(tx storage.Tx) error {
		var err error
		id, err = tx.InsertPerson(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to insert person: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func UpdatePerson(ctx context.Context, st storage.Store, p models.Person) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidName
	}
	p.DateOfBirth = truncateToDate(p.DateOfBirth)

	return st.InTx(ctx, func(tx storage.Tx) error {
		err := tx.UpdatePerson(ctx, p)
		if errors.Is(err, storage.ErrNotFound) {
			return ErrPersonNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to update person: %w", err)
		}
		return nil
	})
}

// DeletePerson removes the person. A person with bookings is only removed
// when cascadeBookings is set, in which case the bookings go with it in the
// same transaction. Missing persons are not an error.
func DeletePerson(ctx context.Context, st storage.Store, personID int, cascadeBookings bool) error {
	return st.InTx(ctx, func(tx storage.Tx) error {
		ok, err := tx.PersonExists(ctx, personID)
		if err != nil {
			return fmt.Errorf("failed to check person: %w", err)
		}
		if !ok {
			return nil
		}

		bookings, err := tx.BookingsByPerson(ctx, personID)
		if err != nil {
			return fmt.Errorf("failed to list person bookings: %w", err)
		}

		if len(bookings) > 0 {
			if !cascadeBookings {
				return ErrPersonHasBookings
			}
			if _, err = tx.DeleteBookingsByPerson(ctx, personID); err != nil {
				return fmt.Errorf("failed to delete person bookings: %w", err)
			}
		}

		if err = tx.DeletePerson(ctx, personID); err != nil {
			return fmt.Errorf("failed to delete person: %w", err)
		}

		return nil
	})
}

func PersonBookings(ctx context.Context, st storage.Store, personID int) ([]models.Booking, error) {
	var bookings []models.Booking
	err := st.InTx(ctx, func(tx storage.Tx) error {
		ok, err := tx.PersonExists(ctx, personID)
		if err != nil {
			return fmt.Errorf("failed to check person: %w", err)
		}
		if !ok {
			return ErrPersonNotFound
		}

		bookings, err = tx.BookingsByPerson(ctx, personID)
		if err != nil {
			return fmt.Errorf("failed to list person bookings: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
