package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"roomBooker/internal/models"
	"roomBooker/internal/storage"

	_ "modernc.org/sqlite"
)

const (
	MemoryPath = ":memory:"
	dateLayout = "2006-01-02"
)

//go:embed schema.sql
var schema string

var (
	_ storage.Store = (*Storage)(nil)
	_ storage.Tx    = (*tx)(nil)
)

// Storage keeps instants as UTC unix nanoseconds and dates as YYYY-MM-DD text.
// The pool holds one connection, so transactions never interleave.
type Storage struct {
	DB *sql.DB
}

func New(path string) (*Storage, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)

	if _, err = db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	sqlTx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	if err = fn(&tx{tx: sqlTx}); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type tx struct {
	tx *sql.Tx
}

func toNanos(t time.Time) int64 {
	return t.UTC().UnixNano()
}

func fromNanos(n int64) time.Time {
	return time.Unix(0, n).UTC()
}

func (t *tx) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (t *tx) PersonExists(ctx context.Context, id int) (bool, error) {
	exists, err := t.exists(ctx, `SELECT EXISTS(SELECT 1 FROM people WHERE id = ?)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check person: %w", err)
	}
	return exists, nil
}

func (t *tx) GetPerson(ctx context.Context, id int) (*models.Person, error) {
	var (
		person models.Person
		dob    string
	)

	err := t.tx.QueryRowContext(ctx,
		`SELECT id, name, date_of_birth FROM people WHERE id = ?`, id,
	).Scan(&person.ID, &person.Name, &dob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	if person.DateOfBirth, err = time.Parse(dateLayout, dob); err != nil {
		return nil, fmt.Errorf("failed to parse date of birth: %w", err)
	}

	return &person, nil
}

func (t *tx) SearchPeople(ctx context.Context, name string) ([]models.Person, error) {
	rows, err := t.tx.QueryContext(ctx, `
		SELECT id, name, date_of_birth
		FROM people
		WHERE instr(upper(name), upper(?)) > 0
		ORDER BY id`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search people: %w", err)
	}
	defer rows.Close()

	people := make([]models.Person, 0)
	for rows.Next() {
		var (
			person models.Person
			dob    string
		)
		if err = rows.Scan(&person.ID, &person.Name, &dob); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if person.DateOfBirth, err = time.Parse(dateLayout, dob); err != nil {
			return nil, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		people = append(people, person)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}

	return people, nil
}

func (t *tx) InsertPerson(ctx context.Context, p models.Person) (int, error) {
	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO people (name, date_of_birth) VALUES (?, ?)`,
		p.Name, p.DateOfBirth.Format(dateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert person: %w", err)
	}

	return lastInsertID(res)
}

func (t *tx) UpdatePerson(ctx context.Context, p models.Person) error {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE people SET name = ?, date_of_birth = ? WHERE id = ?`,
		p.Name, p.DateOfBirth.Format(dateLayout), p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	return requireAffected(res)
}

func (t *tx) DeletePerson(ctx context.Context, id int) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

func (t *tx) RoomExists(ctx context.Context, id int) (bool, error) {
	exists, err := t.exists(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = ?)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check room: %w", err)
	}
	return exists, nil
}

func (t *tx) RoomNameExists(ctx context.Context, name string) (bool, error) {
	exists, err := t.exists(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE name = ?)`, name)
	if err != nil {
		return false, fmt.Errorf("failed to check room name: %w", err)
	}
	return exists, nil
}

func (t *tx) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	var room models.Room

	err := t.tx.QueryRowContext(ctx, `SELECT id, name FROM rooms WHERE id = ?`, id).Scan(&room.ID, &room.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (t *tx) SearchRooms(ctx context.Context, name string) ([]models.Room, error) {
	return t.queryRooms(ctx, `
		SELECT id, name
		FROM rooms
		WHERE instr(upper(name), upper(?)) > 0
		ORDER BY id`, name)
}

func (t *tx) FreeRooms(ctx context.Context, start, end time.Time) ([]models.Room, error) {
	return t.queryRooms(ctx, `
		SELECT r.id, r.name
		FROM rooms r
		WHERE NOT EXISTS (
			SELECT 1 FROM room_bookings b
			WHERE b.room_id = r.id AND b.end_time > ? AND b.start_time < ?
		)
		ORDER BY r.id`, toNanos(start), toNanos(end))
}

func (t *tx) queryRooms(ctx context.Context, query string, args ...any) ([]models.Room, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]models.Room, 0)
	for rows.Next() {
		var room models.Room
		if err = rows.Scan(&room.ID, &room.Name); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return rooms, nil
}

func (t *tx) InsertRoom(ctx context.Context, r models.Room) (int, error) {
	res, err := t.tx.ExecContext(ctx, `INSERT INTO rooms (name) VALUES (?)`, r.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to insert room: %w", err)
	}

	return lastInsertID(res)
}

func (t *tx) UpdateRoom(ctx context.Context, r models.Room) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE rooms SET name = ? WHERE id = ?`, r.Name, r.ID)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	return requireAffected(res)
}

func (t *tx) DeleteRoom(ctx context.Context, id int) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

func (t *tx) InsertBooking(ctx context.Context, b models.Booking) (int, error) {
	res, err := t.tx.ExecContext(ctx,
		`INSERT INTO room_bookings (person_id, room_id, start_time, end_time) VALUES (?, ?, ?, ?)`,
		b.PersonID, b.RoomID, toNanos(b.StartTime), toNanos(b.EndTime),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert booking: %w", err)
	}

	return lastInsertID(res)
}

func (t *tx) DeleteBooking(ctx context.Context, id int) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM room_bookings WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (t *tx) BookingsByPerson(ctx context.Context, personID int) ([]models.Booking, error) {
	return t.queryBookings(ctx, `
		SELECT id, person_id, room_id, start_time, end_time
		FROM room_bookings
		WHERE person_id = ?
		ORDER BY start_time, id`, personID)
}

func (t *tx) BookingsByRoom(ctx context.Context, roomID int) ([]models.Booking, error) {
	return t.queryBookings(ctx, `
		SELECT id, person_id, room_id, start_time, end_time
		FROM room_bookings
		WHERE room_id = ?
		ORDER BY start_time, id`, roomID)
}

func (t *tx) queryBookings(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var (
			b          models.Booking
			start, end int64
		)
		if err = rows.Scan(&b.ID, &b.PersonID, &b.RoomID, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		b.StartTime = fromNanos(start)
		b.EndTime = fromNanos(end)
		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (t *tx) DeleteBookingsByPerson(ctx context.Context, personID int) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM room_bookings WHERE person_id = ?`, personID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete person bookings: %w", err)
	}
	return res.RowsAffected()
}

func (t *tx) DeleteBookingsByRoom(ctx context.Context, roomID int) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM room_bookings WHERE room_id = ?`, roomID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete room bookings: %w", err)
	}
	return res.RowsAffected()
}

func (t *tx) MoveBookings(ctx context.Context, fromRoomID, toRoomID int) (int64, error) {
	res, err := t.tx.ExecContext(ctx,
		`UPDATE room_bookings SET room_id = ? WHERE room_id = ?`, toRoomID, fromRoomID)
	if err != nil {
		return 0, fmt.Errorf("failed to move bookings: %w", err)
	}
	return res.RowsAffected()
}

func (t *tx) HasOverlap(ctx context.Context, roomID int, start, end time.Time) (bool, error) {
	exists, err := t.exists(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM room_bookings
			WHERE room_id = ? AND end_time > ? AND start_time < ?
		)`, roomID, toNanos(start), toNanos(end))
	if err != nil {
		return false, fmt.Errorf("failed to check overlap: %w", err)
	}
	return exists, nil
}

func lastInsertID(res sql.Result) (int, error) {
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}
	return int(id), nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}
