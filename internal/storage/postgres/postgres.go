package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"roomBooker/internal/config"
	"roomBooker/internal/models"
	"roomBooker/internal/storage"

	"github.com/lib/pq"
)

const (
	dateLayout = "2006-01-02"

	// maxTxAttempts bounds how often a transaction is replayed after a
	// serialization failure.
	maxTxAttempts = 3
)

//go:embed schema.sql
var schema string

var (
	_ storage.Store = (*Storage)(nil)
	_ storage.Tx    = (*tx)(nil)
)

type Storage struct {
	DB *sql.DB
}

func DSN(dbCfg *config.Database) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	db, err := sql.Open("postgres", DSN(dbCfg))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// InTx runs fn in a SERIALIZABLE transaction so that overlap checks and the
// writes depending on them cannot race. The whole of fn is replayed when
// Postgres aborts the transaction with a serialization failure or deadlock.
func (s *Storage) InTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
	}

	return fmt.Errorf("transaction aborted after %d attempts: %w", maxTxAttempts, err)
}

func (s *Storage) runTx(ctx context.Context, fn func(tx storage.Tx) error) error {
	sqlTx, err := s.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
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

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	switch pqErr.Code {
	case "40001", "40P01": // serialization_failure, deadlock_detected
		return true
	}

	return false
}

type tx struct {
	tx *sql.Tx
}

func (t *tx) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var exists bool
	if err := t.tx.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (t *tx) PersonExists(ctx context.Context, id int) (bool, error) {
	exists, err := t.exists(ctx, `SELECT EXISTS(SELECT 1 FROM people WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check person: %w", err)
	}
	return exists, nil
}

func (t *tx) GetPerson(ctx context.Context, id int) (*models.Person, error) {
	query := `
		SELECT id, name, date_of_birth
		FROM people
		WHERE id = $1`

	var person models.Person
	err := t.tx.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.DateOfBirth,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}

	person.DateOfBirth = person.DateOfBirth.UTC()

	return &person, nil
}

func (t *tx) SearchPeople(ctx context.Context, name string) ([]models.Person, error) {
	query := `
		SELECT id, name, date_of_birth
		FROM people
		WHERE position(upper($1) in upper(name)) > 0
		ORDER BY id`

	rows, err := t.tx.QueryContext(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search people: %w", err)
	}
	defer rows.Close()

	people := make([]models.Person, 0)
	for rows.Next() {
		var person models.Person
		err = rows.Scan(
			&person.ID,
			&person.Name,
			&person.DateOfBirth,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		person.DateOfBirth = person.DateOfBirth.UTC()
		people = append(people, person)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating people: %w", err)
	}

	return people, nil
}

func (t *tx) InsertPerson(ctx context.Context, p models.Person) (int, error) {
	query := `
		INSERT INTO people (name, date_of_birth)
		VALUES ($1, $2)
		RETURNING id`

	var id int
	err := t.tx.QueryRowContext(ctx, query, p.Name, p.DateOfBirth.Format(dateLayout)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert person: %w", err)
	}

	return id, nil
}

func (t *tx) UpdatePerson(ctx context.Context, p models.Person) error {
	query := `
		UPDATE people
		SET name = $1, date_of_birth = $2
		WHERE id = $3`

	res, err := t.tx.ExecContext(ctx, query, p.Name, p.DateOfBirth.Format(dateLayout), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update person: %w", err)
	}

	return requireAffected(res)
}

func (t *tx) DeletePerson(ctx context.Context, id int) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM people WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

func (t *tx) RoomExists(ctx context.Context, id int) (bool, error) {
	exists, err := t.exists(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE id = $1)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to check room: %w", err)
	}
	return exists, nil
}

func (t *tx) RoomNameExists(ctx context.Context, name string) (bool, error) {
	exists, err := t.exists(ctx, `SELECT EXISTS(SELECT 1 FROM rooms WHERE name = $1)`, name)
	if err != nil {
		return false, fmt.Errorf("failed to check room name: %w", err)
	}
	return exists, nil
}

func (t *tx) GetRoom(ctx context.Context, id int) (*models.Room, error) {
	var room models.Room
	err := t.tx.QueryRowContext(ctx, `SELECT id, name FROM rooms WHERE id = $1`, id).Scan(&room.ID, &room.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return &room, nil
}

func (t *tx) SearchRooms(ctx context.Context, name string) ([]models.Room, error) {
	query := `
		SELECT id, name
		FROM rooms
		WHERE position(upper($1) in upper(name)) > 0
		ORDER BY id`

	return t.queryRooms(ctx, query, name)
}

func (t *tx) FreeRooms(ctx context.Context, start, end time.Time) ([]models.Room, error) {
	query := `
		SELECT r.id, r.name
		FROM rooms r
		WHERE NOT EXISTS (
			SELECT 1 FROM room_bookings b
			WHERE b.room_id = r.id AND b.end_time > $1 AND b.start_time < $2
		)
		ORDER BY r.id`

	return t.queryRooms(ctx, query, start.UTC(), end.UTC())
}

func (t *tx) queryRooms(ctx context.Context, query string, args ...any) ([]models.Room, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
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
	query := `
		INSERT INTO rooms (name)
		VALUES ($1)
		RETURNING id`

	var id int
	if err := t.tx.QueryRowContext(ctx, query, r.Name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert room: %w", err)
	}

	return id, nil
}

func (t *tx) UpdateRoom(ctx context.Context, r models.Room) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE rooms SET name = $1 WHERE id = $2`, r.Name, r.ID)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	return requireAffected(res)
}

func (t *tx) DeleteRoom(ctx context.Context, id int) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

func (t *tx) InsertBooking(ctx context.Context, b models.Booking) (int, error) {
	query := `
		INSERT INTO room_bookings (person_id, room_id, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int
	err := t.tx.QueryRowContext(ctx, query, b.PersonID, b.RoomID, b.StartTime.UTC(), b.EndTime.UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

func (t *tx) DeleteBooking(ctx context.Context, id int) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM room_bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func (t *tx) BookingsByPerson(ctx context.Context, personID int) ([]models.Booking, error) {
	query := `
		SELECT id, person_id, room_id, start_time, end_time
		FROM room_bookings
		WHERE person_id = $1
		ORDER BY start_time, id`

	return t.queryBookings(ctx, query, personID)
}

func (t *tx) BookingsByRoom(ctx context.Context, roomID int) ([]models.Booking, error) {
	query := `
		SELECT id, person_id, room_id, start_time, end_time
		FROM room_bookings
		WHERE room_id = $1
		ORDER BY start_time, id`

	return t.queryBookings(ctx, query, roomID)
}

func (t *tx) queryBookings(ctx context.Context, query string, args ...any) ([]models.Booking, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]models.Booking, 0)
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.PersonID,
			&booking.RoomID,
			&booking.StartTime,
			&booking.EndTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		booking.StartTime = booking.StartTime.UTC()
		booking.EndTime = booking.EndTime.UTC()
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (t *tx) DeleteBookingsByPerson(ctx context.Context, personID int) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM room_bookings WHERE person_id = $1`, personID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete person bookings: %w", err)
	}
	return res.RowsAffected()
}

func (t *tx) DeleteBookingsByRoom(ctx context.Context, roomID int) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM room_bookings WHERE room_id = $1`, roomID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete room bookings: %w", err)
	}
	return res.RowsAffected()
}

func (t *tx) MoveBookings(ctx context.Context, fromRoomID, toRoomID int) (int64, error) {
	res, err := t.tx.ExecContext(ctx, `UPDATE room_bookings SET room_id = $1 WHERE room_id = $2`, toRoomID, fromRoomID)
	if err != nil {
		return 0, fmt.Errorf("failed to move bookings: %w", err)
	}
	return res.RowsAffected()
}

func (t *tx) HasOverlap(ctx context.Context, roomID int, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM room_bookings
			WHERE room_id = $1 AND end_time > $2 AND start_time < $3
		)`

	exists, err := t.exists(ctx, query, roomID, start.UTC(), end.UTC())
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping bookings: %w", err)
	}
	return exists, nil
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
