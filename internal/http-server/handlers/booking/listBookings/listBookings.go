package listBookings

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PersonBookingsLister
type PersonBookingsLister interface {
	PersonBookings(ctx context.Context, personID int) ([]models.Booking, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomBookingsLister
type RoomBookingsLister interface {
	RoomBookings(ctx context.Context, roomID int) ([]models.Booking, error)
}

// NewForPerson lists the bookings held by the person in the {id} URL param.
func NewForPerson(log *slog.Logger, lister PersonBookingsLister) http.HandlerFunc {
	const op = "handlers.booking.listBookings.NewForPerson"

	return list(log.With(slog.String("op", op)), "person", lister.PersonBookings, booking.ErrPersonNotFound)
}

// NewForRoom lists the bookings of the room in the {id} URL param.
func NewForRoom(log *slog.Logger, lister RoomBookingsLister) http.HandlerFunc {
	const op = "handlers.booking.listBookings.NewForRoom"

	return list(log.With(slog.String("op", op)), "room", lister.RoomBookings, booking.ErrRoomNotFound)
}

func list(
	log *slog.Logger,
	owner string,
	fetch func(ctx context.Context, id int) ([]models.Booking, error),
	errNotFound error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error(owner + " id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(owner+" id is required"))
			return
		}

		id, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid "+owner+" id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid "+owner+" id format"))
			return
		}

		log := log.With(slog.Int(owner+"_id", id))

		bookings, err := fetch(r.Context(), id)
		if err != nil {
			log.Error("failed to list bookings", sl.Err(err))

			if errors.Is(err, errNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list bookings"))
			return
		}

		log.Info("bookings listed", slog.Int("count", len(bookings)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Bookings: bookings,
		})
	}
}
