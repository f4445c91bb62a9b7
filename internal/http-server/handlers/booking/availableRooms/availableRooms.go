package availableRooms

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Rooms []models.Room `json:"rooms"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomFinder
type RoomFinder interface {
	FindAvailableRooms(ctx context.Context, start time.Time, durationMinutes int) ([]models.Room, error)
}

// New lists rooms free for durationMinutes from startTime (RFC 3339).
func New(log *slog.Logger, finder RoomFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.availableRooms.New"

		log := log.With(slog.String("op", op))

		query := r.URL.Query()

		startStr := query.Get("startTime")
		if startStr == "" {
			log.Error("start time is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("startTime is required"))
			return
		}

		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			log.Error("invalid start time format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid startTime format"))
			return
		}

		duration, err := strconv.Atoi(query.Get("durationMinutes"))
		if err != nil {
			log.Error("invalid duration format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid durationMinutes format"))
			return
		}

		rooms, err := finder.FindAvailableRooms(r.Context(), start.UTC(), duration)
		if err != nil {
			log.Error("failed to find available rooms", sl.Err(err))

			if errors.Is(err, booking.ErrInvalidDuration) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to find available rooms"))
			return
		}

		log.Info("available rooms found", slog.Int("count", len(rooms)))

		responseOK(w, r, rooms)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, rooms []models.Room) {
	render.JSON(w, r, Response{
		Response: response.OK(),
		Rooms:    rooms,
	})
}
