package getRoom

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
	Room *models.Room `json:"room,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomGetter
type RoomGetter interface {
	GetRoom(ctx context.Context, id int) (*models.Room, error)
}

func New(log *slog.Logger, getter RoomGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.getRoom.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("room id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("room id is required"))
			return
		}

		roomID, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid room id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid room id format"))
			return
		}

		room, err := getter.GetRoom(r.Context(), roomID)
		if err != nil {
			if errors.Is(err, booking.ErrRoomNotFound) {
				log.Info("room not found", slog.Int("room_id", roomID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("room not found"))
				return
			}

			log.Error("failed to get room", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get room"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Room:     room,
		})
	}
}
