package deleteRoom

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomDeleter
type RoomDeleter interface {
	DeleteRoom(ctx context.Context, roomID, shiftToRoomID int) error
}

// New deletes the room in the {id} URL param. A positive shiftToRoomId moves
// the room's bookings there first; otherwise the bookings are deleted.
func New(log *slog.Logger, deleter RoomDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.deleteRoom.New"

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

		shiftTo := 0
		if v := r.URL.Query().Get("shiftToRoomId"); v != "" {
			shiftTo, err = strconv.Atoi(v)
			if err != nil {
				log.Error("invalid shiftToRoomId format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid shiftToRoomId format"))
				return
			}
		}

		log = log.With(slog.Int("room_id", roomID), slog.Int("shift_to_room_id", shiftTo))

		if err = deleter.DeleteRoom(r.Context(), roomID, shiftTo); err != nil {
			if errors.Is(err, booking.ErrShiftTargetNotFound) {
				log.Info("shift target rejected", sl.Err(err))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("failed to delete room", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete room"))
			return
		}

		log.Info("room deleted")

		render.JSON(w, r, response.OK())
	}
}
