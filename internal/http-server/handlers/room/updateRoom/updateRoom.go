package updateRoom

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	ID   int    `json:"id" validate:"required,min=1"`
	Name string `json:"name" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomUpdater
type RoomUpdater interface {
	UpdateRoom(ctx context.Context, r models.Room) error
}

func New(log *slog.Logger, updater RoomUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.updateRoom.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		log = log.With(slog.Int("room_id", req.ID))

		if err = updater.UpdateRoom(r.Context(), models.Room{ID: req.ID, Name: req.Name}); err != nil {
			log.Error("failed to update room", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrInvalidName):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, booking.ErrRoomNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update room"))
			}
			return
		}

		log.Info("room updated")

		render.JSON(w, r, response.OK())
	}
}
