package addRoom

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
	Name string `json:"name" validate:"required"`
}

type Response struct {
	response.Response
	RoomID int `json:"id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomAdder
type RoomAdder interface {
	AddRoom(ctx context.Context, r models.Room) (int, error)
}

func New(log *slog.Logger, adder RoomAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.addRoom.New"

		log := log.With(slog.String("op", op))

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		id, err := adder.AddRoom(r.Context(), models.Room{Name: req.Name})
		if err != nil {
			log.Error("failed to add room", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrInvalidName):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, booking.ErrRoomExists):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to add room"))
			}
			return
		}

		log.Info("room added", slog.Int("room_id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			RoomID:   id,
		})
	}
}
