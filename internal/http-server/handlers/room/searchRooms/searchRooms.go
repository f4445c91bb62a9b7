package searchRooms

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
)

type Response struct {
	response.Response
	Rooms []models.Room `json:"rooms"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoomSearcher
type RoomSearcher interface {
	SearchRooms(ctx context.Context, name string) ([]models.Room, error)
}

// New finds rooms whose name contains the searchName query param,
// ignoring case.
func New(log *slog.Logger, searcher RoomSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.room.searchRooms.New"

		log := log.With(slog.String("op", op))

		name := r.URL.Query().Get("searchName")

		rooms, err := searcher.SearchRooms(r.Context(), name)
		if err != nil {
			if errors.Is(err, booking.ErrEmptySearch) {
				log.Error("empty search name")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("failed to search rooms", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search rooms"))
			return
		}

		log.Info("rooms found", slog.String("search_name", name), slog.Int("count", len(rooms)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Rooms:    rooms,
		})
	}
}
