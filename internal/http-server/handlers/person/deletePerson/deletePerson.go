package deletePerson

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PersonDeleter
type PersonDeleter interface {
	DeletePerson(ctx context.Context, personID int, cascadeBookings bool) error
}

// New deletes the person in the {id} URL param. Bookings held by the person
// are removed too when deleteBookings=true, otherwise they block the delete.
func New(log *slog.Logger, deleter PersonDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.person.deletePerson.New"

		log := log.With(slog.String("op", op))

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("person id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("person id is required"))
			return
		}

		personID, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid person id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid person id format"))
			return
		}

		cascade := false
		if v := r.URL.Query().Get("deleteBookings"); v != "" {
			cascade, err = strconv.ParseBool(v)
			if err != nil {
				log.Error("invalid deleteBookings value", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid deleteBookings value"))
				return
			}
		}

		log = log.With(slog.Int("person_id", personID), slog.Bool("delete_bookings", cascade))

		if err = deleter.DeletePerson(r.Context(), personID, cascade); err != nil {
			if errors.Is(err, booking.ErrPersonHasBookings) {
				log.Info("person has bookings")
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("failed to delete person", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete person"))
			return
		}

		log.Info("person deleted")

		render.JSON(w, r, response.OK())
	}
}
