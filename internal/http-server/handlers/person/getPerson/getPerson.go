package getPerson

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
	Person *models.Person `json:"person,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PersonGetter
type PersonGetter interface {
	GetPerson(ctx context.Context, id int) (*models.Person, error)
}

func New(log *slog.Logger, getter PersonGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.person.getPerson.New"

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

		person, err := getter.GetPerson(r.Context(), personID)
		if err != nil {
			if errors.Is(err, booking.ErrPersonNotFound) {
				log.Info("person not found", slog.Int("person_id", personID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("person not found"))
				return
			}

			log.Error("failed to get person", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get person"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Person:   person,
		})
	}
}
