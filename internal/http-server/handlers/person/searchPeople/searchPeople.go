package searchPeople

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
	People []models.Person `json:"people"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PeopleSearcher
type PeopleSearcher interface {
	SearchPeople(ctx context.Context, name string) ([]models.Person, error)
}

// New finds people whose name contains the searchName query param,
// ignoring case.
func New(log *slog.Logger, searcher PeopleSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.person.searchPeople.New"

		log := log.With(slog.String("op", op))

		name := r.URL.Query().Get("searchName")

		people, err := searcher.SearchPeople(r.Context(), name)
		if err != nil {
			if errors.Is(err, booking.ErrEmptySearch) {
				log.Error("empty search name")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("failed to search people", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search people"))
			return
		}

		log.Info("people found", slog.String("search_name", name), slog.Int("count", len(people)))

		render.JSON(w, r, Response{
			Response: response.OK(),
			People:   people,
		})
	}
}
