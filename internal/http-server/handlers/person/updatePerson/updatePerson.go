package updatePerson

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/lib/api/response"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	ID          int    `json:"id" validate:"required,min=1"`
	Name        string `json:"name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
}

func (req Request) toPerson() (models.Person, error) {
	dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
	if err != nil {
		return models.Person{}, err
	}

	return models.Person{ID: req.ID, Name: req.Name, DateOfBirth: dob}, nil
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PersonUpdater
type PersonUpdater interface {
	UpdatePerson(ctx context.Context, p models.Person) error
}

func New(log *slog.Logger, updater PersonUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.person.updatePerson.New"

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

		person, err := req.toPerson()
		if err != nil {
			log.Error("invalid date of birth", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date_of_birth format"))
			return
		}

		log = log.With(slog.Int("person_id", person.ID))

		if err = updater.UpdatePerson(r.Context(), person); err != nil {
			log.Error("failed to update person", sl.Err(err))

			switch {
			case errors.Is(err, booking.ErrInvalidName):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
			case errors.Is(err, booking.ErrPersonNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update person"))
			}
			return
		}

		log.Info("person updated")

		render.JSON(w, r, response.OK())
	}
}
