package addPerson

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
	Name        string `json:"name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
}

func (req Request) toPerson() (models.Person, error) {
	dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
	if err != nil {
		return models.Person{}, err
	}

	return models.Person{Name: req.Name, DateOfBirth: dob}, nil
}

type Response struct {
	response.Response
	PersonID int `json:"id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PersonAdder
type PersonAdder interface {
	AddPerson(ctx context.Context, p models.Person) (int, error)
}

func New(log *slog.Logger, adder PersonAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.person.addPerson.New"

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

		person, err := req.toPerson()
		if err != nil {
			log.Error("invalid date of birth", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date_of_birth format"))
			return
		}

		id, err := adder.AddPerson(r.Context(), person)
		if err != nil {
			if errors.Is(err, booking.ErrInvalidName) {
				log.Error("invalid person name", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			log.Error("failed to add person", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add person"))
			return
		}

		log.Info("person added", slog.Int("person_id", id))

		render.JSON(w, r, Response{
			Response: response.OK(),
			PersonID: id,
		})
	}
}
