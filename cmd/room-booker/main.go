package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomBooker/internal/booking"
	"roomBooker/internal/config"
	"roomBooker/internal/http-server/handlers/booking/availableRooms"
	"roomBooker/internal/http-server/handlers/booking/createBooking"
	"roomBooker/internal/http-server/handlers/booking/deleteBooking"
	"roomBooker/internal/http-server/handlers/booking/listBookings"
	"roomBooker/internal/http-server/handlers/person/addPerson"
	"roomBooker/internal/http-server/handlers/person/deletePerson"
	"roomBooker/internal/http-server/handlers/person/getPerson"
	"roomBooker/internal/http-server/handlers/person/searchPeople"
	"roomBooker/internal/http-server/handlers/person/updatePerson"
	"roomBooker/internal/http-server/handlers/room/addRoom"
	"roomBooker/internal/http-server/handlers/room/deleteRoom"
	"roomBooker/internal/http-server/handlers/room/getRoom"
	"roomBooker/internal/http-server/handlers/room/searchRooms"
	"roomBooker/internal/http-server/handlers/room/updateRoom"
	"roomBooker/internal/http-server/middleware/mwlogger"
	"roomBooker/internal/http-server/middleware/mwmetrics"
	"roomBooker/internal/lib/logger/handlers/slogpretty"
	"roomBooker/internal/lib/logger/sl"
	"roomBooker/internal/storage"
	"roomBooker/internal/storage/postgres"
	"roomBooker/internal/storage/sqlite"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

type closableStore interface {
	storage.Store
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting room booker", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage))
	log.Debug("debug messages are enabled")

	store, err := openStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	svc := booking.NewService(log, store)
	metrics := mwmetrics.NewMetrics()

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(metrics.Middleware)

	router.Route("/person", func(r chi.Router) {
		r.Get("/search", searchPeople.New(log, svc))
		r.Post("/", addPerson.New(log, svc))
		r.Put("/", updatePerson.New(log, svc))
		r.Get("/{id}", getPerson.New(log, svc))
		r.Delete("/{id}", deletePerson.New(log, svc))
		r.Get("/{id}/bookings", listBookings.NewForPerson(log, svc))
	})

	router.Route("/room", func(r chi.Router) {
		r.Get("/search", searchRooms.New(log, svc))
		r.Post("/", addRoom.New(log, svc))
		r.Put("/", updateRoom.New(log, svc))
		r.Get("/{id}", getRoom.New(log, svc))
		r.Delete("/{id}", deleteRoom.New(log, svc))
		r.Get("/{id}/bookings", listBookings.NewForRoom(log, svc))
	})

	router.Route("/booking", func(r chi.Router) {
		r.Post("/", createBooking.New(log, svc))
		r.Get("/available-rooms", availableRooms.New(log, svc))
		r.Delete("/{id}", deleteBooking.New(log, svc))
	})

	router.Handle("/metrics", metrics.Handler())

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(cfg *config.Config) (closableStore, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		return postgres.InitDB(&cfg.Database)
	case config.StorageSQLite:
		return sqlite.New(cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
