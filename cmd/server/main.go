package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/adrianburcea94/tennis-courts-v1/internal/repository"
	"github.com/adrianburcea94/tennis-courts-v1/internal/service"
	thttp "github.com/adrianburcea94/tennis-courts-v1/internal/transport/http"
	"github.com/adrianburcea94/tennis-courts-v1/pkg/config"
	"github.com/adrianburcea94/tennis-courts-v1/pkg/db"
	"github.com/adrianburcea94/tennis-courts-v1/pkg/mq"
	"github.com/adrianburcea94/tennis-courts-v1/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load(".env")
	cfg := must(config.Load())
	logger := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if cfg.OtelEnabled {
		shutdown := obs.InitTracer("tennis-courts")
		defer func() { _ = shutdown(context.Background()) }()
	}

	// DB + migrations
	gdb := db.Open(cfg.PGDSN)
	guestRepo := repository.NewGuestRepo(gdb)
	courtRepo := repository.NewCourtRepo(gdb)
	scheduleRepo := repository.NewScheduleRepo(gdb)
	reservationRepo := repository.NewReservationRepo(gdb)
	must(0, guestRepo.Migrate())
	must(0, courtRepo.Migrate())
	must(0, scheduleRepo.Migrate())
	must(0, reservationRepo.Migrate())

	// Publisher for reservation.* events
	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
	defer pub.Close()

	guestSvc := service.NewGuestSvc(guestRepo)
	courtSvc := service.NewCourtSvc(courtRepo, scheduleRepo)
	scheduleSvc := service.NewScheduleSvc(scheduleRepo, courtRepo)
	reservationSvc := service.NewReservationSvc(reservationRepo, guestRepo, scheduleRepo, courtRepo, pub, logger)

	router := thttp.NewRouter(
		thttp.NewReservationHandler(reservationSvc),
		thttp.NewGuestHandler(guestSvc),
		thttp.NewCourtHandler(courtSvc),
		thttp.NewScheduleHandler(scheduleSvc),
	)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("tennis-courts listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("tennis-courts stopped")
}
