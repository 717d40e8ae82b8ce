package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avilahotel/reservas/internal/config"
	"github.com/avilahotel/reservas/internal/hotel"
	"github.com/avilahotel/reservas/internal/idgen/simple"
	"github.com/avilahotel/reservas/internal/logger"
	"github.com/avilahotel/reservas/internal/parser"
	"github.com/avilahotel/reservas/internal/report"
	"github.com/avilahotel/reservas/internal/storage/memory"
	"github.com/avilahotel/reservas/internal/transport/web"
)

func Run(l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	cfg := config.Load()

	storage := memory.New(memory.Config{L: l})
	idGen := simple.New()
	hotelManager := hotel.New(l, storage, idGen)
	reports := report.New(l)

	if cfg.Serve {
		return serve(ctx, cancel, l, cfg, hotelManager, reports)
	}

	return processDocument(ctx, l, cfg, hotelManager, reports)
}

// processDocument runs the one-shot pipeline: read the input document,
// build the reservation, write the report, print the summary. A document
// with missing required fields ends the run cleanly after one diagnostic.
func processDocument(
	ctx context.Context,
	l *logger.Logger,
	cfg config.Config,
	hotelManager *hotel.Manager,
	reports *report.Generator,
) (err error) {
	file, err := os.Open(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("open input document %v: %w", cfg.InputPath, err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close input document %v: %w", cfg.InputPath, closeErr)
		}
	}()

	input, err := parser.Parse(file)
	if inputErr := hotel.IsInputError(err); inputErr != nil {
		l.LogErrorf("No se pudieron extraer todos los datos necesarios del archivo.")

		return nil
	}

	if err != nil {
		return fmt.Errorf("parse document %v: %w", cfg.InputPath, err)
	}

	reservation, err := hotelManager.CreateReservation(ctx, input)
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}

	if err := reports.WriteFile(cfg.OutputPath, reservation, input.Client); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	l.LogInfo("Cliente: %v", input.Client.Name)
	l.LogInfo("Correo: %v", input.Client.Email)
	l.LogInfo("Fecha de inicio: %v", reservation.StartDate)
	l.LogInfo("Fecha de fin: %v", reservation.EndDate)
	l.LogInfo("Número de noches: %v", reservation.Nights)
	l.LogInfo("Número de habitaciones: %v", reservation.NumRooms)
	l.LogInfo("Número de personas: %v", reservation.NumPeople)
	l.LogInfo("Precio total: %v", reservation.TotalPrice)

	return nil
}

func serve(
	ctx context.Context,
	cancel context.CancelFunc,
	l *logger.Logger,
	cfg config.Config,
	hotelManager *hotel.Manager,
	reports *report.Generator,
) error {
	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              cfg.Host,
		Port:              cfg.Port,
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, webConf, hotelManager, reports)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
