package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/avstrong/hotelres/internal/config"
	"github.com/avstrong/hotelres/internal/logger"
	"github.com/avstrong/hotelres/internal/migration"
	"github.com/avstrong/hotelres/internal/obs"
	"github.com/avstrong/hotelres/internal/reservation"
	"github.com/avstrong/hotelres/internal/storage/memory"
	"github.com/avstrong/hotelres/internal/transport/web"
)

// NewManager builds the reservation manager over an in-memory catalog,
// seeding it when the config asks for it.
func NewManager(ctx context.Context, l *logger.Logger, conf config.Config) (*reservation.Manager, *memory.DB, error) {
	storage := memory.New(memory.Config{L: l})

	if conf.Seed {
		if err := migration.Up(ctx, l, storage); err != nil {
			return nil, nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	return reservation.New(l, storage), storage, nil
}

// Run serves HTTP until ctx is cancelled and then shuts the server down.
func Run(ctx context.Context, l *logger.Logger, conf config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rManager, storage, err := NewManager(ctx, l, conf)
	if err != nil {
		return err
	}

	metrics := obs.NewMetrics(prometheus.NewRegistry(), storage.Len)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      l.Std(),
		Host:              conf.HTTP.Host,
		Port:              conf.HTTP.Port,
		ReadHeaderTimeout: conf.HTTP.ReadHeaderTimeout,
		RequestTimeout:    conf.HTTP.RequestTimeout,
		ConcurrencyLimit:  conf.HTTP.ConcurrencyLimit,
		MaxBodyBytes:      conf.HTTP.MaxBodyBytes,
		LivenessEndpoint:  conf.HTTP.LivenessEndpoint,
	}

	srv, err := web.New(ctx, webConf, rManager, metrics)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), conf.HTTP.ShutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		cancel()

		return fmt.Errorf("run http server: %w", err)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
