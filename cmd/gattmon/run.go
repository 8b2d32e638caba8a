package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"gattshim/internal/btif"
	"gattshim/internal/btif/loopback"
	"gattshim/internal/config"
	"gattshim/internal/dispatch"
	"gattshim/internal/gatt"
	"gattshim/internal/httpapi"
	"gattshim/internal/monitor"
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 5 * time.Second

func newLogger(cfg config.Config, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), err
	}
	out := w
	if cfg.LogFormat == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Str("service", "gattmon").Logger(), nil
}

// openBackend returns the Bluetooth stack named by backend and a func that
// releases it.
func openBackend(backend string) (btif.BluetoothInterface, func(), error) {
	switch backend {
	case config.BackendNative:
		bt, err := btif.Open()
		if err != nil {
			return nil, nil, err
		}
		return bt, func() {}, nil
	case config.BackendLoopback:
		s := loopback.New()
		s.AddAdvertisement(loopback.Advertisement{
			Address: btif.RawAddress{Address: [6]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x01}},
			RSSI:    -55,
			Data:    []byte{0x02, 0x01, 0x06, 0x05, 0x09, 'd', 'e', 'm', 'o'},
		})
		return s, s.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", backend)
}

// runServe initializes the profile and serves the HTTP API until ctx ends.
func runServe(ctx context.Context, cfg config.Config) error {
	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	dispatch.SetLogger(log)
	httpapi.SetLogger(log)

	bt, release, err := openBackend(cfg.Backend)
	if err != nil {
		return err
	}
	defer release()

	g, err := gatt.New(bt, gatt.WithLogger(log))
	if err != nil {
		return err
	}
	rec := monitor.NewRecorder(cfg.EventBuffer, log)
	svc := monitor.NewService(g, rec, cfg.Backend, log)
	app, _ := cfg.App()
	if err := svc.Start(monitor.StartOptions{AppUUID: app, Scan: cfg.Scan}); err != nil {
		return err
	}

	httpapi.SetCORSOptions(len(cfg.CORSOrigins) > 0, cfg.CORSOrigins, nil, nil)
	httpapi.SetBaseContext(ctx)
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: httpapi.NewMux(svc), ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Str("backend", cfg.Backend).Msg("gattmon listening")
		errc <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	log.Info().Msg("gattmon stopped")
	return nil
}
