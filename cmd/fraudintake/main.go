package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neelpatel/fraudintake/config"
	"github.com/neelpatel/fraudintake/dialogue"
	"github.com/neelpatel/fraudintake/field"
	"github.com/neelpatel/fraudintake/gateway"
	"github.com/neelpatel/fraudintake/record"
	"github.com/neelpatel/fraudintake/server"
	"github.com/neelpatel/fraudintake/session"
	"github.com/neelpatel/fraudintake/transcribe"
)

func main() {
	confPath := flag.String("config", "", "path to optional JSON config file")
	flag.Parse()

	cfg, err := config.Load(*confPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	// Startup preconditions: the UI directories must exist.
	for _, dir := range []string{cfg.TemplatesDir, cfg.StaticDir} {
		if _, err := os.Stat(dir); err != nil {
			slog.Error("required directory missing", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	records, err := openRecordStore(cfg)
	if err != nil {
		slog.Error("failed to open record store", "driver", cfg.RecordDriver, "path", cfg.RecordPath, "error", err)
		os.Exit(1)
	}
	defer records.Close()

	ctx := context.Background()
	lm, err := gateway.NewModel(ctx, gateway.Config{
		APIKey:  cfg.LMAPIKey,
		BaseURL: cfg.LMBaseURL,
		Model:   cfg.LMModel,
		Timeout: cfg.LMTimeout(),
	})
	if err != nil {
		slog.Error("failed to create language-model gateway", "error", err)
		os.Exit(1)
	}

	var transcriber transcribe.Transcriber
	if cfg.TranscriberURL != "" {
		transcriber = transcribe.NewWhisperClient(cfg.TranscriberURL, cfg.TranscriberAPIKey)
		slog.Info("audio transcription enabled", "url", cfg.TranscriberURL)
	}

	controller := dialogue.NewController(field.NewRegistry(), lm, records)
	srv := server.NewServer(session.NewManager(), controller, transcriber, cfg.StaticDir, cfg.TemplatesDir)

	ln, port, err := listenFirstFree(cfg.Port, cfg.PortRange)
	if err != nil {
		slog.Error("no free port available", "start", cfg.Port, "range", cfg.PortRange, "error", err)
		os.Exit(1)
	}

	httpSrv := &http.Server{Handler: srv.Router()}
	go func() {
		slog.Info("fraudintake ready", "port", port)
		if err := httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	slog.Info("shutting down", "signal", sig)
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("shutdown incomplete", "error", err)
	}
	slog.Info("fraudintake stopped")
}

func openRecordStore(cfg config.Config) (record.Store, error) {
	switch cfg.RecordDriver {
	case "sqlite":
		return record.OpenSQLite(cfg.RecordPath)
	default:
		return record.OpenJSONL(cfg.RecordPath)
	}
}

// listenFirstFree binds the first free port in [start, start+span), keeping
// the listener so the port cannot be lost between probe and serve.
func listenFirstFree(start, span int) (net.Listener, int, error) {
	if span < 1 {
		span = 1
	}
	var lastErr error
	for port := start; port < start+span; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			return ln, port, nil
		}
		lastErr = err
	}
	return nil, 0, fmt.Errorf("ports %d-%d busy: %w", start, start+span-1, lastErr)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
