package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"userdeck/internal/devserver"
	"userdeck/internal/logging"
)

type config struct {
	Addr           string
	AppIDs         []string
	Seed           int
	DatabaseURL    string
	AllowedOrigins []string
	Logging        logging.Config
}

func loadConfig() config {
	_ = godotenv.Load()

	seed, err := strconv.Atoi(valueOrDefault("USERAPI_SEED", "60"))
	if err != nil || seed < 0 {
		seed = 60
	}
	return config{
		Addr:           valueOrDefault("USERAPI_ADDR", ":8080"),
		AppIDs:         splitCSV(os.Getenv("USERAPI_APP_IDS")),
		Seed:           seed,
		DatabaseURL:    os.Getenv("USERAPI_DATABASE_URL"),
		AllowedOrigins: splitCSV(os.Getenv("USERAPI_ALLOWED_ORIGINS")),
		Logging: logging.Config{
			Level:     valueOrDefault("LOG_LEVEL", "info"),
			Format:    valueOrDefault("LOG_FORMAT", "text"),
			Component: "userapi",
		},
	}
}

func main() {
	cfg := loadConfig()
	log := logging.New(cfg.Logging, os.Stdout)
	if logging.ParseLevel(cfg.Logging.Level) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("userapi stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, log *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: devserver.New(store, devserver.Options{
			AppIDs:         cfg.AppIDs,
			AllowedOrigins: cfg.AllowedOrigins,
			Logger:         log,
		}).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("userapi listening", "addr", cfg.Addr, "base", devserver.BasePath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	log.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

// openStore picks PostgreSQL when a database URL is configured and memory
// otherwise, seeding an empty store.
func openStore(ctx context.Context, cfg config, log *slog.Logger) (devserver.Store, func(), error) {
	var (
		store devserver.Store
		done  = func() {}
	)
	if cfg.DatabaseURL == "" {
		store = devserver.NewMemoryStore()
		log.Info("using in-memory store")
	} else {
		connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		pool, err := devserver.Connect(connectCtx, cfg.DatabaseURL, 10)
		if err != nil {
			return nil, nil, err
		}
		store, done = devserver.NewPostgresStore(pool), pool.Close
		log.Info("connected to PostgreSQL")
	}

	_, total, err := store.List(ctx, 0, 1)
	if err != nil {
		done()
		return nil, nil, err
	}
	if total == 0 && cfg.Seed > 0 {
		if err := devserver.Seed(ctx, store, cfg.Seed, time.Now()); err != nil {
			done()
			return nil, nil, err
		}
		log.Info("seeded users", "count", cfg.Seed)
	}
	return store, done, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
