package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiv1 "github.com/at-ishikawa/clozequiz/internal/api/v1"
	"github.com/at-ishikawa/clozequiz/internal/bootstrap"
	"github.com/at-ishikawa/clozequiz/internal/config"
	"github.com/at-ishikawa/clozequiz/internal/corpus"
	"github.com/at-ishikawa/clozequiz/internal/database"
	"github.com/at-ishikawa/clozequiz/internal/learning"
	"github.com/at-ishikawa/clozequiz/internal/note"
	"github.com/at-ishikawa/clozequiz/internal/server"
	"github.com/at-ishikawa/clozequiz/schemas"
)

const readHeaderTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("database.Open() > %w", err)
	}
	app := bootstrap.New()
	app.AddShutdownHook(func(ctx context.Context) error {
		return db.Close()
	})

	ctx := context.Background()
	if cfg.Server.AutoMigrate {
		if _, err := database.Migrate(ctx, db, schemas.Migrations); err != nil {
			_ = db.Close()
			return fmt.Errorf("database.Migrate() > %w", err)
		}
	}

	handler, err := newHandler(cfg, db)
	if err != nil {
		_ = db.Close()
		return err
	}
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	app.AddShutdownHook(srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		listener, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			return fmt.Errorf("net.Listen(%s) > %w", srv.Addr, err)
		}
		slog.Default().Info("starting server", "addr", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.Serve() > %w", err)
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	configFile := os.Getenv("CLOZEQUIZ_CONFIG")
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

// newHandler serves the quiz service over HTTP/1.1 and cleartext HTTP/2.
func newHandler(cfg *config.Config, db *sqlx.DB) (http.Handler, error) {
	quizHandler, err := server.NewQuizHandler(
		corpus.NewDBCorpusRepository(db),
		learning.NewDBLearningRepository(db),
		note.NewDBNoteRepository(db),
		cfg.Quiz.DrawLimit,
	)
	if err != nil {
		return nil, fmt.Errorf("server.NewQuizHandler() > %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(apiv1.NewQuizServiceHandler(quizHandler))
	return corsMiddleware(cfg.Server.CORS.AllowedOrigins, h2c.NewHandler(mux, &http2.Server{})), nil
}

func corsMiddleware(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (slices.Contains(allowedOrigins, origin) || slices.Contains(allowedOrigins, "*")) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, "+apiv1.AccountHeader)
			w.Header().Set("Access-Control-Max-Age", "3600")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
