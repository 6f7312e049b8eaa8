// Package app wires the application together: storage, seeding, router and
// HTTP server live behind one explicitly constructed context with init and
// teardown, instead of ambient globals.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jmarlow/course-store/internal/config"
	"github.com/jmarlow/course-store/internal/handlers"
	"github.com/jmarlow/course-store/internal/middleware"
	"github.com/jmarlow/course-store/internal/repository"
	"github.com/jmarlow/course-store/internal/seed"
	"github.com/jmarlow/course-store/internal/service"
	"github.com/jmarlow/course-store/internal/storage"
)

// App holds the long-lived state of the service
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	store   *storage.Store
	courses repository.CourseRepository
	orders  repository.OrderRepository
	srv     *http.Server
}

// New connects to the document store (with retries), runs the best-effort
// catalog seed and builds the HTTP server. A connect failure is fatal and
// returned to the caller; a seed failure is logged and ignored.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := storage.Connect(ctx, cfg.Mongo, log)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:     cfg,
		log:     log,
		store:   store,
		courses: repository.NewMongoCourseRepository(store.Courses()),
		orders:  repository.NewMongoOrderRepository(store.Orders()),
	}

	if err := seed.Run(ctx, a.courses, cfg.SkipSeed, log); err != nil {
		log.Warn("catalog seeding failed, continuing without sample data", "error", err)
	}

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	a.srv = &http.Server{
		Addr:         addr,
		Handler:      a.Router(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	return a, nil
}

// Router builds the HTTP routing table
func (a *App) Router() http.Handler {
	courseHandler := handlers.NewCourseHandler(service.NewCourseService(a.courses), a.log)
	orderHandler := handlers.NewOrderHandler(service.NewOrderService(a.orders), a.log)
	healthHandler := handlers.NewHealthHandler(a.log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(a.log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/courses", courseHandler.ListCourses)
		r.Post("/courses", courseHandler.CreateCourse)

		r.Post("/orders", orderHandler.CreateOrder)
		r.Get("/orders", orderHandler.ListOrders)
	})

	// Storefront entry document and its assets
	r.Handle("/*", http.FileServer(http.Dir(a.cfg.Server.StaticDir)))

	return r
}

// Run serves HTTP until the process receives SIGINT or SIGTERM, then shuts
// down gracefully within the configured timeout
func (a *App) Run() error {
	errCh := make(chan error, 1)

	go func() {
		a.log.Info("server listening", "address", a.srv.Addr)
		if err := a.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	a.log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := a.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	a.log.Info("server stopped gracefully")
	return nil
}

// Close releases the storage connection
func (a *App) Close(ctx context.Context) error {
	return a.store.Close(ctx)
}
