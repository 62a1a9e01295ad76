package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"movie-discovery-web-ui/internal/backend"
	"movie-discovery-web-ui/internal/config"
	"movie-discovery-web-ui/internal/database"
	"movie-discovery-web-ui/internal/handler"
	"movie-discovery-web-ui/internal/middleware"
	"movie-discovery-web-ui/internal/session"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	client := backend.NewClient(cfg.BackendURL, rdb)
	store := session.NewStore(cfg.SessionTTL)
	h := handler.New(client)

	app := fiber.New(fiber.Config{
		AppName:         "Movie Discovery Web UI",
		ServerHeader:    "Web-UI",
		StructValidator: handler.NewStructValidator(),
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.Session(store))

	app.Get("/health", h.Health)

	ui := app.Group("/ui")
	ui.Get("/state", h.State)
	ui.Get("/moods", h.Moods)

	// Auth dialog
	ui.Post("/auth/signup", h.Signup)
	ui.Post("/auth/login", h.Login)
	ui.Post("/auth/logout", h.Logout)
	ui.Post("/auth/show", h.ShowAuth)
	ui.Post("/auth/toggle", h.ToggleAuth)
	ui.Post("/auth/close", h.CloseAuth)

	// Content regions
	ui.Get("/recommendations", h.Recommendations)
	ui.Post("/mood", h.Mood)
	ui.Get("/trending", h.Trending)
	ui.Get("/search", h.Search)
	ui.Get("/movies/:id", h.MovieDetail)

	// User actions
	ui.Post("/rate", h.Rate)
	ui.Post("/watch-history", h.WatchHistory)
	ui.Get("/preferences", h.LoadPreferences)
	ui.Post("/preferences", h.SavePreferences)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down web ui...")
		_ = app.Shutdown()
	}()

	addr := ":" + cfg.Port
	slog.Info("starting web ui", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
