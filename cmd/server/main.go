package main

import (
	stdlog "log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"blogreader/internal/adapters/api"
	"blogreader/internal/adapters/session"
	"blogreader/internal/adapters/web"
	"blogreader/internal/config"
	"blogreader/internal/render"
	"blogreader/internal/store"
	"blogreader/internal/usecases"
	"blogreader/pkg/log"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		stdlog.Printf("unknown log level %q, using INFO", cfg.Log.Level)
	}
	logger := log.New(level, log.NewStdout())
	log.SetDefault(logger)

	sessions, cleanup, err := newSessionStore(cfg)
	if err != nil {
		stdlog.Fatalf("session store init failed: %v", err)
	}
	defer cleanup()

	client := api.New(cfg.API.BaseURL)
	engagement := store.New(logger)
	renderer := render.New(logger)

	loadFeed := usecases.NewLoadFeedUseCase(client, engagement)
	viewArticle := usecases.NewViewArticleUseCase(client, client, renderer)
	like := usecases.NewLikeArticleUseCase(client, engagement)
	comment := usecases.NewPostCommentUseCase(client, engagement)
	login := usecases.NewLoginUseCase(client, sessions)
	logout := usecases.NewLogoutUseCase(sessions)
	menu := usecases.NewLoadMenuUseCase(client)

	handlers := web.NewHandlers(
		engagement, renderer,
		loadFeed, viewArticle, like, comment, login, logout, menu,
		sessions,
	)
	rateLimiter := web.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	app := fiber.New(fiber.Config{
		AppName: "Blog Reader",
	})

	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())
	app.Use(web.SessionMiddleware(sessions))

	web.SetupRoutes(app, handlers, rateLimiter)

	logger.Info("starting blog reader", "addr", cfg.Addr, "api", cfg.API.BaseURL)
	stdlog.Fatal(app.Listen(cfg.Addr))
}

// newSessionStore picks Redis when configured, otherwise the in-process
// fallback.
func newSessionStore(cfg config.Config) (session.Store, func(), error) {
	if cfg.Session.RedisURL == "" {
		return session.NewMemoryStore(cfg.Session.TTL()), func() {}, nil
	}

	redisStore, err := session.NewRedisStore(cfg.Session.RedisURL, cfg.Session.TTL())
	if err != nil {
		return nil, nil, err
	}
	return redisStore, func() { _ = redisStore.Close() }, nil
}
