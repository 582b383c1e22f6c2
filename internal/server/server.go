package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/kendea1221/Hiromap/internal/assist"
	"github.com/kendea1221/Hiromap/internal/auth"
	"github.com/kendea1221/Hiromap/internal/config"
	"github.com/kendea1221/Hiromap/internal/recommend"
	"github.com/kendea1221/Hiromap/internal/route"
	"github.com/kendea1221/Hiromap/internal/session"
	"github.com/kendea1221/Hiromap/internal/social"
	"github.com/kendea1221/Hiromap/internal/spot"
	"github.com/kendea1221/Hiromap/internal/store"
	"github.com/kendea1221/Hiromap/internal/stream"
)

type Server struct {
	App      *fiber.App
	Cfg      config.Config
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Stream   *stream.Hub
	Registry *spot.Registry
	Sessions *session.Service
	Weather  *recommend.Snapshot
	Assist   *assist.Service
}

func NewServer(cfg config.Config, db *pgxpool.Pool, redisClient *redis.Client) *Server {
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())

	ctx := context.Background()
	kv := selectStore(db, redisClient)
	hub := stream.NewHub(redisClient)
	registry := spot.NewRegistry(ctx, kv)
	sessions := session.New(ctx, kv)
	snapshot := recommend.NewSnapshot()
	engine := recommend.NewEngine(registry)

	s := &Server{
		App:      app,
		Cfg:      cfg,
		DB:       db,
		Redis:    redisClient,
		Stream:   hub,
		Registry: registry,
		Sessions: sessions,
		Weather:  snapshot,
		Assist:   assist.NewService(engine, snapshot, sessions, hub),
	}

	registerRoutes(s)
	return s
}

// selectStore picks the first available persistence adapter; without
// Postgres or Redis user spots only live for the process lifetime.
func selectStore(db *pgxpool.Pool, redisClient *redis.Client) store.KV {
	if db != nil {
		return store.NewPostgres(db)
	}
	if redisClient != nil {
		return store.NewRedis(redisClient)
	}
	return store.NewMemory()
}

func registerRoutes(s *Server) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	jwtMiddleware := auth.JWTMiddleware(s.Cfg.JWTSecret)
	notify := func(text string) { s.Assist.Notice(text) }

	auth.RegisterRoutes(s.App.Group("/auth"), auth.NewService(s.Cfg.JWTSecret, s.Sessions))
	spot.RegisterRoutes(s.App.Group("/spots"), s.Registry, s.Sessions, jwtMiddleware)
	social.RegisterRoutes(s.App.Group("/spots"), social.NewService(s.Registry, s.Sessions), s.Registry, notify, jwtMiddleware)
	route.RegisterRoutes(s.App.Group("/routes"), route.NewService(s.Registry), jwtMiddleware)
	assist.RegisterRoutes(s.App.Group("/assist"), s.Assist, s.Weather, s.Registry)
	stream.RegisterRoutes(s.App.Group("/stream"), s.Stream)
}
