package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/linkstash/linkstash/bookmarks"
	bookmarkHandlers "github.com/linkstash/linkstash/bookmarks/handlers"
	bookmarkRepository "github.com/linkstash/linkstash/bookmarks/repository"
	bookmarkServices "github.com/linkstash/linkstash/bookmarks/services"
	"github.com/linkstash/linkstash/collections"
	collectionHandlers "github.com/linkstash/linkstash/collections/handlers"
	collectionRepository "github.com/linkstash/linkstash/collections/repository"
	collectionServices "github.com/linkstash/linkstash/collections/services"
	"github.com/linkstash/linkstash/internal/cache"
	dbi "github.com/linkstash/linkstash/internal/database/interfaces"
	"github.com/linkstash/linkstash/internal/database/postgres"
	"github.com/linkstash/linkstash/internal/middleware/requestid"
	"github.com/linkstash/linkstash/internal/pkg/log"
	platformconfig "github.com/linkstash/linkstash/internal/platform/config"
	"github.com/linkstash/linkstash/preview"
	previewHandlers "github.com/linkstash/linkstash/preview/handlers"
	previewServices "github.com/linkstash/linkstash/preview/services"
	"github.com/linkstash/linkstash/shares"
	shareHandlers "github.com/linkstash/linkstash/shares/handlers"
	shareRepository "github.com/linkstash/linkstash/shares/repository"
	shareServices "github.com/linkstash/linkstash/shares/services"
	"github.com/linkstash/linkstash/spaces"
	spaceHandlers "github.com/linkstash/linkstash/spaces/handlers"
	spaceRepository "github.com/linkstash/linkstash/spaces/repository"
	spaceServices "github.com/linkstash/linkstash/spaces/services"
	"github.com/linkstash/linkstash/transfer"
	transferHandlers "github.com/linkstash/linkstash/transfer/handlers"
	transferServices "github.com/linkstash/linkstash/transfer/services"
	"github.com/linkstash/linkstash/workspaces"
	workspaceHandlers "github.com/linkstash/linkstash/workspaces/handlers"
	workspaceRepository "github.com/linkstash/linkstash/workspaces/repository"
	workspaceServices "github.com/linkstash/linkstash/workspaces/services"
)

func main() {
	startedAt := time.Now()

	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		log.Error("Failed to load config: %v", err)
		return
	}

	ctx := context.Background()
	pgConfig := &dbi.PostgreSQLConfig{
		Host:               cfg.Database.Postgres.Host,
		Port:               cfg.Database.Postgres.Port,
		Username:           cfg.Database.Postgres.Username,
		Password:           cfg.Database.Postgres.Password,
		Database:           cfg.Database.Postgres.Database,
		SSLMode:            cfg.Database.Postgres.SSLMode,
		MaxOpenConnections: cfg.Database.Postgres.MaxOpenConns,
		MaxIdleConnections: cfg.Database.Postgres.MaxIdleConns,
		MaxLifetime:        int(cfg.Database.Postgres.ConnMaxLifetime.Seconds()),
		ConnectTimeout:     10,
	}
	pgClient, err := postgres.NewClient(ctx, pgConfig)
	if err != nil {
		log.Error("Failed to create postgres client: %v", err)
		return
	}
	defer pgClient.Close()

	var previewCache cache.Cache
	if cfg.Cache.Enabled {
		previewCache, err = cache.NewCache(&cache.CacheConfig{
			TTL:             cfg.Cache.TTL,
			Prefix:          cfg.Cache.Prefix,
			Backend:         cache.CacheType(cfg.Cache.Backend),
			MaxMemory:       cfg.Cache.MaxMemory,
			CleanupInterval: cfg.Cache.CleanupInterval,
			Redis: cache.RedisConfig{
				Address:      cfg.Cache.Redis.Address,
				Password:     cfg.Cache.Redis.Password,
				Database:     cfg.Cache.Redis.Database,
				PoolSize:     cfg.Cache.Redis.PoolSize,
				MinIdleConns: cfg.Cache.Redis.MinIdleConns,
				MaxConnAge:   cfg.Cache.Redis.MaxConnAge,
			},
		})
		if err != nil {
			log.Warn("Preview cache disabled: %v", err)
			previewCache = nil
		} else {
			defer previewCache.Close()
		}
	}

	workspaceRepo := workspaceRepository.NewPostgresRepository(pgClient)
	spaceRepo := spaceRepository.NewPostgresRepository(pgClient)
	collectionRepo := collectionRepository.NewPostgresRepository(pgClient)
	bookmarkRepo := bookmarkRepository.NewPostgresRepository(pgClient)
	shareRepo := shareRepository.NewPostgresRepository(pgClient)

	workspaceService := workspaceServices.NewService(workspaceRepo)
	spaceService := spaceServices.NewService(spaceRepo)
	collectionService := collectionServices.NewService(collectionRepo)
	bookmarkService := bookmarkServices.NewService(bookmarkRepo)
	shareService := shareServices.NewService(shareRepo)
	transferService := transferServices.NewService(spaceService, collectionService, bookmarkService)
	previewService := previewServices.NewService(previewServices.NewFetcher(&cfg.Preview), previewCache, cfg.Cache.TTL)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if len(c.Response().Body()) > 0 {
				return nil
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.WebDomain,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	api := app.Group(cfg.Server.BaseRoute)

	api.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		code := fiber.StatusOK
		if err := pgClient.HealthCheck(c.Context()); err != nil {
			status = "degraded"
			code = fiber.StatusServiceUnavailable
		}
		return c.Status(code).JSON(fiber.Map{
			"status":      status,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"service":     cfg.App.Name,
			"uptime":      time.Since(startedAt).String(),
			"environment": cfg.Server.Environment,
		})
	})

	workspaces.RegisterRoutes(api, &workspaces.Handlers{
		WorkspaceHandler: workspaceHandlers.NewWorkspaceHandler(workspaceService),
	})
	spaces.RegisterRoutes(api, &spaces.Handlers{
		SpaceHandler: spaceHandlers.NewSpaceHandler(spaceService),
	})
	collections.RegisterRoutes(api, &collections.Handlers{
		CollectionHandler: collectionHandlers.NewCollectionHandler(collectionService),
	})
	bookmarks.RegisterRoutes(api, &bookmarks.Handlers{
		BookmarkHandler: bookmarkHandlers.NewBookmarkHandler(bookmarkService),
	})
	shares.RegisterRoutes(api, &shares.Handlers{
		ShareHandler: shareHandlers.NewShareHandler(shareService),
	})
	transfer.RegisterRoutes(api, &transfer.Handlers{
		TransferHandler: transferHandlers.NewTransferHandler(transferService),
	})
	preview.RegisterRoutes(api, &preview.Handlers{
		PreviewHandler: previewHandlers.NewPreviewHandler(previewService),
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Starting Linkstash API on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Error("Server stopped: %v", err)
	}
}
