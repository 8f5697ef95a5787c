package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/utils"
	"github.com/robfig/cron/v3"

	"quizku_backend/internals/configs"
	database "quizku_backend/internals/databases"
	helper "quizku_backend/internals/helpers"
	middlewares "quizku_backend/internals/middlewares"
	routes "quizku_backend/internals/route"
	"quizku_backend/internals/seeds"
)

func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FiberErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timeout guard per request
	app.Use(func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = utils.UUID()
		}
		c.Set("X-Request-ID", id)
		c.Locals("reqid", id)

		ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	})

	status := database.NewStatus()
	middlewares.SetupMiddlewares(app, cfg, status)

	// 🔌 DB connect (retry dengan backoff sampai berhasil / SIGTERM)
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stores, ping, closeDB, err := connectStores(rootCtx, cfg)
	if err != nil {
		log.Fatalf("[ERROR] database: %v", err)
	}
	status.Set(nil)

	// 🌱 seed subject default, admin bootstrap, data demo
	seedCtx, cancelSeed := context.WithTimeout(rootCtx, 2*time.Minute)
	seeds.RunAllSeeds(seedCtx, cfg, stores.Users, stores.Subjects, stores.Questions)
	cancelSeed()

	// ⏱ health probe DB
	probe, err := database.StartHealthProbe(cfg.DBHealthCron, status, ping)
	if err != nil {
		log.Printf("[ERROR] health probe: %v", err)
	}

	// ✅ Routes
	routes.SetupRoutes(app, cfg, stores, status)

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup koneksi DB
	<-rootCtx.Done()
	log.Println("[INFO] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	stopProbe(probe)
	closeDB()
}

// connectStores memilih backend sesuai DB_DRIVER dan mengembalikan repositories,
// fungsi ping untuk health probe, dan fungsi penutup koneksi.
func connectStores(ctx context.Context, cfg *configs.Config) (routes.Stores, func(context.Context) error, func(), error) {
	switch cfg.DBDriver {
	case configs.DriverPostgres:
		db, err := database.ConnectPostgres(ctx, cfg)
		if err != nil {
			return routes.Stores{}, nil, nil, err
		}
		if err := database.Migrate(db, routes.GormModels()...); err != nil {
			database.ClosePostgres(db)
			return routes.Stores{}, nil, nil, err
		}
		return routes.NewGormStores(db), database.PingPostgres(db), func() { database.ClosePostgres(db) }, nil

	default:
		client, db, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return routes.Stores{}, nil, nil, err
		}
		closeFn := func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		}
		return routes.NewMongoStores(db), database.PingMongo(client), closeFn, nil
	}
}

func stopProbe(c *cron.Cron) {
	if c == nil {
		return
	}
	<-c.Stop().Done()
}
