package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"assurance_backend/internals/configs"
	database "assurance_backend/internals/databases"
	"assurance_backend/internals/features/finance/fees/receipt"
	scheduler "assurance_backend/internals/features/users/auth/scheduler"
	authService "assurance_backend/internals/features/users/auth/service"
	helper "assurance_backend/internals/helpers"
	middlewares "assurance_backend/internals/middlewares"
	routes "assurance_backend/internals/route"
	"assurance_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config: %v", err)
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          errorHandler,
	})

	middlewares.SetupMiddlewares(app, cfg)

	// DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	database.TunePool(db)
	database.WarmUpQueries(db)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.RunMigrations(bootCtx, db); err != nil {
		log.Fatalf("[FATAL] migrations: %v", err)
	}
	if err := seeds.RunAllSeeds(bootCtx, db, cfg); err != nil {
		log.Fatalf("[FATAL] seeds: %v", err)
	}
	cancelBoot()

	store := database.NewStore(db, cfg.TxWatchdog)
	receipt.SchoolName = strings.ToUpper(cfg.SchoolName)

	// scheduler after the DB is ready
	cleanup, err := scheduler.StartBlacklistCleanupScheduler(authService.NewAuthService(store, cfg), cfg.BlacklistCleanupSpec)
	if err != nil {
		log.Fatalf("[FATAL] cleanup scheduler: %v", err)
	}

	routes.SetupRoutes(app, routes.Deps{
		Config:   cfg,
		Store:    store,
		Validate: helper.NewValidator(),
	})

	// Keep-Alive & server timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("[INFO] Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown, then close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)
	<-cleanup.Stop().Done()
	database.Close(db)
}

// errorHandler renders anything a handler returned without writing a
// response, including recovered panics.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		}
		return helper.FromFiberError(c, fe)
	}
	log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "")
}
