package main // entry point for the restaurant API server

import (
    "context"
    "errors"
    "log"

    "github.com/joho/godotenv"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-reservation/internal/config"
    "github.com/iliyamo/restaurant-reservation/internal/database"
    "github.com/iliyamo/restaurant-reservation/internal/handler"
    "github.com/iliyamo/restaurant-reservation/internal/middleware"
    "github.com/iliyamo/restaurant-reservation/internal/queue"
    "github.com/iliyamo/restaurant-reservation/internal/repository"
    "github.com/iliyamo/restaurant-reservation/internal/router"
    queue_publisher "github.com/iliyamo/restaurant-reservation/internal/service"
)

func main() {
    // .env is a dev convenience; a missing file is not an error.
    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    users := repository.NewUserRepo(db)
    tokens := repository.NewTokenRepo(db)
    reservations := repository.NewReservationRepo(db)
    menu := repository.NewMenuRepo(db)

    // Redis backs rate limiting and the response cache.  A nil
    // client turns both middlewares into pass-throughs.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable: rate limiting and response cache disabled")
    }
    rateLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
    cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

    // The session gate rejects tokens whose account has since been
    // deactivated or deleted.
    gate := middleware.SessionGate(cfg.JWTSecret, cfg.AdminLoginPath, func(ctx context.Context, userID uint64) error {
        u, err := users.GetByID(ctx, userID)
        if err != nil {
            return err
        }
        if !u.IsActive {
            return errors.New("account deactivated")
        }
        return nil
    })

    authHandler := handler.NewAuthHandler(cfg, users, tokens)
    reservationHandler := handler.NewReservationHandler(reservations, queue_publisher.PublishReservationCreated)
    adminReservationHandler := handler.NewAdminReservationHandler(reservations)
    menuHandler := handler.NewMenuHandler(menu)
    adminMenuHandler := handler.NewAdminMenuHandler(menu)
    uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

    // Background notification trail: consumes reservation.created
    // and appends to logs/reservations.log.
    go func() {
        if err := queue.StartReservationConsumer(); err != nil {
            log.Printf("reservation consumer stopped: %v", err)
        }
    }()

    e := echo.New()
    e.Static("/uploads", cfg.UploadDir)
    router.RegisterPublic(e, reservationHandler, menuHandler, rateLimit, cache)
    router.RegisterAuth(e, authHandler, gate)
    router.RegisterAdmin(e, adminReservationHandler, adminMenuHandler, uploadHandler, gate)

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
