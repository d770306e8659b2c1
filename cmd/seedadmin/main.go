// Command seedadmin creates an admin account for the panel.  There
// is deliberately no registration endpoint; this is the only way an
// admin comes into existence.
//
//	seedadmin -email owner@example.com -password 's3cret'
package main

import (
    "context"
    "flag"
    "log"
    "time"

    "github.com/joho/godotenv"

    "github.com/iliyamo/restaurant-reservation/internal/config"
    "github.com/iliyamo/restaurant-reservation/internal/database"
    "github.com/iliyamo/restaurant-reservation/internal/repository"
)

func main() {
    email := flag.String("email", "", "admin email address")
    password := flag.String("password", "", "admin password")
    flag.Parse()
    if *email == "" || *password == "" {
        log.Fatal("both -email and -password are required")
    }

    _ = godotenv.Load()
    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("database: %v", err)
    }
    defer db.Close()

    ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()

    users := repository.NewUserRepo(db)
    id, err := users.Create(ctx, *email, *password, "ADMIN", cfg.BcryptCost)
    if err != nil {
        if err == repository.ErrEmailExists {
            log.Fatalf("admin %s already exists", *email)
        }
        log.Fatalf("create admin: %v", err)
    }
    log.Printf("created admin %s (id=%d)", *email, id)
}
