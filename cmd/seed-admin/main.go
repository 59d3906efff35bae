// Command seed-admin creates the initial admin user if it does not exist.
//
// Usage:
//
//	seed-admin [-username admin] [-email admin@example.com] -password <password>
//
// Requires DATABASE_DSN environment variable to be set. The password may
// also be provided via SEED_ADMIN_PASSWORD. The command is idempotent:
// if a user with the given username already exists it reports that and
// exits without changes.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wholestock/inventory-backend/internal/auth"
)

func main() {
	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if *password == "" {
		log.Fatal("password is required (use -password or SEED_ADMIN_PASSWORD)")
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	tag, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, 'admin', true)
		 ON CONFLICT (username) DO NOTHING`,
		uuid.New(), *username, *email, hash,
	)
	if err != nil {
		log.Fatalf("insert admin user: %v", err)
	}

	if tag.RowsAffected() == 0 {
		fmt.Printf("User %q already exists, nothing to do.\n", *username)
		return
	}
	fmt.Printf("Created admin user %q.\n", *username)
}
