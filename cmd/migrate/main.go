package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/radhe721/Book-Review-api/internal/store"
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	loadEnvFiles()
	dsn := databaseDSN()
	dir := migrationsDir()

	if *command == "create" {
		if err := run(nil, *command, *name, dir); err != nil {
			log.Fatalf("Failed to create migration: %v", err)
		}
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", store.RedactDSN(dsn), err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := run(db, *command, *name, dir); err != nil {
		log.Fatalf("migrate %s: %v", *command, err)
	}
}

func run(db *sql.DB, command, name, dir string) error {
	goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("rollback migration: %w", err)
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		return goose.Status(db, dir)
	case "create":
		if name == "" {
			return errors.New("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, name, "sql"); err != nil {
			return err
		}
		fmt.Printf("Migration created: %s\n", name)
	default:
		return fmt.Errorf("%w: %s. Use: up, down, status, create", errUnknownCommand, command)
	}
	return nil
}
