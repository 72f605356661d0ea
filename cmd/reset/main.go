package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/dotworks/PixieBot_Go/internal/database"
)

// Drops and recreates the application database, then reapplies the
// embedded migrations. Destroys all data.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dbName := os.Getenv("DB_NAME")

	// Connect to the 'postgres' database to manage the application database
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
	)

	serverPool, err := database.NewPool(serverConnString, 10, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	ctx := context.Background()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, fmt.Sprintf(`
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = '%s'
		AND pid <> pg_backend_pid()
	`, dbName))
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err := serverPool.Exec(ctx, fmt.Sprintf("CREATE DATABASE %s", dbName)); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	appConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		dbName,
	)

	log.Println("Applying migrations...")
	if err := database.Migrate(appConnString); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database reset complete.")
}
