package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/shampooches/GroomingBookingService/internal/config"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	dir := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	command := "up"
	args := flag.Args()
	if len(args) > 0 {
		command = args[0]
		args = args[1:]
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}

	if err := goose.Run(command, db, *dir, args...); err != nil {
		log.Fatalf("Migration %q failed: %v", command, err)
	}

	log.Printf("Migration %q completed", command)
}
