package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"hydromix/internal/config"
	"hydromix/internal/db"
	applog "hydromix/internal/log"
	"hydromix/internal/presets"
)

var openDatabase = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
	database, err := db.Initialize(cfg)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(database); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return database, nil
}

func main() {
	csvPath := "presets.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	if err := run(context.Background(), csvPath, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, csvPath string, out io.Writer) error {
	if strings.TrimSpace(csvPath) == "" {
		return fmt.Errorf("csv path must not be empty")
	}

	file, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("locate csv: %w", err)
	}
	defer file.Close()

	records, err := presets.ParseCSV(file)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if strings.TrimSpace(cfg.Database.URL) == "" {
		return fmt.Errorf("DATABASE_URL must be set to import presets")
	}

	database, err := openDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	created, updated, err := presets.NewStore(database).Upsert(ctx, records)
	if err != nil {
		return fmt.Errorf("store presets: %w", err)
	}

	applog.Info(ctx, "preset import finished", "created", created, "updated", updated, "file", filepath.Base(csvPath))
	fmt.Fprintf(out, "Imported %d presets (%d new, %d updated) from %s\n", created+updated, created, updated, filepath.Base(csvPath))
	return nil
}
