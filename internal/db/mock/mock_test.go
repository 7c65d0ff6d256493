package mock

import (
	"context"
	"testing"

	"hydromix/internal/presets"
	"hydromix/models"
)

func TestNewSeedsExpectedRecords(t *testing.T) {
	ctx := context.Background()
	db, err := New(ctx)
	if err != nil {
		t.Fatalf("mock database initialization failed: %v", err)
	}

	var stored []models.ContainerPreset
	if err := db.WithContext(ctx).Find(&stored).Error; err != nil {
		t.Fatalf("query presets: %v", err)
	}
	defaults, err := presets.Default()
	if err != nil {
		t.Fatalf("default catalogue: %v", err)
	}
	if len(stored) != len(defaults) {
		t.Fatalf("expected %d seeded presets, got %d", len(defaults), len(stored))
	}
}

func TestNewIsIdempotent(t *testing.T) {
	ctx := context.Background()
	if _, err := New(ctx); err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	db, err := New(ctx)
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.ContainerPreset{}).Count(&count).Error; err != nil {
		t.Fatalf("count presets: %v", err)
	}
	defaults, _ := presets.Default()
	if int(count) != len(defaults) {
		t.Fatalf("expected catalogue to be seeded once, got %d rows", count)
	}
}
