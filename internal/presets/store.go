package presets

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	applog "hydromix/internal/log"
	"hydromix/internal/mixture"
	"hydromix/models"
)

// ErrNotFound is returned when no preset matches a slug.
var ErrNotFound = errors.New("presets: not found")

// Store reads and writes the preset catalogue through gorm.
type Store struct {
	db *gorm.DB
}

// NewStore wraps db. A nil db yields a store whose methods fail with
// gorm.ErrInvalidDB.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// List returns the catalogue in display order, optionally restricted to a
// measurement system.
func (s *Store) List(ctx context.Context, system mixture.System) ([]models.ContainerPreset, error) {
	if s == nil || s.db == nil {
		return nil, gorm.ErrInvalidDB
	}

	query := s.db.WithContext(ctx).Model(&models.ContainerPreset{})
	if system != "" {
		query = query.Where("system = ?", string(system))
	}

	var out []models.ContainerPreset
	if err := query.Order("position asc").Order("id asc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindBySlug loads a single preset.
func (s *Store) FindBySlug(ctx context.Context, slug string) (*models.ContainerPreset, error) {
	if s == nil || s.db == nil {
		return nil, gorm.ErrInvalidDB
	}

	var preset models.ContainerPreset
	err := s.db.WithContext(ctx).Where("slug = ?", models.Slugify(slug)).First(&preset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &preset, nil
}

// Upsert inserts new presets and updates existing ones matched by slug. It
// reports how many rows were created and updated.
func (s *Store) Upsert(ctx context.Context, presets []models.ContainerPreset) (int, int, error) {
	if s == nil || s.db == nil {
		return 0, 0, gorm.ErrInvalidDB
	}

	created, updated := 0, 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range presets {
			p, err := Normalize(p)
			if err != nil {
				return err
			}

			var existing models.ContainerPreset
			err = tx.Where("slug = ?", p.Slug).First(&existing).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				p.ID = 0
				if err := tx.Create(&p).Error; err != nil {
					return fmt.Errorf("create preset %s: %w", p.Slug, err)
				}
				created++
			case err != nil:
				return err
			default:
				updates := map[string]any{
					"name":     p.Name,
					"size":     p.Size,
					"unit":     p.Unit,
					"system":   p.System,
					"position": p.Position,
				}
				if err := tx.Model(&existing).Updates(updates).Error; err != nil {
					return fmt.Errorf("update preset %s: %w", p.Slug, err)
				}
				updated++
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	applog.Debug(ctx, "preset catalogue upserted", "created", created, "updated", updated)
	return created, updated, nil
}

// SeedDefaults loads the embedded catalogue when the table is empty.
func (s *Store) SeedDefaults(ctx context.Context) error {
	if s == nil || s.db == nil {
		return gorm.ErrInvalidDB
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ContainerPreset{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults, err := Default()
	if err != nil {
		return err
	}
	_, _, err = s.Upsert(ctx, defaults)
	return err
}
