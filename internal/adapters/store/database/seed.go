package database

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/faloiraq/falo/internal/adapters/store/model"
	"github.com/faloiraq/falo/pkg/seal"
)

// Catalog is the sealed seed snapshot format: reference data loaded
// once into an empty database.
type Catalog struct {
	Services  []model.Service  `json:"services"`
	Tasks     []model.Task     `json:"tasks"`
	GiftCodes []model.GiftCode `json:"gift_codes"`
}

func defaultCatalog() Catalog {
	return Catalog{
		Services: []model.Service{
			{Name: "Instagram Followers", Platform: "Instagram", PricePerUnit: 9, MinAmount: 100, Icon: "📸"},
			{Name: "Instagram Likes", Platform: "Instagram", PricePerUnit: 5, MinAmount: 50, Icon: "❤️"},
			{Name: "Instagram Reels Views", Platform: "Instagram", PricePerUnit: 0.5, MinAmount: 500, Icon: "🎬"},
			{Name: "Support Contact", Platform: "WhatsApp", PricePerUnit: 0, MinAmount: 0, Icon: "📞"},
		},
		Tasks: []model.Task{
			{Platform: "INSTAGRAM", Type: model.TaskTypeFollow, Reward: 3, Description: "Follow ahmed_official", Link: "#"},
			{Platform: "INSTAGRAM", Type: model.TaskTypeLike, Reward: 1, Description: "Like the latest post of a featured account", Link: "#"},
			{Platform: "INSTAGRAM", Type: model.TaskTypeView, Reward: 2, Description: "Watch a reel for one minute", Link: "#"},
			{Platform: "INSTAGRAM", Type: model.TaskTypeFollow, Reward: 3, Description: "Follow falo_iraq_official", Link: "#"},
		},
	}
}

func loadCatalog(cfg *Config) (Catalog, error) {
	if cfg.SeedPath == "" {
		return defaultCatalog(), nil
	}

	raw, err := os.ReadFile(cfg.SeedPath)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed read seed file: %w", err)
	}

	catalog := Catalog{}
	if err := seal.Decode(string(raw), cfg.SealKey, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("failed unseal seed file: %w", err)
	}

	return catalog, nil
}

// seedCatalog fills an empty database with reference data. A database
// that already has services is left alone.
func (s *Store) seedCatalog(ctx context.Context, cfg *Config) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Service{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	tx := s.db.WithContext(ctx)
	for i := range catalog.Services {
		if err := tx.Create(&catalog.Services[i]).Error; err != nil {
			return fmt.Errorf("failed seed service: %w", err)
		}
	}
	for i := range catalog.Tasks {
		if err := tx.Create(&catalog.Tasks[i]).Error; err != nil {
			return fmt.Errorf("failed seed task: %w", err)
		}
	}
	for i := range catalog.GiftCodes {
		if err := tx.Create(&catalog.GiftCodes[i]).Error; err != nil {
			return fmt.Errorf("failed seed gift code: %w", err)
		}
	}

	s.log.Info("catalog seeded",
		zap.Int("services", len(catalog.Services)),
		zap.Int("tasks", len(catalog.Tasks)),
		zap.Int("giftCodes", len(catalog.GiftCodes)),
	)

	return nil
}
