package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"github.com/dmitrijs2005/virtualgarden/internal/garden"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/repomanager"
)

// GardenService is the record store behind the garden client. Every method
// acts on behalf of userID and never sees rows of other users.
type GardenService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewGardenService(db *sql.DB, m repomanager.RepositoryManager) *GardenService {
	return &GardenService{db: db, repomanager: m}
}

func (s *GardenService) FindGardens(ctx context.Context, userID string) ([]models.Garden, error) {
	return s.repomanager.Gardens(s.db).FindByUser(ctx, userID)
}

// CreateGarden returns the user's garden, creating it when missing.
func (s *GardenService) CreateGarden(ctx context.Context, userID, name string) (*models.Garden, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = garden.DefaultGardenName
	}
	return s.repomanager.Gardens(s.db).Create(ctx, &models.Garden{UserID: userID, Name: name})
}

func (s *GardenService) FindPlants(ctx context.Context, userID, gardenID string) ([]models.Plant, error) {
	return s.repomanager.Plants(s.db).FindByGarden(ctx, userID, gardenID)
}

func (s *GardenService) InsertPlant(ctx context.Context, userID string, p models.Plant) (*models.Plant, error) {
	if err := validatePlant(p); err != nil {
		return nil, err
	}
	return s.repomanager.Plants(s.db).Create(ctx, userID, &p)
}

func (s *GardenService) UpdatePlant(ctx context.Context, userID, id string, patch models.PlantPatch) error {
	if patch.Empty() {
		return common.ErrorEmptyPlantPatch
	}
	if err := validatePatch(patch); err != nil {
		return err
	}
	return s.repomanager.Plants(s.db).Update(ctx, userID, id, patch)
}

func (s *GardenService) DeletePlant(ctx context.Context, userID, id string) error {
	return s.repomanager.Plants(s.db).Delete(ctx, userID, id)
}

func validatePlant(p models.Plant) error {
	if !garden.Kind(p.Type).Valid() {
		return fmt.Errorf("%w: %q", common.ErrorUnknownKind, p.Type)
	}
	if p.GardenID == "" {
		return fmt.Errorf("%w: garden id is required", common.ErrorValidation)
	}
	checks := []struct {
		field    string
		v        int
		min, max int
	}{
		{"position_x", p.PositionX, garden.MinPosition, garden.MaxPosition},
		{"position_y", p.PositionY, garden.MinPosition, garden.MaxPosition},
		{"growth_stage", p.GrowthStage, garden.MinGrowthStage, garden.MaxGrowthStage},
		{"water_level", p.WaterLevel, garden.MinLevel, garden.MaxLevel},
		{"happiness", p.Happiness, garden.MinLevel, garden.MaxLevel},
	}
	for _, c := range checks {
		if err := inRange(c.field, c.v, c.min, c.max); err != nil {
			return err
		}
	}
	if p.GrowthStage != garden.MinGrowthStage || p.WaterLevel != garden.MaxLevel || p.Happiness != garden.MaxLevel {
		return fmt.Errorf("%w: new plants start at stage %d with full water and happiness",
			common.ErrorValidation, garden.MinGrowthStage)
	}
	return nil
}

func validatePatch(p models.PlantPatch) error {
	if p.GrowthStage != nil {
		if err := inRange("growth_stage", *p.GrowthStage, garden.MinGrowthStage, garden.MaxGrowthStage); err != nil {
			return err
		}
	}
	if p.WaterLevel != nil {
		if err := inRange("water_level", *p.WaterLevel, garden.MinLevel, garden.MaxLevel); err != nil {
			return err
		}
	}
	if p.Happiness != nil {
		if err := inRange("happiness", *p.Happiness, garden.MinLevel, garden.MaxLevel); err != nil {
			return err
		}
	}
	return nil
}

func inRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return fmt.Errorf("%w: %s=%d not in [%d, %d]", common.ErrorOutOfRange, field, v, lo, hi)
	}
	return nil
}
