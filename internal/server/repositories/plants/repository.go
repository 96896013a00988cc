// Package plants persists plants. Every operation is scoped to the garden
// owner: rows in gardens of other users behave as if they did not exist.
package plants

import (
	"context"

	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
)

type Repository interface {
	FindByGarden(ctx context.Context, userID, gardenID string) ([]models.Plant, error)

	// Create returns common.ErrorNotFound when p.GardenID is not a garden of userID.
	Create(ctx context.Context, userID string, p *models.Plant) (*models.Plant, error)

	// Update and Delete return common.ErrorNotFound when no plant of userID has id.
	Update(ctx context.Context, userID, id string, patch models.PlantPatch) error
	Delete(ctx context.Context, userID, id string) error
}
