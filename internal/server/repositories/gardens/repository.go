// Package gardens persists the per-user garden records.
package gardens

import (
	"context"

	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
)

type Repository interface {
	FindByUser(ctx context.Context, userID string) ([]models.Garden, error)

	// Create stores g unless the user already has a garden, in which case
	// the existing one is returned unchanged.
	Create(ctx context.Context, g *models.Garden) (*models.Garden, error)
}
