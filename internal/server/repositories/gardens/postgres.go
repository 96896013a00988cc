package gardens

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/virtualgarden/internal/dbx"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) ([]models.Garden, error) {
	query := `
		SELECT id, user_id, name, created_at
		FROM gardens
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Garden
	for rows.Next() {
		var g models.Garden
		if err := rows.Scan(&g.ID, &g.UserID, &g.Name, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Create relies on the UNIQUE (user_id) constraint: a concurrent second
// insert for the same user turns into a no-op update that returns the row
// already there.
func (r *PostgresRepository) Create(ctx context.Context, g *models.Garden) (*models.Garden, error) {
	query := `
		INSERT INTO gardens (id, user_id, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, name, created_at
	`
	out := &models.Garden{UserID: g.UserID}
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), g.UserID, g.Name).
		Scan(&out.ID, &out.Name, &out.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
