package plants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"github.com/dmitrijs2005/virtualgarden/internal/dbx"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"github.com/google/uuid"
)

const ownedBy = `garden_id IN (SELECT id FROM gardens WHERE user_id = $%d)`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByGarden(ctx context.Context, userID, gardenID string) ([]models.Plant, error) {
	query := `
		SELECT p.id, p.garden_id, p.type, p.position_x, p.position_y, p.growth_stage,
		       p.water_level, p.happiness, p.last_watered, p.last_visited, p.created_at
		FROM plants p
		JOIN gardens g ON g.id = p.garden_id
		WHERE p.garden_id = $1 AND g.user_id = $2
		ORDER BY p.created_at
	`
	rows, err := r.db.QueryContext(ctx, query, gardenID, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Plant
	for rows.Next() {
		var p models.Plant
		if err := rows.Scan(&p.ID, &p.GardenID, &p.Type, &p.PositionX, &p.PositionY, &p.GrowthStage,
			&p.WaterLevel, &p.Happiness, &p.LastWatered, &p.LastVisited, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Create inserts a plant into a garden owned by userID. Stats and timestamps
// come from the column defaults, never from the caller.
func (r *PostgresRepository) Create(ctx context.Context, userID string, p *models.Plant) (*models.Plant, error) {
	query := `
		INSERT INTO plants (id, garden_id, type, position_x, position_y)
		SELECT $1, g.id, $3, $4, $5
		FROM gardens g
		WHERE g.id = $2 AND g.user_id = $6
		RETURNING id, growth_stage, water_level, happiness, last_watered, last_visited, created_at
	`
	out := *p
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), p.GardenID, p.Type, p.PositionX, p.PositionY, userID).
		Scan(&out.ID, &out.GrowthStage, &out.WaterLevel, &out.Happiness, &out.LastWatered, &out.LastVisited, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &out, nil
}

func (r *PostgresRepository) Update(ctx context.Context, userID, id string, patch models.PlantPatch) error {
	if patch.Empty() {
		return common.ErrorEmptyPlantPatch
	}

	var (
		sets []string
		args []any
	)
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.GrowthStage != nil {
		add("growth_stage", *patch.GrowthStage)
	}
	if patch.WaterLevel != nil {
		add("water_level", *patch.WaterLevel)
	}
	if patch.Happiness != nil {
		add("happiness", *patch.Happiness)
	}
	if patch.LastWatered != nil {
		add("last_watered", *patch.LastWatered)
	}
	if patch.LastVisited != nil {
		add("last_visited", *patch.LastVisited)
	}

	args = append(args, id, userID)
	query := fmt.Sprintf("UPDATE plants SET %s WHERE id = $%d AND "+ownedBy,
		strings.Join(sets, ", "), len(args)-1, len(args))

	return r.execOne(ctx, query, args...)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := fmt.Sprintf("DELETE FROM plants WHERE id = $1 AND "+ownedBy, 2)
	return r.execOne(ctx, query, id, userID)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
