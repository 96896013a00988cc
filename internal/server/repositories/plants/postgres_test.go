package plants

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plantColumns = []string{"id", "garden_id", "type", "position_x", "position_y", "growth_stage",
	"water_level", "happiness", "last_watered", "last_visited", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestFindByGarden(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	ts := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)FROM\s+plants\s+p\s+JOIN\s+gardens\s+g.*WHERE\s+p\.garden_id\s*=\s*\$1\s+AND\s+g\.user_id\s*=\s*\$2`).
		WithArgs("g1", "u1").
		WillReturnRows(sqlmock.NewRows(plantColumns).
			AddRow("p1", "g1", "tree", 12, 88, 2, 70, 60, ts, ts, ts).
			AddRow("p2", "g1", "mushroom", 50, 50, 0, 100, 100, ts, ts, ts))

	got, err := repo.FindByGarden(context.Background(), "u1", "g1")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.Plant{
		ID: "p1", GardenID: "g1", Type: "tree", PositionX: 12, PositionY: 88, GrowthStage: 2,
		WaterLevel: 70, Happiness: 60, LastWatered: ts, LastVisited: ts, CreatedAt: ts,
	}, got[0])
	assert.Equal(t, "mushroom", got[1].Type)
}

func TestFindByGarden_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM\s+plants`).WillReturnError(errors.New("timeout"))

	_, err := repo.FindByGarden(context.Background(), "u1", "g1")
	require.ErrorContains(t, err, "timeout")
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	stale := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	dbNow := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	p := &models.Plant{GardenID: "g1", Type: "flower", PositionX: 10, PositionY: 90,
		GrowthStage: 4, WaterLevel: 5, Happiness: 5, LastWatered: stale, LastVisited: stale, CreatedAt: stale}

	q := `(?s)^\s*INSERT\s+INTO\s+plants\s+\(id,\s*garden_id,\s*type,\s*position_x,\s*position_y\)\s+` +
		`SELECT\s+\$1,\s*g\.id,\s*\$3,\s*\$4,\s*\$5\s+FROM\s+gardens\s+g\s+WHERE\s+g\.id\s*=\s*\$2\s+AND\s+g\.user_id\s*=\s*\$6\s+` +
		`RETURNING\s+id,\s*growth_stage,\s*water_level,\s*happiness,\s*last_watered,\s*last_visited,\s*created_at\s*$`
	mock.ExpectQuery(q).
		WithArgs(sqlmock.AnyArg(), "g1", "flower", 10, 90, "u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "growth_stage", "water_level", "happiness", "last_watered", "last_visited", "created_at"}).
			AddRow("p-new", 0, 100, 100, dbNow, dbNow, dbNow))

	got, err := repo.Create(context.Background(), "u1", p)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, models.Plant{
		ID: "p-new", GardenID: "g1", Type: "flower", PositionX: 10, PositionY: 90,
		GrowthStage: 0, WaterLevel: 100, Happiness: 100, LastWatered: dbNow, LastVisited: dbNow, CreatedAt: dbNow,
	}, *got)
	assert.Empty(t, p.ID, "input must not be modified")
}

func TestCreate_ForeignGarden(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`INSERT\s+INTO\s+plants`).WillReturnError(sql.ErrNoRows)

	_, err := repo.Create(context.Background(), "intruder", &models.Plant{GardenID: "g1", Type: "tree"})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	water, happiness := 80, 95
	visited := time.Now()

	q := `^UPDATE plants SET water_level = \$1, happiness = \$2, last_visited = \$3 WHERE id = \$4 AND garden_id IN \(SELECT id FROM gardens WHERE user_id = \$5\)$`
	mock.ExpectExec(q).
		WithArgs(80, 95, visited, "p1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "u1", "p1", models.PlantPatch{
		WaterLevel: &water, Happiness: &happiness, LastVisited: &visited,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_AllFields(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	stage, water, happiness := 3, 50, 40
	ts := time.Now()

	q := `^UPDATE plants SET growth_stage = \$1, water_level = \$2, happiness = \$3, last_watered = \$4, last_visited = \$5 WHERE id = \$6 AND ` +
		regexp.QuoteMeta(`garden_id IN (SELECT id FROM gardens WHERE user_id = $7)`) + `$`
	mock.ExpectExec(q).
		WithArgs(3, 50, 40, ts, ts, "p1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(context.Background(), "u1", "p1", models.PlantPatch{
		GrowthStage: &stage, WaterLevel: &water, Happiness: &happiness, LastWatered: &ts, LastVisited: &ts,
	})
	require.NoError(t, err)
}

func TestUpdate_NotOwned(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	water := 10
	mock.ExpectExec(`^UPDATE plants`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), "intruder", "p1", models.PlantPatch{WaterLevel: &water})
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestUpdate_EmptyPatch(t *testing.T) {
	repo, _ := newRepoWithMock(t)
	err := repo.Update(context.Background(), "u1", "p1", models.PlantPatch{})
	require.ErrorIs(t, err, common.ErrorEmptyPlantPatch)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	q := `^DELETE FROM plants WHERE id = \$1 AND garden_id IN \(SELECT id FROM gardens WHERE user_id = \$2\)$`

	mock.ExpectExec(q).WithArgs("p1", "u1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).WithArgs("p1", "u1").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(q).WithArgs("p2", "u1").WillReturnError(errors.New("db down"))

	require.NoError(t, repo.Delete(context.Background(), "u1", "p1"))
	require.ErrorIs(t, repo.Delete(context.Background(), "u1", "p1"), common.ErrorNotFound)
	require.ErrorContains(t, repo.Delete(context.Background(), "u1", "p2"), "db down")
}
