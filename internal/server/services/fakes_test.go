package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/dmitrijs2005/virtualgarden/internal/common"
	"github.com/dmitrijs2005/virtualgarden/internal/dbx"
	"github.com/dmitrijs2005/virtualgarden/internal/server/models"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/gardens"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/plants"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/virtualgarden/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*models.User
	createErr error
	getErr    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "user-" + u.Email
	u.CreatedAt = time.Now()
	f.byEmail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeRefreshRepo struct {
	mu        sync.Mutex
	tokens    map[string]*models.RefreshToken
	findErr   error
	delErr    error
	createErr error
	purgeErr  error
}

func newFakeRefreshRepo() *fakeRefreshRepo {
	return &fakeRefreshRepo{tokens: map[string]*models.RefreshToken{}}
}

func (f *fakeRefreshRepo) Create(ctx context.Context, userID, token string, validity time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: time.Now().Add(validity)}
	return nil
}

func (f *fakeRefreshRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rt, nil
}

func (f *fakeRefreshRepo) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(ctx context.Context, userID string, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.purgeErr != nil {
		return 0, f.purgeErr
	}
	var n int64
	for k, rt := range f.tokens {
		if rt.UserID == userID && !rt.Expires.After(now) {
			delete(f.tokens, k)
			n++
		}
	}
	return n, nil
}

func (f *fakeRefreshRepo) has(token string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tokens[token]
	return ok
}

type fakeGardensRepo struct {
	gardens []models.Garden
	err     error
}

func (f *fakeGardensRepo) FindByUser(ctx context.Context, userID string) ([]models.Garden, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Garden
	for _, g := range f.gardens {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGardensRepo) Create(ctx context.Context, g *models.Garden) (*models.Garden, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, existing := range f.gardens {
		if existing.UserID == g.UserID {
			return &existing, nil
		}
	}
	out := *g
	out.ID = "garden-" + g.UserID
	f.gardens = append(f.gardens, out)
	return &out, nil
}

type updateCall struct {
	userID, id string
	patch      models.PlantPatch
}

type fakePlantsRepo struct {
	created []models.Plant
	updates []updateCall
	deleted []string
	err     error
}

func (f *fakePlantsRepo) FindByGarden(ctx context.Context, userID, gardenID string) ([]models.Plant, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.created, nil
}

func (f *fakePlantsRepo) Create(ctx context.Context, userID string, p *models.Plant) (*models.Plant, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := *p
	out.ID = "plant-1"
	f.created = append(f.created, out)
	return &out, nil
}

func (f *fakePlantsRepo) Update(ctx context.Context, userID, id string, patch models.PlantPatch) error {
	if f.err != nil {
		return f.err
	}
	f.updates = append(f.updates, updateCall{userID, id, patch})
	return nil
}

func (f *fakePlantsRepo) Delete(ctx context.Context, userID, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRepoManager struct {
	users   *fakeUsersRepo
	refresh *fakeRefreshRepo
	gardens *fakeGardensRepo
	plants  *fakePlantsRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   newFakeUsersRepo(),
		refresh: newFakeRefreshRepo(),
		gardens: &fakeGardensRepo{},
		plants:  &fakePlantsRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return m.refresh }
func (m *fakeRepoManager) Gardens(dbx.DBTX) gardens.Repository             { return m.gardens }
func (m *fakeRepoManager) Plants(dbx.DBTX) plants.Repository               { return m.plants }
